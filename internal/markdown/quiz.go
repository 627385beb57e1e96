package markdown

import (
	"regexp"
	"strings"

	"github.com/openlessons/bookd/internal/model"
)

// Quiz blocks are Hugo shortcodes, not markdown, so they are cut out of the
// body at the text level before the body is handed to goldmark.
var (
	quizOpenRe    = regexp.MustCompile(`^\s*\{\{<\s*quizdown\s*>\}\}\s*$`)
	quizCloseRe   = regexp.MustCompile(`^\s*\{\{<\s*/quizdown\s*>\}\}\s*$`)
	fenceRe       = regexp.MustCompile("^\\s*(```|~~~)")
	questionRe    = regexp.MustCompile(`^#{2,6}\s+(.+?)\s*$`)
	optionRe      = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*+])\s*\[([ xX])\]\s*(.*)$`)
	explanationRe = regexp.MustCompile(`^>\s*\*\*Explanation:?\*\*:?\s*(.*)$`)
	quoteContRe   = regexp.MustCompile(`^>\s?(.*)$`)
)

// ExtractQuizzes removes every {{< quizdown >}} ... {{< /quizdown >}} region
// from body and parses the quizdown dialect inside each. baseLine is the
// 1-based file line of body's first line, so issue and question lines refer
// to the original document.
func ExtractQuizzes(body string, baseLine int) (stripped string, quizzes []model.Quiz, issues []model.ParseIssue) {
	lines := strings.Split(body, "\n")
	var kept []string
	var inner []string

	inQuiz := false
	inFence := false
	openLine := 0

	for i, line := range lines {
		fileLine := baseLine + i

		switch {
		case !inQuiz && fenceRe.MatchString(line):
			inFence = !inFence
			kept = append(kept, line)

		// A shortcode quoted inside a fenced code block (a chapter teaching
		// the quiz syntax itself) is body text, not a quiz.
		case !inQuiz && !inFence && quizOpenRe.MatchString(line):
			inQuiz = true
			openLine = fileLine
			inner = inner[:0]

		case inQuiz && quizCloseRe.MatchString(line):
			inQuiz = false
			quiz, quizIssues := parseQuizdown(inner, openLine+1)
			quiz.Line = openLine
			quizzes = append(quizzes, quiz)
			issues = append(issues, quizIssues...)

		case inQuiz:
			inner = append(inner, line)

		default:
			kept = append(kept, line)
		}
	}

	if inQuiz {
		issues = append(issues, model.ParseIssue{
			Line:    openLine,
			Message: "quizdown block is not terminated with {{< /quizdown >}}",
		})
		quiz, quizIssues := parseQuizdown(inner, openLine+1)
		quiz.Line = openLine
		quizzes = append(quizzes, quiz)
		issues = append(issues, quizIssues...)
	}

	return strings.Join(kept, "\n"), quizzes, issues
}

// parseQuizdown reads the quizdown dialect: a heading opens a question,
// checkbox list items (numbered or dashed) are its options, and a
// `> **Explanation:**` blockquote closes it.
func parseQuizdown(lines []string, baseLine int) (model.Quiz, []model.ParseIssue) {
	var quiz model.Quiz
	var issues []model.ParseIssue

	var current *model.QuizQuestion
	inExplanation := false

	flush := func() {
		if current != nil {
			quiz.Questions = append(quiz.Questions, *current)
			current = nil
		}
		inExplanation = false
	}

	for i, line := range lines {
		fileLine := baseLine + i

		if m := questionRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &model.QuizQuestion{
				Prompt: m[1],
				Line:   fileLine,
			}
			continue
		}

		if m := optionRe.FindStringSubmatch(line); m != nil {
			inExplanation = false
			if current == nil {
				issues = append(issues, model.ParseIssue{
					Line:    fileLine,
					Message: "answer option appears before any question heading",
				})
				continue
			}
			current.Options = append(current.Options, model.QuizOption{
				Text:    strings.TrimSpace(m[2]),
				Correct: strings.EqualFold(m[1], "x"),
			})
			continue
		}

		if m := explanationRe.FindStringSubmatch(line); m != nil {
			if current == nil {
				issues = append(issues, model.ParseIssue{
					Line:    fileLine,
					Message: "explanation appears before any question heading",
				})
				continue
			}
			current.Explanation = strings.TrimSpace(m[1])
			inExplanation = true
			continue
		}

		if inExplanation {
			if m := quoteContRe.FindStringSubmatch(line); m != nil {
				text := strings.TrimSpace(m[1])
				if text != "" {
					current.Explanation = strings.TrimSpace(current.Explanation + " " + text)
				}
				continue
			}
			inExplanation = false
		}

		// Prose between the heading and the first option extends the prompt.
		if current != nil && len(current.Options) == 0 {
			text := strings.TrimSpace(line)
			if text != "" {
				current.Prompt = strings.TrimSpace(current.Prompt + " " + text)
			}
		}
	}

	flush()
	return quiz, issues
}
