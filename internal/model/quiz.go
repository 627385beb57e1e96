package model

// Quiz is the contents of one {{< quizdown >}} shortcode block.
type Quiz struct {
	PageSlug  string         `json:"page_slug,omitempty"`
	Line      int            `json:"line"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizQuestion is a single multiple-choice question: a prompt, its
// options and the blockquote explanation that follows the options.
type QuizQuestion struct {
	Prompt      string       `json:"prompt"`
	Options     []QuizOption `json:"options"`
	Explanation string       `json:"explanation,omitempty"`
	Line        int          `json:"line"`
}

type QuizOption struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// CorrectCount returns how many options are marked correct.
func (q *QuizQuestion) CorrectCount() int {
	n := 0
	for _, opt := range q.Options {
		if opt.Correct {
			n++
		}
	}
	return n
}
