package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractQuizzes(t *testing.T) {
	body := strings.Join([]string{
		"Intro paragraph.",
		"",
		"{{< quizdown >}}",
		"",
		"### Which keyword declares a constant?",
		"",
		"1. [x] `const`",
		"2. [ ] `let`",
		"3. [ ] `var`",
		"",
		"> **Explanation:** `const` declares a block-scoped binding.",
		"> It cannot be reassigned.",
		"",
		"### Is JavaScript dynamically typed?",
		"",
		"- [x] Yes",
		"- [ ] No",
		"",
		"> **Explanation:** Types are attached to values, not variables.",
		"{{< /quizdown >}}",
		"",
		"Outro paragraph.",
	}, "\n")

	stripped, quizzes, issues := ExtractQuizzes(body, 5)

	require.Empty(t, issues)
	require.Len(t, quizzes, 1)

	assert.Contains(t, stripped, "Intro paragraph.")
	assert.Contains(t, stripped, "Outro paragraph.")
	assert.NotContains(t, stripped, "quizdown")
	assert.NotContains(t, stripped, "[x]")

	quiz := quizzes[0]
	assert.Equal(t, 7, quiz.Line) // shortcode on the 3rd body line, baseLine 5

	require.Len(t, quiz.Questions, 2)

	first := quiz.Questions[0]
	assert.Equal(t, "Which keyword declares a constant?", first.Prompt)
	assert.Equal(t, 9, first.Line)
	require.Len(t, first.Options, 3)
	assert.Equal(t, "`const`", first.Options[0].Text)
	assert.True(t, first.Options[0].Correct)
	assert.False(t, first.Options[1].Correct)
	assert.False(t, first.Options[2].Correct)
	assert.Equal(t, "`const` declares a block-scoped binding. It cannot be reassigned.", first.Explanation)

	second := quiz.Questions[1]
	assert.Equal(t, "Is JavaScript dynamically typed?", second.Prompt)
	require.Len(t, second.Options, 2)
	assert.True(t, second.Options[0].Correct)
	assert.Equal(t, 1, second.CorrectCount())
	assert.Equal(t, "Types are attached to values, not variables.", second.Explanation)
}

func TestExtractQuizzes_NoQuizBlocks(t *testing.T) {
	body := "# Heading\n\nJust prose, no shortcodes."

	stripped, quizzes, issues := ExtractQuizzes(body, 1)

	assert.Equal(t, body, stripped)
	assert.Empty(t, quizzes)
	assert.Empty(t, issues)
}

func TestExtractQuizzes_ShortcodeInsideCodeFence(t *testing.T) {
	body := strings.Join([]string{
		"Quizzes use the quizdown shortcode:",
		"",
		"```markdown",
		"{{< quizdown >}}",
		"### Sample question?",
		"- [x] Yes",
		"{{< /quizdown >}}",
		"```",
		"",
		"{{< quizdown >}}",
		"### Did you read the example?",
		"- [x] Yes",
		"- [ ] No",
		"{{< /quizdown >}}",
	}, "\n")

	stripped, quizzes, issues := ExtractQuizzes(body, 1)

	assert.Empty(t, issues)

	// Only the real block counts; the fenced example is body text.
	require.Len(t, quizzes, 1)
	assert.Equal(t, 11, quizzes[0].Line)
	require.Len(t, quizzes[0].Questions, 1)
	assert.Equal(t, "Did you read the example?", quizzes[0].Questions[0].Prompt)

	assert.Contains(t, stripped, "```markdown\n{{< quizdown >}}\n### Sample question?\n- [x] Yes\n{{< /quizdown >}}\n```")
	assert.NotContains(t, stripped, "Did you read the example?")
}

func TestExtractQuizzes_Unterminated(t *testing.T) {
	body := strings.Join([]string{
		"{{< quizdown >}}",
		"",
		"### Lonely question?",
		"",
		"- [x] Yes",
		"- [ ] No",
		"",
		"> **Explanation:** Still parsed.",
	}, "\n")

	_, quizzes, issues := ExtractQuizzes(body, 1)

	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Line)
	assert.Contains(t, issues[0].Message, "not terminated")

	// The open block is still parsed so its questions get linted too.
	require.Len(t, quizzes, 1)
	require.Len(t, quizzes[0].Questions, 1)
	assert.Equal(t, "Lonely question?", quizzes[0].Questions[0].Prompt)
}

func TestExtractQuizzes_OptionBeforeQuestion(t *testing.T) {
	body := strings.Join([]string{
		"{{< quizdown >}}",
		"- [x] Orphan option",
		"{{< /quizdown >}}",
	}, "\n")

	_, quizzes, issues := ExtractQuizzes(body, 1)

	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Line)
	assert.Contains(t, issues[0].Message, "before any question")

	require.Len(t, quizzes, 1)
	assert.Empty(t, quizzes[0].Questions)
}

func TestExtractQuizzes_PromptProse(t *testing.T) {
	body := strings.Join([]string{
		"{{< quizdown >}}",
		"### Consider the snippet below.",
		"What does it log?",
		"",
		"1. [x] `undefined`",
		"2. [ ] a ReferenceError",
		"",
		"> **Explanation:** Declarations hoist, assignments do not.",
		"{{< /quizdown >}}",
	}, "\n")

	_, quizzes, issues := ExtractQuizzes(body, 1)

	require.Empty(t, issues)
	require.Len(t, quizzes, 1)
	require.Len(t, quizzes[0].Questions, 1)
	assert.Equal(t, "Consider the snippet below. What does it log?", quizzes[0].Questions[0].Prompt)
}

func TestExtractQuizzes_MultipleBlocks(t *testing.T) {
	body := strings.Join([]string{
		"{{< quizdown >}}",
		"### One?",
		"- [x] a",
		"- [ ] b",
		"> **Explanation:** first.",
		"{{< /quizdown >}}",
		"",
		"Some prose between.",
		"",
		"{{<quizdown>}}",
		"### Two?",
		"- [ ] a",
		"- [x] b",
		"> **Explanation:** second.",
		"{{</quizdown>}}",
	}, "\n")

	stripped, quizzes, issues := ExtractQuizzes(body, 1)

	require.Empty(t, issues)
	require.Len(t, quizzes, 2)
	assert.Contains(t, stripped, "Some prose between.")
	assert.Equal(t, "One?", quizzes[0].Questions[0].Prompt)
	assert.Equal(t, "Two?", quizzes[1].Questions[0].Prompt)
}
