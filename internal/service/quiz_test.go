package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizService(t *testing.T) {
	content := NewContentService(bookFixture(t), "", false)
	quiz := NewQuizService(content)

	quizzes, err := quiz.Quizzes("getting-started/setup")
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, "getting-started/setup", quizzes[0].PageSlug)
	require.Len(t, quizzes[0].Questions, 1)
	assert.Equal(t, "Which command prints the Node.js version?", quizzes[0].Questions[0].Prompt)

	// Pages without quizzes return an empty slice, not an error.
	quizzes, err = quiz.Quizzes("glossary")
	require.NoError(t, err)
	assert.Empty(t, quizzes)

	_, err = quiz.Quizzes("missing/page")
	assert.Error(t, err)
}

func TestQuizService_AllQuizzes(t *testing.T) {
	content := NewContentService(bookFixture(t), "", false)
	quiz := NewQuizService(content)

	all, err := quiz.AllQuizzes()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	count, err := quiz.QuestionCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
