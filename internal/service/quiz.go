package service

import (
	"github.com/openlessons/bookd/internal/model"
)

// QuizService exposes the quiz blocks extracted from content pages.
type QuizService struct {
	content *ContentService
}

func NewQuizService(content *ContentService) *QuizService {
	return &QuizService{content: content}
}

// Quizzes returns the quiz blocks of a single page, in document order.
func (s *QuizService) Quizzes(slug string) ([]model.Quiz, error) {
	page, err := s.content.Page(slug)
	if err != nil {
		return nil, err
	}
	return page.Quizzes, nil
}

// AllQuizzes returns every quiz block in the book, in nav order.
func (s *QuizService) AllQuizzes() ([]model.Quiz, error) {
	pages, err := s.content.FlatList()
	if err != nil {
		return nil, err
	}

	var quizzes []model.Quiz
	for _, page := range pages {
		quizzes = append(quizzes, page.Quizzes...)
	}
	return quizzes, nil
}

// QuestionCount returns the number of questions across the whole book.
func (s *QuizService) QuestionCount() (int, error) {
	quizzes, err := s.AllQuizzes()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, quiz := range quizzes {
		count += len(quiz.Questions)
	}
	return count, nil
}
