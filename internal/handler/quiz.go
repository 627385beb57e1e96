package handler

import (
	"net/http"

	"github.com/openlessons/bookd/internal/service"
)

type QuizHandler struct {
	quizService *service.QuizService
}

func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// PageQuizzes returns the quiz blocks of one page.
func (h *QuizHandler) PageQuizzes(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	quizzes, err := h.quizService.Quizzes(slug)
	if err != nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	writeJSON(w, http.StatusOK, quizzes)
}

// AllQuizzes returns every quiz in the book, in nav order.
func (h *QuizHandler) AllQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.quizService.AllQuizzes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load quizzes")
		return
	}

	writeJSON(w, http.StatusOK, quizzes)
}
