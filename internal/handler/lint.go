package handler

import (
	"errors"
	"net/http"

	"github.com/openlessons/bookd/internal/repository"
	"github.com/openlessons/bookd/internal/service"
)

type LintHandler struct {
	lintService *service.LintService
}

func NewLintHandler(lintService *service.LintService) *LintHandler {
	return &LintHandler{
		lintService: lintService,
	}
}

// Latest returns the most recent persisted lint report.
func (h *LintHandler) Latest(w http.ResponseWriter, r *http.Request) {
	report, err := h.lintService.LatestReport()
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			writeError(w, http.StatusNotFound, "no lint run recorded yet")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load lint report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Run lints the content tree now and returns the fresh report.
func (h *LintHandler) Run(w http.ResponseWriter, r *http.Request) {
	report, err := h.lintService.Run(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "lint run failed")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
