package handler

import (
	"net/http"
	"strings"

	"github.com/openlessons/bookd/internal/service"
)

type SearchHandler struct {
	indexService *service.IndexService
}

func NewSearchHandler(indexService *service.IndexService) *SearchHandler {
	return &SearchHandler{
		indexService: indexService,
	}
}

// Search queries the page index by title, description, tags or categories.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	records, err := h.indexService.Search(term)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// Reindex reloads the content tree and syncs the page index.
func (h *SearchHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	written, err := h.indexService.Sync(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reindex failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"written": written,
	})
}
