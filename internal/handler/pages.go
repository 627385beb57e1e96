package handler

import (
	"net/http"
	"time"

	"github.com/openlessons/bookd/internal/model"
	"github.com/openlessons/bookd/internal/service"
)

type PagesHandler struct {
	content *service.ContentService
}

func NewPagesHandler(content *service.ContentService) *PagesHandler {
	return &PagesHandler{
		content: content,
	}
}

// pageSummary is the listing shape: metadata without body content.
type pageSummary struct {
	Slug        string    `json:"slug"`
	Path        string    `json:"path"`
	Title       string    `json:"title"`
	LinkTitle   string    `json:"link_title,omitempty"`
	Description string    `json:"description,omitempty"`
	Canonical   string    `json:"canonical,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	Date        time.Time `json:"date,omitzero"`
	NavWeight   int       `json:"nav_weight"`
	WordCount   int       `json:"word_count"`
	ReadTime    int       `json:"read_time"`
	Quizzes     int       `json:"quizzes"`
	CodeBlocks  int       `json:"code_blocks"`
}

func summarize(page *model.Page) pageSummary {
	return pageSummary{
		Slug:        page.Slug,
		Path:        page.Path,
		Title:       page.Title,
		LinkTitle:   page.LinkTitle,
		Description: page.Description,
		Canonical:   page.Canonical,
		Tags:        page.Tags,
		Categories:  page.Categories,
		Date:        page.Date,
		NavWeight:   page.NavWeight,
		WordCount:   page.WordCount,
		ReadTime:    page.ReadTime,
		Quizzes:     len(page.Quizzes),
		CodeBlocks:  len(page.CodeBlocks),
	}
}

// List returns all content pages in nav order. Optional ?tag= and
// ?category= filters narrow the result.
func (h *PagesHandler) List(w http.ResponseWriter, r *http.Request) {
	var pages []*model.Page
	var err error

	tag := r.URL.Query().Get("tag")
	category := r.URL.Query().Get("category")

	switch {
	case tag != "":
		pages, err = h.content.PagesByTag(tag)
	case category != "":
		pages, err = h.content.PagesByCategory(category)
	default:
		pages, err = h.content.FlatList()
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load pages")
		return
	}

	summaries := make([]pageSummary, 0, len(pages))
	for _, page := range pages {
		summaries = append(summaries, summarize(page))
	}

	writeJSON(w, http.StatusOK, summaries)
}

// Show returns one page with its body, rendered HTML, code blocks and
// quizzes. An empty slug resolves to the first page in nav order.
func (h *PagesHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	page, err := h.content.Page(slug)
	if err != nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	prev, next, err := h.content.PrevNext(page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load navigation")
		return
	}

	response := struct {
		*model.Page
		Prev *pageRef `json:"prev,omitempty"`
		Next *pageRef `json:"next,omitempty"`
	}{Page: page}

	if prev != nil {
		response.Prev = &pageRef{Slug: prev.Slug, Title: prev.NavLabel()}
	}
	if next != nil {
		response.Next = &pageRef{Slug: next.Slug, Title: next.NavLabel()}
	}

	writeJSON(w, http.StatusOK, response)
}

type pageRef struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// navNode is the sidebar shape of the content tree.
type navNode struct {
	Slug     string    `json:"slug"`
	Label    string    `json:"label"`
	Weight   int       `json:"weight"`
	Section  bool      `json:"section,omitempty"`
	Children []navNode `json:"children,omitempty"`
}

func toNavNode(page *model.Page) navNode {
	node := navNode{
		Slug:    page.Slug,
		Label:   page.NavLabel(),
		Weight:  page.NavWeight,
		Section: page.IsSection(),
	}
	for _, child := range page.Children {
		node.Children = append(node.Children, toNavNode(child))
	}
	return node
}

// Nav returns the ordered navigation tree.
func (h *PagesHandler) Nav(w http.ResponseWriter, r *http.Request) {
	tree, err := h.content.Tree()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load navigation")
		return
	}

	root := toNavNode(tree)
	writeJSON(w, http.StatusOK, root.Children)
}
