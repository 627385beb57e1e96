package model

import (
	"time"
)

// Page is a single Markdown document from the book's content tree,
// front-matter metadata plus parsed body content. Pages with children
// are sections backed by an _index.md file.
type Page struct {
	Slug        string    `json:"slug"`
	Path        string    `json:"path"`
	Title       string    `json:"title"`
	LinkTitle   string    `json:"link_title,omitempty"`
	Description string    `json:"description,omitempty"`
	Canonical   string    `json:"canonical,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Date        time.Time `json:"date,omitzero"`
	NavWeight   int       `json:"nav_weight"`
	License     string    `json:"license,omitempty"`
	Draft       bool      `json:"draft,omitempty"`

	Content     string `json:"-"`                      // raw file contents
	Body        string `json:"body,omitempty"`         // markdown after front-matter, quiz blocks stripped
	HTMLContent string `json:"html_content,omitempty"` // rendered body

	WordCount int    `json:"word_count"`
	ReadTime  int    `json:"read_time"`
	Checksum  string `json:"-"`

	CodeBlocks []CodeBlock `json:"code_blocks,omitempty"`
	Quizzes    []Quiz      `json:"quizzes,omitempty"`

	Children []*Page `json:"children,omitempty"`
	Parent   *Page   `json:"-"`

	// Problems collects load-time diagnostics (bad front-matter, malformed
	// quiz blocks) for the lint engine. Never serialized with the page.
	Problems []ParseIssue `json:"-"`

	// TitleDerived marks a page whose title was synthesized from its slug
	// because front-matter omitted one. The fallback keeps the page
	// renderable; lint still reports the missing field.
	TitleDerived bool `json:"-"`
}

// NavLabel is the sidebar label: linkTitle when set, otherwise title.
func (p *Page) NavLabel() string {
	if p.LinkTitle != "" {
		return p.LinkTitle
	}
	return p.Title
}

// IsSection reports whether the page is a directory node in the nav tree.
func (p *Page) IsSection() bool {
	return len(p.Children) > 0
}

// CodeBlock is a fenced code block lifted out of a page body.
type CodeBlock struct {
	Language  string `json:"language"`
	Code      string `json:"code"`
	Line      int    `json:"line"`
	IsMermaid bool   `json:"is_mermaid,omitempty"`
}
