package model

import (
	"strings"
	"time"
)

// PageRecord is the indexed, flattened form of a Page as stored in the
// pages table. Tag and category lists are joined for storage.
type PageRecord struct {
	Slug        string    `db:"slug" json:"slug"`
	Path        string    `db:"path" json:"path"`
	Title       string    `db:"title" json:"title"`
	LinkTitle   string    `db:"link_title" json:"link_title,omitempty"`
	Description string    `db:"description" json:"description,omitempty"`
	Canonical   string    `db:"canonical" json:"canonical,omitempty"`
	Tags        string    `db:"tags" json:"tags,omitempty"`
	Categories  string    `db:"categories" json:"categories,omitempty"`
	Date        time.Time `db:"date" json:"date,omitzero"`
	NavWeight   int       `db:"nav_weight" json:"nav_weight"`
	License     string    `db:"license" json:"license,omitempty"`
	WordCount   int       `db:"word_count" json:"word_count"`
	ReadTime    int       `db:"read_time" json:"read_time"`
	Checksum    string    `db:"checksum" json:"-"`
	IndexedAt   time.Time `db:"indexed_at" json:"indexed_at"`
}

// NewPageRecord flattens a parsed page for indexing.
func NewPageRecord(p *Page, now time.Time) *PageRecord {
	return &PageRecord{
		Slug:        p.Slug,
		Path:        p.Path,
		Title:       p.Title,
		LinkTitle:   p.LinkTitle,
		Description: p.Description,
		Canonical:   p.Canonical,
		Tags:        strings.Join(p.Tags, ","),
		Categories:  strings.Join(p.Categories, ","),
		Date:        p.Date,
		NavWeight:   p.NavWeight,
		License:     p.License,
		WordCount:   p.WordCount,
		ReadTime:    p.ReadTime,
		Checksum:    p.Checksum,
		IndexedAt:   now,
	}
}
