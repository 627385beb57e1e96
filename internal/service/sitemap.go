package service

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/openlessons/bookd/internal/model"
)

type SitemapService struct {
	content *ContentService
	baseURL string
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(content *ContentService, baseURL string) *SitemapService {
	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &SitemapService{
		content: content,
		baseURL: baseURL,
	}
}

// GenerateSitemap generates the sitemap for every published content page.
// A page's canonical URL wins over the derived one.
func (s *SitemapService) GenerateSitemap() ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []model.SitemapURL{},
	}

	pages, err := s.content.FlatList()
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")

	for _, page := range pages {
		loc := page.Canonical
		if loc == "" {
			loc = s.baseURL + "/" + page.Slug
		}

		lastMod := today
		if !page.Date.IsZero() {
			lastMod = page.Date.Format("2006-01-02")
		}

		// Priority drops with nav depth.
		depth := strings.Count(page.Slug, "/")
		priority := "0.6"
		if depth == 0 {
			priority = "0.8"
		} else if depth == 1 {
			priority = "0.7"
		}

		sitemap.URLs = append(sitemap.URLs, model.SitemapURL{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   priority,
		})
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	result := xml.Header + string(output)
	return []byte(result), nil
}
