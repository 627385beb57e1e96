package handler

import (
	"net/http"

	"github.com/openlessons/bookd/internal/service"
)

type SEOHandler struct {
	sitemapService *service.SitemapService
	appURL         string
}

// NewSEOHandler creates a new SEO handler
func NewSEOHandler(sitemapService *service.SitemapService, appURL string) *SEOHandler {
	return &SEOHandler{
		sitemapService: sitemapService,
		appURL:         appURL,
	}
}

// Sitemap serves the generated sitemap.xml
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	sitemap, err := h.sitemapService.GenerateSitemap()
	if err != nil {
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(sitemap)
}

// Robots serves robots.txt pointing crawlers at the sitemap
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("User-agent: *\nAllow: /\n\nSitemap: " + h.appURL + "/sitemap.xml\n"))
}
