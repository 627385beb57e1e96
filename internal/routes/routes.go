package routes

import (
	"net/http"

	"github.com/openlessons/bookd/internal/app"
	"github.com/openlessons/bookd/internal/handler"
	"github.com/openlessons/bookd/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	pages := handler.NewPagesHandler(app.ContentService)
	quiz := handler.NewQuizHandler(app.QuizService)
	lint := handler.NewLintHandler(app.LintService)
	search := handler.NewSearchHandler(app.IndexService)
	seo := handler.NewSEOHandler(app.SitemapService, app.Cfg.AppURL)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", health.Healthz)

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	// Content
	mux.HandleFunc("GET /api/pages", pages.List)
	mux.HandleFunc("GET /api/pages/{slug...}", pages.Show)
	mux.HandleFunc("GET /api/nav", pages.Nav)

	// Quizzes
	mux.HandleFunc("GET /api/quizzes", quiz.AllQuizzes)
	mux.HandleFunc("GET /api/quizzes/{slug...}", quiz.PageQuizzes)

	// Search
	mux.HandleFunc("GET /api/search", search.Search)

	// Integrity reports
	mux.HandleFunc("GET /api/lint", lint.Latest)

	// Mutating endpoints (rate limited)
	rateLimiter := middleware.RateLimitMutations()
	mux.HandleFunc("POST /api/lint", rateLimiter(lint.Run))
	mux.HandleFunc("POST /api/reindex", rateLimiter(search.Reindex))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.WithURLPath,
	)
}
