package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openlessons/bookd/internal/config"
	"github.com/openlessons/bookd/internal/db"
	"github.com/openlessons/bookd/internal/repository"
	"github.com/openlessons/bookd/internal/service"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	ContentService *service.ContentService
	QuizService    *service.QuizService
	LintService    *service.LintService
	IndexService   *service.IndexService
	SitemapService *service.SitemapService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	pageRepository := repository.NewPageRepository(database)
	lintRepository := repository.NewLintRepository(database)

	// Services
	contentService := service.NewContentService(cfg.ContentPath, cfg.SiteLicense, cfg.IncludeDrafts)
	quizService := service.NewQuizService(contentService)
	lintService := service.NewLintService(contentService, lintRepository, cfg.StrictLint)
	indexService := service.NewIndexService(contentService, pageRepository)
	sitemapService := service.NewSitemapService(contentService, cfg.AppURL)

	return &App{
		Cfg:            cfg,
		DB:             database,
		ContentService: contentService,
		QuizService:    quizService,
		LintService:    lintService,
		IndexService:   indexService,
		SitemapService: sitemapService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
