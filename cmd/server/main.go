package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openlessons/bookd/internal/app"
	"github.com/openlessons/bookd/internal/config"
	"github.com/openlessons/bookd/internal/logger"
	"github.com/openlessons/bookd/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial index so search works before the first reindex request.
	if _, err := app.IndexService.Sync(ctx); err != nil {
		slog.Error("initial index failed", "error", err)
	}

	// Optional periodic reindex to pick up content edits.
	if cfg.ReindexInterval > 0 {
		go reindexLoop(ctx, app, cfg.ReindexInterval)
	}

	handler := routes.SetupRoutes(app)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "content", cfg.ContentPath)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

func reindexLoop(ctx context.Context, app *app.App, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := app.IndexService.Sync(ctx)
			if err != nil {
				slog.Error("periodic reindex failed", "error", err)
			}
		}
	}
}
