package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Init opens the page-index database. sqlite is the default driver and keeps
// bookd self-contained next to its content directory; pgx serves multi-node
// deployments.
func Init(driver, connection string) (*sqlx.DB, error) {
	// The sqlite file lives under a data directory that may not exist on
	// first boot.
	if driver == "sqlite" {
		if dir := filepath.Dir(connection); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data directory: %w", err)
			}
		}
	}

	database, err := sqlx.Connect(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	// The index is small and read-mostly: search queries dominate, writes
	// only happen on reindex. A handful of connections is plenty.
	database.SetMaxOpenConns(10)
	database.SetMaxIdleConns(2)
	database.SetConnMaxLifetime(30 * time.Minute)

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("page index connected", "driver", driver)
	return database, nil
}
