package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesSQLiteDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bookd.db")

	database, err := Init("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
	assert.NoError(t, database.Ping())
}

func TestInit_UnknownDriver(t *testing.T) {
	_, err := Init("oracle", "whatever")
	assert.Error(t, err)
}

func TestRunMigrations(t *testing.T) {
	database, err := Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, RunMigrations(database.DB, "sqlite"))

	// Both domain tables exist after Up.
	var n int
	require.NoError(t, database.Get(&n, `SELECT COUNT(*) FROM pages`))
	assert.Zero(t, n)
	require.NoError(t, database.Get(&n, `SELECT COUNT(*) FROM lint_runs`))
	assert.Zero(t, n)

	// Down rolls back the latest migration only.
	require.NoError(t, MigrateDown(database.DB, "sqlite"))
	assert.Error(t, database.Get(&n, `SELECT COUNT(*) FROM lint_runs`))
	require.NoError(t, database.Get(&n, `SELECT COUNT(*) FROM pages`))
}
