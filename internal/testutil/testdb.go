package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/optistudy/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory database that is closed with the test.
// It already holds the default settings row (6h/day, no user cap).
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, db.MemoryPath)
}

// NewFileTestDB opens a migrated database file under t.TempDir and returns
// its path, for tests that close and reopen the planner's store.
func NewFileTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "optistudy.db")
	return openTestDB(t, path), path
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
