package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/kanaflash/internal/storage"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// every new connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)

	migrations, err := storage.MigrationSQL()
	require.NoError(t, err)
	for i, m := range migrations {
		_, err = db.Exec(m)
		require.NoError(t, err, "failed to apply migration %d", i)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
