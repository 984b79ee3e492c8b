package services

import (
	"testing"

	"github.com/isdelr/vocab-trainer/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testHashCost = bcrypt.MinCost

// newTestDB returns a migrated in-memory SQLite database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	return openTestDB(t, ":memory:")
}

func openTestDB(t *testing.T, dsn string) *sqlx.DB {
	t.Helper()
	db, err := database.New("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}
