// Package testutil builds seeded in-memory stores for tests.
package testutil

import (
	"context"
	"testing"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/seed"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// Counts of the bundled seed set, used by assertions across packages.
const (
	SeedQuestionCount      = 19
	SeedCategoryCount      = 6
	SeedWhichQuestionCount = 7
	SeedArtCategoryID      = 2
	SeedArtQuestionCount   = 4
)

// NewSQLiteDB returns an empty in-memory database with the schema applied.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := &config.Config{DB: config.DBConfig{Driver: config.DriverSQLite, DBName: ":memory:"}}
	db, err := database.NewSQLXDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.EnsureSchema(context.Background(), db))
	return db
}

// NewSeededSQLiteDB returns an in-memory database holding the bundled seed set.
func NewSeededSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db := NewSQLiteDB(t)
	data, err := seed.Default()
	require.NoError(t, err)

	result, err := seed.Apply(context.Background(), db, data, false)
	require.NoError(t, err)
	require.Equal(t, SeedQuestionCount, result.Questions)
	return db
}
