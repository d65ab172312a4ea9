package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = map[string][]string{
	"pgx": {
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category INTEGER,
			difficulty INTEGER
		)`,
	},
	"sqlite3": {
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category INTEGER,
			difficulty INTEGER
		)`,
	},
}

// EnsureSchema creates the categories and questions tables when they are
// missing. It is a development convenience for the seed tool and tests;
// production schemas are provisioned outside this service.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements, ok := schemaStatements[db.DriverName()]
	if !ok {
		return fmt.Errorf("schema bootstrap is not supported for driver %q", db.DriverName())
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not create schema: %w", err)
		}
	}
	return nil
}
