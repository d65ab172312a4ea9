package models

import "database/sql"

// Category maps a row of the categories table.
type Category struct {
	ID   int64  `db:"id"`
	Type string `db:"type"`
}

// Question maps a row of the questions table. category and difficulty are
// nullable columns.
type Question struct {
	ID         int64         `db:"id"`
	Question   string        `db:"question"`
	Answer     string        `db:"answer"`
	Category   sql.NullInt64 `db:"category"`
	Difficulty sql.NullInt64 `db:"difficulty"`
}
