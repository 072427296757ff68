package db

import (
	"database/sql"
	"fmt"
)

// sqliteSchema creates the items table. AUTOINCREMENT keeps ids of deleted
// items from being handed out again.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS items (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image       TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL,
    selects     INTEGER NOT NULL DEFAULT 0 CHECK (selects >= 0),
    passes      INTEGER NOT NULL DEFAULT 0 CHECK (passes >= 0),
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS items (
    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image       TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL,
    selects     BIGINT NOT NULL DEFAULT 0 CHECK (selects >= 0),
    passes      BIGINT NOT NULL DEFAULT 0 CHECK (passes >= 0),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category)`,
}

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB, d Dialect) error {
	stmts := sqliteSchema
	if d == Postgres {
		stmts = postgresSchema
	}

	for i, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema (statement %d): %w", i+1, err)
		}
	}
	return nil
}
