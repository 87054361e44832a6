// Package sqlite opens the SQLite database used by the sqlite storage driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS cards (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	rarity   TEXT NOT NULL CHECK (rarity IN ('common', 'rare', 'epic', 'legendary')),
	value    REAL NOT NULL CHECK (value >= 0),
	image    TEXT NOT NULL DEFAULT '',
	owned    INTEGER NOT NULL DEFAULT 0,
	category TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS collection_stats (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	payload    TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	db, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection serializes writes.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
