package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite as database/sql driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS decks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL,
    upload_date TIMESTAMP NOT NULL,
    content TEXT,
    slide_count INTEGER,
    status TEXT NOT NULL DEFAULT 'pending',
    word_count INTEGER,
    char_count INTEGER,
    sentiment_score REAL,
    sentiment_type TEXT,
    document_type TEXT,
    problem TEXT,
    solution TEXT,
    market TEXT,
    experience TEXT,
    skills TEXT,
    key_phrases TEXT,
    summary TEXT
);
CREATE INDEX IF NOT EXISTS idx_decks_filename ON decks (filename);
CREATE INDEX IF NOT EXISTS idx_decks_upload_date ON decks (upload_date DESC);
`

// OpenSQLite opens (and creates if needed) an SQLite database at path with
// write-ahead logging and a busy timeout, then ensures the decks schema.
func OpenSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite mkdir: %w", err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := database.Exec(pragma); err != nil {
			database.Close()
			return nil, fmt.Errorf("sqlite pragma %q: %w", pragma, err)
		}
	}

	if _, err := database.Exec(sqliteSchema); err != nil {
		database.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return database, nil
}
