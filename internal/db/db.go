// Package db provides connection management and the persistence gateway
// for NoteDesk.
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/kimhsiao/notedesk/internal/noterr"
)

// FileName is the database file created under the data directory.
const FileName = "notedesk.db"

// DB wraps the sql.DB with NoteDesk-specific configuration.
type DB struct {
	*sql.DB
}

// Open opens the SQLite database under dataDir, creating the directory if
// needed. The database is opened with:
// - a single connection, because SQLite does not support multiple writers
// - WAL mode for crash safety
// - a busy timeout so a stale lock does not fail writes immediately
func Open(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, noterr.Wrap(noterr.CodeStore, "create data directory", err)
	}

	dbPath := filepath.Join(dataDir, FileName)

	// Open database with modernc.org/sqlite (pure Go, no CGO)
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, noterr.Wrap(noterr.CodeStore, "open database", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := sqlDB.Exec(pragma); err != nil {
			sqlDB.Close()
			return nil, noterr.Wrap(noterr.CodeStore, "configure database", err)
		}
	}

	return &DB{sqlDB}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.DB.Close()
}
