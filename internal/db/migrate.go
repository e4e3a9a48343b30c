// Package db provides database schema migration management.
package db

import (
	"embed"

	"github.com/pressly/goose/v3"

	"github.com/kimhsiao/notedesk/internal/noterr"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the schema up to date. Safe to call on every startup;
// applied versions are skipped.
func Migrate(db *DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return noterr.Wrap(noterr.CodeMigration, "set dialect", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		return noterr.Wrap(noterr.CodeMigration, "apply migrations", err)
	}

	return nil
}
