// Package migrations embeds the SQL schema of the names server and applies it
// with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] when no connection is given.
var ErrNilDB = errors.New("migration error: db is nil")

// Migrate applies all pending migrations. driver is the database/sql driver
// name ("pgx" or "sqlite3") and selects the goose dialect.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	dialect, err := dialectFor(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (string, error) {
	switch driver {
	case "pgx", "postgres":
		return "pgx", nil
	case "sqlite3", "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("migration error: unsupported driver %q", driver)
	}
}
