// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-name-keeper/internal/config"
	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/migrations"
	"github.com/Masterminds/squirrel"
)

// Driver names as registered with database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB wraps *sql.DB with the driver-specific pieces the repositories need:
// the placeholder format for squirrel and the error classifier.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// DriverForDSN maps a DSN to a driver name: postgres:// and postgresql://
// URLs use pgx, everything else is treated as a SQLite file name or URI.
func DriverForDSN(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// NewConnect opens and pings the database selected by cfg.DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch driver := DriverForDSN(cfg.DSN); driver {
	case DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}
}

// Driver reports the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded migrations with the goose dialect matching the
// driver.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

func (db *DB) statementBuilder() squirrel.StatementBuilderType {
	if db.driver == DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// classify wraps err with ErrStoreUnavailable or ErrExecutingQuery.
func (db *DB) classify(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
