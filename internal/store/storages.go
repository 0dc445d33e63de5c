package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-name-keeper/internal/config"
	"github.com/MKhiriev/go-name-keeper/internal/logger"
)

// Storages bundles the repositories used by the server services together with
// the underlying connection.
type Storages struct {
	NameRepository NameRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating %s database: %w", db.Driver(), err)
	}
	log.Info().Str("driver", db.Driver()).Msg("database migrated")

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds repositories over an already migrated connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		NameRepository: NewNameRepository(db, log),
		db:             db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return s.db.classify(err)
	}
	return nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
