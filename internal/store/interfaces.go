package store

import (
	"context"

	"github.com/MKhiriev/go-name-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/name_repository_mock.go -package=mock

// NameRepository persists name entries in the "names" table.
type NameRepository interface {
	// List returns every entry ordered by creation time, then id. An empty
	// table yields an empty, non-nil slice.
	List(ctx context.Context) ([]models.NameEntry, error)

	// Get returns the entry with the given id or [ErrNameNotFound].
	Get(ctx context.Context, id models.EntryID) (models.NameEntry, error)

	// Create inserts entry as is. ID and timestamps are set by the caller.
	Create(ctx context.Context, entry models.NameEntry) error

	// Update replaces the text and updated_at of an existing entry and
	// returns the stored row. Returns [ErrNameNotFound] for an unknown id.
	Update(ctx context.Context, entry models.NameEntry) (models.NameEntry, error)

	// Delete removes the entry. Returns [ErrNameNotFound] for an unknown id.
	Delete(ctx context.Context, id models.EntryID) error
}

// ErrorClassificator decides whether a driver error means the database is
// temporarily unreachable.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
