// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/models"
)

type nameRepository struct {
	*DB
	logger *logger.Logger
}

// NewNameRepository returns a [NameRepository] backed by db.
func NewNameRepository(db *DB, log *logger.Logger) NameRepository {
	return &nameRepository{
		DB:     db,
		logger: log,
	}
}

func (r *nameRepository) List(ctx context.Context) ([]models.NameEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNamesQuery(r.statementBuilder())
	if err != nil {
		log.Err(err).Str("func", "nameRepository.List").Msg("error building query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "nameRepository.List").Msg("error executing query")
		return nil, r.classify(err)
	}
	defer rows.Close()

	entries := make([]models.NameEntry, 0)
	for rows.Next() {
		entry, err := scanName(rows)
		if err != nil {
			log.Err(err).Str("func", "nameRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "nameRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *nameRepository) Get(ctx context.Context, id models.EntryID) (models.NameEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNameQuery(r.statementBuilder(), id)
	if err != nil {
		return models.NameEntry{}, err
	}

	entry, err := scanName(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.NameEntry{}, ErrNameNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "nameRepository.Get").Str("id", id.String()).Msg("error getting name")
		return models.NameEntry{}, r.classify(err)
	}

	return entry, nil
}

func (r *nameRepository) Create(ctx context.Context, entry models.NameEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNameQuery(r.statementBuilder(), entry)
	if err != nil {
		return err
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "nameRepository.Create").Msg("error inserting name")
		return r.classify(err)
	}

	return nil
}

func (r *nameRepository) Update(ctx context.Context, entry models.NameEntry) (models.NameEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNameQuery(r.statementBuilder(), entry)
	if err != nil {
		return models.NameEntry{}, err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "nameRepository.Update").Str("id", entry.ID.String()).Msg("error updating name")
		return models.NameEntry{}, r.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NameEntry{}, r.classify(err)
	}
	if affected == 0 {
		return models.NameEntry{}, ErrNameNotFound
	}

	return r.Get(ctx, entry.ID)
}

func (r *nameRepository) Delete(ctx context.Context, id models.EntryID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNameQuery(r.statementBuilder(), id)
	if err != nil {
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "nameRepository.Delete").Str("id", id.String()).Msg("error deleting name")
		return r.classify(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.classify(err)
	}
	if affected == 0 {
		return ErrNameNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanName(row rowScanner) (models.NameEntry, error) {
	var (
		entry     models.NameEntry
		id        string
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)
	if err := row.Scan(&id, &entry.Text, &createdAt, &updatedAt); err != nil {
		return models.NameEntry{}, err
	}

	entry.ID = models.EntryID(id)
	if createdAt.Valid {
		t := createdAt.Time
		entry.CreatedAt = &t
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		entry.UpdatedAt = &t
	}
	return entry, nil
}
