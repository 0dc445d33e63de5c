// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/internal/store"
	"github.com/MKhiriev/go-name-keeper/internal/utils"
	"github.com/MKhiriev/go-name-keeper/models"
)

type namesService struct {
	repository store.NameRepository
	ids        *utils.UUIDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewNamesService returns a [NamesService] that stores entries as given.
// Wrap it with [NewNamesValidationService] before exposing it.
func NewNamesService(repository store.NameRepository, logger *logger.Logger) NamesService {
	return &namesService{
		repository: repository,
		ids:        utils.NewUUIDGenerator(),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (s *namesService) List(ctx context.Context) ([]models.NameEntry, error) {
	entries, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing names: %w", err)
	}
	if entries == nil {
		entries = []models.NameEntry{}
	}

	return entries, nil
}

func (s *namesService) Create(ctx context.Context, request models.NameRequest) (models.NameEntry, error) {
	now := s.now()
	entry := models.NameEntry{
		ID:        models.EntryID(s.ids.Generate()),
		Text:      request.Text,
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	if err := s.repository.Create(ctx, entry); err != nil {
		return models.NameEntry{}, fmt.Errorf("error creating name: %w", err)
	}
	logger.FromContext(ctx).Debug().Str("id", entry.ID.String()).Msg("name created")

	return entry, nil
}

func (s *namesService) Update(ctx context.Context, id models.EntryID, request models.NameRequest) (models.NameEntry, error) {
	now := s.now()
	updated, err := s.repository.Update(ctx, models.NameEntry{
		ID:        id,
		Text:      request.Text,
		UpdatedAt: &now,
	})
	if err != nil {
		return models.NameEntry{}, fmt.Errorf("error updating name %s: %w", id, err)
	}

	return updated, nil
}

func (s *namesService) Delete(ctx context.Context, id models.EntryID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting name %s: %w", id, err)
	}

	return nil
}
