// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the names client and
// a names API.
//
// The primary abstraction is [NamesAdapter], which decouples the controller
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPNamesAdapter]) built on resty.
//
// Responses with a non-2xx status are reported as [*ResponseError], which
// matches [ErrServer] with [errors.Is]; failures that never produced a
// response match [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-name-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/names_adapter_mock.go -package=mock

// NamesAdapter defines the four operations of the names REST contract.
// Implementations perform no validation: callers must only pass sanitized,
// validated text.
type NamesAdapter interface {
	// List fetches every entry. A response body that is not a JSON array of
	// entries yields an empty list, not an error.
	List(ctx context.Context) ([]models.NameEntry, error)

	// Create adds a new entry with the given text.
	Create(ctx context.Context, text string) error

	// Update replaces the text of the entry identified by id.
	Update(ctx context.Context, id models.EntryID, text string) error

	// Delete removes the entry identified by id.
	Delete(ctx context.Context, id models.EntryID) error
}
