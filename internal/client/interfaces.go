// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-name-keeper/models"
)

// NamesClient is what the client CLI drives. Every mutation re-fetches the
// list and prints it.
type NamesClient interface {
	// RunTUI starts the interactive program and blocks until exit.
	RunTUI(ctx context.Context) error

	List(ctx context.Context) error
	Add(ctx context.Context, text string) error
	Edit(ctx context.Context, id models.EntryID, text string) error
	Remove(ctx context.Context, id models.EntryID) error
}
