// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-name-keeper/internal/adapter"
	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/internal/validators"
	"github.com/MKhiriev/go-name-keeper/models"
)

// NamesState is a snapshot of the client list screen.
type NamesState struct {
	// List is the last list fetched from the backend.
	List []models.NameEntry

	// EditingID is set while an existing entry is being edited. Submit
	// updates it instead of creating a new entry.
	EditingID models.EntryID

	// Input is the current content of the name field.
	Input string

	Loading    bool
	Submitting bool

	// Err is the last failure to show to the user, nil when none.
	Err error
}

// Editing reports whether Submit would update rather than create.
func (s NamesState) Editing() bool {
	return !s.EditingID.IsZero()
}

// NamesController drives the client list: it validates input, issues at
// most one mutation at a time and re-fetches the list after every
// successful write. It is safe for concurrent use.
type NamesController struct {
	mu      sync.Mutex
	state   NamesState
	adapter adapter.NamesAdapter

	logger *logger.Logger
}

// NewNamesController returns a controller over namesAdapter. A nil adapter
// means the API URL is missing: every network action then fails with
// [ErrConfiguration].
func NewNamesController(namesAdapter adapter.NamesAdapter, logger *logger.Logger) *NamesController {
	return &NamesController{
		adapter: namesAdapter,
		state:   NamesState{List: []models.NameEntry{}},
		logger:  logger,
	}
}

// State returns a copy of the current state.
func (c *NamesController) State() NamesState {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state
	st.List = slices.Clone(c.state.List)
	return st
}

// Load re-fetches the list. On failure the previous list is kept.
func (c *NamesController) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.adapter == nil {
		c.state.Err = ErrConfiguration
		c.mu.Unlock()
		return ErrConfiguration
	}
	c.state.Loading = true
	c.state.Err = nil
	c.mu.Unlock()

	return c.reload(ctx)
}

func (c *NamesController) reload(ctx context.Context) error {
	list, err := c.adapter.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false

	if err != nil {
		c.logger.Err(err).Msg("error loading names")
		c.state.Err = fmt.Errorf("%w: %w", ErrLoadFailed, err)
		return c.state.Err
	}

	if list == nil {
		list = []models.NameEntry{}
	}
	c.state.List = list
	return nil
}

// Submit validates raw and creates a new entry, or updates the one being
// edited. On success the input and edit mode are cleared and the list is
// re-fetched once. Validation failures never reach the network.
func (c *NamesController) Submit(ctx context.Context, raw string) error {
	c.mu.Lock()
	if c.adapter == nil {
		c.state.Err = ErrConfiguration
		c.mu.Unlock()
		return ErrConfiguration
	}
	if c.state.Submitting {
		c.mu.Unlock()
		return ErrBusy
	}

	c.state.Input = validators.StripAngleBrackets(raw)
	text, err := validators.Check(raw)
	if err != nil {
		c.state.Err = err
		c.mu.Unlock()
		return err
	}

	editingID := c.state.EditingID
	c.state.Submitting = true
	c.state.Err = nil
	c.mu.Unlock()

	defer c.setSubmitting(false)

	if editingID.IsZero() {
		err = c.adapter.Create(ctx, text)
	} else {
		err = c.adapter.Update(ctx, editingID, text)
	}
	if err != nil {
		c.logger.Err(err).Str("id", editingID.String()).Msg("error saving name")
		return c.fail(fmt.Errorf("%w: %w", ErrSaveFailed, err))
	}

	c.mu.Lock()
	c.state.Input = ""
	c.state.EditingID = ""
	c.state.Loading = true
	c.mu.Unlock()

	return c.reload(ctx)
}

// Delete removes the entry and re-fetches the list once on success.
func (c *NamesController) Delete(ctx context.Context, id models.EntryID) error {
	c.mu.Lock()
	if c.adapter == nil {
		c.state.Err = ErrConfiguration
		c.mu.Unlock()
		return ErrConfiguration
	}
	if c.state.Submitting {
		c.mu.Unlock()
		return ErrBusy
	}
	if id.IsZero() {
		c.mu.Unlock()
		return validators.ErrInvalidID
	}
	c.state.Submitting = true
	c.state.Err = nil
	c.mu.Unlock()

	defer c.setSubmitting(false)

	if err := c.adapter.Delete(ctx, id); err != nil {
		c.logger.Err(err).Str("id", id.String()).Msg("error deleting name")
		return c.fail(fmt.Errorf("%w: %w", ErrDeleteFailed, err))
	}

	c.mu.Lock()
	if c.state.EditingID == id {
		c.state.EditingID = ""
		c.state.Input = ""
	}
	c.state.Loading = true
	c.mu.Unlock()

	return c.reload(ctx)
}

// StartEdit switches to edit mode for entry and loads its text into the
// input.
func (c *NamesController) StartEdit(entry models.NameEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Input = entry.Text
	c.state.EditingID = entry.ID
}

// CancelEdit leaves edit mode and clears the input.
func (c *NamesController) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Input = ""
	c.state.EditingID = ""
}

// SetInput records the current input with '<' and '>' removed, as the input
// field filters them while typing.
func (c *NamesController) SetInput(raw string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Input = validators.StripAngleBrackets(raw)
	return c.state.Input
}

// ClearError dismisses the current error.
func (c *NamesController) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Err = nil
}

func (c *NamesController) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Err = err
	return err
}

func (c *NamesController) setSubmitting(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Submitting = v
}
