// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// EntryID is the opaque identifier of a [NameEntry] assigned by the backend.
//
// Backends are free to use numeric or string identifiers, so EntryID accepts
// both JSON numbers and JSON strings on decode and always keeps the textual
// form. It is echoed verbatim into request paths and never interpreted.
type EntryID string

// String returns the textual form of the identifier.
func (id EntryID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is absent (entry not yet persisted).
func (id EntryID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts a JSON string, a JSON number, or null.
func (id *EntryID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = EntryID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("entry id must be a string or a number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("entry id must be a string or a number: %w", err)
	}
	*id = EntryID(n.String())
	return nil
}

// NameEntry represents one item of the names list.
//
// Text is always a sanitized, validated name: 5 to 25 characters made only of
// Latin letters, Spanish accented vowels, ñ/Ñ and whitespace. The JSON field
// name "texto" is part of the backend contract.
type NameEntry struct {
	// ID is assigned by the backend; empty for entries not yet persisted.
	ID EntryID `json:"id"`

	// Text is the canonical name.
	Text string `json:"texto"`

	// CreatedAt is set by the reference backend only. Other backends may
	// omit it.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is set by the reference backend only.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NameRequest is the body of create (POST /crud) and update
// (PUT /crud/{id}) requests.
type NameRequest struct {
	Text string `json:"texto" validate:"required"`
}
