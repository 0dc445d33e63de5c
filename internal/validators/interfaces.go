// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input sanitization and validation for name
// entries.
//
// Core concepts:
//   - Sanitize, ContainsDangerousContent and Validate form the name
//     pipeline run before anything is sent to the backend or stored.
//   - Validator: generic interface to validate arbitrary values or
//     structures, with optional field-level scoping. [NameValidator]
//     implements it for the name models so the server can re-validate
//     every write independently of the client.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
