// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a write request body is not a JSON
	// object of the form {"texto": string}.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidRequestBody is returned when the decoded body fails struct
	// validation (e.g. "texto" is missing).
	ErrInvalidRequestBody = errors.New("invalid request body")
)
