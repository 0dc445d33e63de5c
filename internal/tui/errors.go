// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-name-keeper/internal/adapter"
	"github.com/MKhiriev/go-name-keeper/internal/app"
	"github.com/MKhiriev/go-name-keeper/internal/service"
	"github.com/MKhiriev/go-name-keeper/internal/validators"
)

const (
	maxErrorWidth = 120
	maxBodyWidth  = 60
)

// HumanizeError turns controller errors into one status line. Validation
// errors keep their own message; request failures name the action and,
// when the server could not be reached, say so instead of the raw cause.
// Response bodies are cut short and stripped of terminal control sequences.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrConfiguration):
		return app.MsgMissingAPIURL
	case errors.Is(err, service.ErrBusy):
		return app.MsgBusy
	case validators.IsValidationError(err), errors.Is(err, validators.ErrInvalidID):
		return err.Error()
	}

	action := fitText(err.Error(), maxErrorWidth)
	switch {
	case errors.Is(err, service.ErrLoadFailed):
		action = app.MsgLoadFailed
	case errors.Is(err, service.ErrSaveFailed):
		action = app.MsgSaveFailed
	case errors.Is(err, service.ErrDeleteFailed):
		action = app.MsgDeleteFailed
	}

	if isServerUnavailable(err) {
		return action + ": " + app.MsgServerUnavailable
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		msg := action + ": " + fmt.Sprintf(app.MsgServerStatus, respErr.StatusCode)
		if body := strings.TrimSpace(fitText(respErr.Body, maxBodyWidth)); body != "" {
			msg += ": " + body
		}
		return msg
	}

	return action
}

func isServerUnavailable(err error) bool {
	if errors.Is(err, adapter.ErrNetwork) || errors.Is(err, adapter.ErrUnavailable) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
