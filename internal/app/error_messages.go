// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the names
// client front ends (the TUI and the CLI subcommands).
//
// Keeping them in one place keeps the wording identical between the two.
package app

const (
	// MsgMissingAPIURL is shown on every network action when the client was
	// started without an API base URL.
	MsgMissingAPIURL = "API URL is not configured: set ADAPTER_API_URL or --api-url"

	// MsgServerUnavailable is shown when the backend cannot be reached.
	MsgServerUnavailable = "network is down or the server is unavailable"

	// MsgServerStatus reports a non-2xx response by its status code.
	MsgServerStatus = "server responded with HTTP %d"

	MsgLoadFailed   = "could not load the list"
	MsgSaveFailed   = "could not save the name"
	MsgDeleteFailed = "could not delete the name"

	// MsgBusy is shown when an action is attempted while a save or delete is
	// still in flight.
	MsgBusy = "please wait, a request is in progress"

	MsgNameAdded   = "name added"
	MsgNameUpdated = "name updated"
	MsgNameDeleted = "name deleted"
	MsgCopied      = "copied to clipboard"

	// MsgHelper describes the accepted input under the name field.
	MsgHelper = "Letters and spaces only. Minimum 5, maximum 25 characters."

	MsgLoading    = "Loading..."
	MsgEmptyList  = "No names yet. Add the first one above."
	MsgTotal      = "Total"
	MsgItemsCount = "%d items"
)
