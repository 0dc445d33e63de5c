package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidDataProvided   = errors.New("invalid data provided")
)

// Client-side controller errors. Request failures wrap the adapter error so
// that both the action and the cause can be matched with [errors.Is].
var (
	// ErrConfiguration is returned by every network action when the client
	// has no API base URL.
	ErrConfiguration = errors.New("API URL is not configured")

	// ErrBusy is returned when a save or delete is already in flight.
	ErrBusy = errors.New("another request is in progress")

	ErrLoadFailed   = errors.New("could not load the list")
	ErrSaveFailed   = errors.New("could not save the name")
	ErrDeleteFailed = errors.New("could not delete the name")
)
