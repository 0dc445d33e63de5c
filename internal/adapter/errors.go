package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBaseURL is returned by the constructor when no API base URL is
	// configured.
	ErrNoBaseURL = errors.New("names api base url is not configured")
	// ErrNetwork marks failures where no HTTP response was received
	// (dial errors, DNS, timeouts, cancelled contexts).
	ErrNetwork = errors.New("network error")
	// ErrServer marks any response with a non-2xx status.
	ErrServer = errors.New("server error")

	// Status classes, each also matching ErrServer.
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("service unavailable")
)

// ResponseError is returned for non-2xx responses. The body is kept verbatim
// and never parsed.
type ResponseError struct {
	StatusCode int
	Body       string

	kind error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// Unwrap exposes ErrServer and, when known, the status class.
func (e *ResponseError) Unwrap() []error {
	if e.kind == nil {
		return []error{ErrServer}
	}
	return []error{ErrServer, e.kind}
}
