package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid.
var (
	// ErrInvalidField is wrapped once per struct field that fails its
	// validate tag.
	ErrInvalidField = errors.New("invalid configuration field")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level client
	// settings (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
