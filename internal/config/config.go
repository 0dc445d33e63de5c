// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// names server and the names client. It is populated by merging values from
// environment variables, command-line flags, an optional config file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: server-side rules checked by go-playground/validator.
type StructuredConfig struct {
	// App holds application-level settings: version and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings of the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach the names API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. The format is chosen by the file extension.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	// LogFile is where the client writes its log. The server always logs
	// to stdout and ignores it.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the storage backends of the server.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver as well: postgres:// and postgresql:// DSNs
	// use pgx, anything else is opened with sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" validate:"required"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// The gRPC server is not started when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS" validate:"omitempty,hostname_port"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`

	// ShutdownTimeout bounds graceful shutdown of the servers.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gte=0"`
}

// Adapter holds the client-side settings of the names API.
type Adapter struct {
	// APIURL is the base URL of the names API (e.g. "http://localhost:8080").
	// An empty value is not a startup error: the client runs and reports a
	// configuration error on every network action.
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

const (
	defaultServerAddress   = "localhost:8080"
	defaultServerDSN       = "names.db"
	defaultServerTimeout   = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultAppVersion      = "dev"
	defaultLogLevel        = "info"
)

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  defaultAppVersion,
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: defaultServerDSN},
		},
		Server: Server{
			HTTPAddress:     defaultServerAddress,
			RequestTimeout:  defaultServerTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (the first
// source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults(serverDefaults()).
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	return cfg, nil
}
