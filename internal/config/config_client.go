package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultClientTimeout = 15 * time.Second
	defaultClientLogFile = "names.log"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogFile is the path of the client log file. The TUI owns the terminal,
	// so the client never logs to stdout.
	LogFile string
	// LogLevel is a zerolog level name.
	LogLevel string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIURL is the base URL of the names API. May be empty.
	APIURL string
	// RequestTimeout is the timeout of every outbound client request.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the API base URL and the request timeout.
	Adapter ClientAdapter
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
			LogFile:  defaultLogFilePath(),
		},
		Adapter: Adapter{
			RequestTimeout: defaultClientTimeout,
		},
	}
}

// defaultLogFilePath places the log next to the executable, or in the working
// directory when the executable path is unknown.
func defaultLogFilePath() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultClientLogFile
	}

	return filepath.Join(filepath.Dir(exe), defaultClientLogFile)
}

// GetClientConfig builds and validates a client-specific config view.
//
// Sources, first one setting a field wins: environment variables, overrides
// (the CLI flags of the client), the config file, built-in defaults.
// A missing API URL is not an error here.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withOverrides(overrides).
		withFile().
		withDefaults(clientDefaults()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			APIURL:         cfg.Adapter.APIURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
