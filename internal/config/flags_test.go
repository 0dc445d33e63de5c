package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
		{
			name:     "IPv6 host is bracketed",
			addr:     NetAddress{Host: "::1", Port: 8080},
			expected: "[::1]:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "all interfaces",
			input:        ":8080",
			expectedAddr: NetAddress{Port: 8080},
		},
		{
			name:         "bracketed IPv6",
			input:        "[::1]:8080",
			expectedAddr: NetAddress{Host: "::1", Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be between 1 and 65535",
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be between 1 and 65535",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr, *addr)
			}
		})
	}
}

// TestParseFlags tests parseFlags
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
		{
			name: "all flags",
			args: []string{
				"-a", "localhost:8080",
				"-grpc-address", "127.0.0.1:9090",
				"-d", "postgres://localhost/names",
				"-c", "/etc/names.yaml",
				"-request-timeout", "30s",
				"-shutdown-timeout", "2s",
				"-log-level", "warn",
				"-app-version", "3.1.4",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
				assert.Equal(t, "postgres://localhost/names", cfg.Storage.DB.DSN)
				assert.Equal(t, "/etc/names.yaml", cfg.ConfigFilePath)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, "3.1.4", cfg.App.Version)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "cfg.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "cfg.json", cfg.ConfigFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	cfg, err := parseFlags([]string{"-a", "not-an-address"})

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	cfg, err := parseFlags([]string{"-token-sign-key", "x"})

	require.Error(t, err)
	assert.Nil(t, cfg)
}

// Parsing twice must not panic on flag redefinition.
func TestParseFlags_Repeatable(t *testing.T) {
	_, err := parseFlags([]string{"-a", ":8080"})
	require.NoError(t, err)

	cfg, err := parseFlags([]string{"-a", ":9090"})
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
}
