package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Adapter: Adapter{APIURL: "http://api"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "http://api", cfg.Adapter.APIURL)
}

// TestBuild_EarlierSourceWins verifies that a later config never overrides a
// field an earlier one already set.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "env"}},
		&StructuredConfig{App: App{Version: "flags", LogLevel: "debug"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":     "env-version",
		"ADAPTER_API_URL": "env-url",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-url", b.configs[0].Adapter.APIURL)
}

// TestWithEnv_SetsError_WhenInvalid verifies that a bad env value is recorded
// and no config is appended.
func TestWithEnv_SetsError_WhenInvalid(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "later"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags / withOverrides ─────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-d", "names.db"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "names.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_SetsError_WhenInvalid(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-request-timeout", "soon"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithOverrides_IgnoresNil(t *testing.T) {
	b := newConfigBuilder()
	b.withOverrides(nil)
	assert.Empty(t, b.configs)

	b.withOverrides(&StructuredConfig{})
	assert.Len(t, b.configs, 1)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a ConfigFilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withFile())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_AppendsConfig_WhenValidFile verifies that a valid file is
// parsed and appended.
func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeConfigFile(t, "cfg.json", `{"app": {"version": "json-version"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		ConfigFilePath: filepath.Join(t.TempDir(), "missing.json"),
	})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesHighestPriorityPath verifies that the path from the
// earliest source is used.
func TestWithFile_UsesHighestPriorityPath(t *testing.T) {
	first := writeConfigFile(t, "first.yaml", "app:\n  version: first\n")
	second := writeConfigFile(t, "second.yaml", "app:\n  version: second\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: ""},
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, defaultServerAddress, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Equal(t, defaultServerDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultServerTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, defaultAppVersion, cfg.App.Version)
}

func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeConfigFile(t, "server.yaml", `
app:
  version: file-version
  log_level: error
server:
  http_address: localhost:7000
  grpc_address: localhost:7001
`)
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "localhost:9000"})

	cfg, err := GetStructuredConfig([]string{
		"-a", "localhost:8000",
		"-app-version", "flag-version",
		"-c", path,
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "flag-version", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "localhost:7001", cfg.Server.GRPCAddress)
}

func TestGetStructuredConfig_InvalidAddress(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": "localhost"})

	cfg, err := GetStructuredConfig(nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestGetStructuredConfig_InvalidLogLevel(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_LOG_LEVEL": "loud"})

	_, err := GetStructuredConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidField)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.APIURL)
	assert.Equal(t, defaultClientTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultClientLogFile, filepath.Base(cfg.App.LogFile))
	assert.Equal(t, defaultLogLevel, cfg.App.LogLevel)
}

func TestGetClientConfig_Overrides(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(&StructuredConfig{
		Adapter: Adapter{APIURL: "http://localhost:8080", RequestTimeout: time.Second},
		App:     App{LogFile: filepath.Join(os.TempDir(), "client.log")},
	})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.APIURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.log", filepath.Base(cfg.App.LogFile))
}

func TestGetClientConfig_EnvAndFile(t *testing.T) {
	path := writeConfigFile(t, "client.json", `{"adapter": {"api_url": "http://file", "request_timeout": "3s"}}`)
	setEnvVars(t, map[string]string{
		"ADAPTER_API_URL": "http://env",
		"CONFIG":          path,
	})

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.Adapter.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_InvalidTimeout(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(&StructuredConfig{
		Adapter: Adapter{RequestTimeout: -time.Second},
	})

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_InvalidLogLevel(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig(&StructuredConfig{App: App{LogLevel: "chatty"}})

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
