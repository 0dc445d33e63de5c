package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedConfigFormat is returned for config files whose extension is
// neither .json, .yaml nor .yml.
var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

// StructuredFileConfig is the on-disk layout of a config file. The same
// layout is accepted as JSON and as YAML.
type StructuredFileConfig struct {
	App struct {
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
		LogFile  string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		GRPCAddress     string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		APIURL         string   `json:"api_url" yaml:"api_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  f.App.Version,
			LogLevel: f.App.LogLevel,
			LogFile:  f.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     f.Server.HTTPAddress,
			GRPCAddress:     f.Server.GRPCAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			APIURL:         f.Adapter.APIURL,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from plain numbers of nanoseconds, in both JSON
// and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a scalar, got yaml kind %d", value.Kind)
	}

	if tmp, err := time.ParseDuration(value.Value); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q", value.Value)
	}
	*d = Duration(time.Duration(n))
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
