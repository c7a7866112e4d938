// Package config provides configuration loading for the SIDC converter.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvLibrary  = "SIDC_LIBRARY"
	EnvAddr     = "SIDC_ADDR"
	EnvLogLevel = "SIDC_LOG_LEVEL"
)

// Config is the complete converter configuration.
type Config struct {
	Library    LibraryConfig    `yaml:"library"`
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Conversion ConversionConfig `yaml:"conversion"`
}

// LibraryConfig locates the symbology library.
type LibraryConfig struct {
	// Path is the YAML library file.
	Path string `yaml:"path"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

// ConversionConfig configures the symbol factory.
type ConversionConfig struct {
	// LegacyStandard is the standard used when rebuilding legacy codes.
	LegacyStandard string `yaml:"legacy_standard"`
	// LogConversions logs every conversion report at info level.
	LogConversions bool `yaml:"log_conversions"`
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() *Config {
	return &Config{
		Library: LibraryConfig{
			Path: "library.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Conversion: ConversionConfig{
			LegacyStandard: "2525C",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Library.Path == "" {
		return fmt.Errorf("library.path is required")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json; got %q", c.Logging.Format)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	if c.Server.ReadHeaderTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}

	if c.Conversion.LegacyStandard == "" {
		return fmt.Errorf("conversion.legacy_standard is required")
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Merge merges other into c; non-zero values in other take precedence.
// A boolean can only be switched on by a merge.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Library.Path != "" {
		c.Library.Path = other.Library.Path
	}

	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}

	if other.Logging.Format != "" {
		c.Logging.Format = other.Logging.Format
	}

	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}

	if other.Server.ReadHeaderTimeout != 0 {
		c.Server.ReadHeaderTimeout = other.Server.ReadHeaderTimeout
	}

	if other.Server.ShutdownTimeout != 0 {
		c.Server.ShutdownTimeout = other.Server.ShutdownTimeout
	}

	if other.Conversion.LegacyStandard != "" {
		c.Conversion.LegacyStandard = other.Conversion.LegacyStandard
	}

	if other.Conversion.LogConversions {
		c.Conversion.LogConversions = true
	}
}

// ApplyEnv overrides c from the SIDC_* environment variables.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLibrary); ok && v != "" {
		c.Library.Path = v
	}

	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
}
