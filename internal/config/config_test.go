package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	c := DefaultConfig()

	require.NoError(t, c.Validate())
	assert.Equal(t, "2525C", c.Conversion.LegacyStandard)
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"no library", func(c *Config) { c.Library.Path = "" }, "library.path"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"no addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"negative timeout", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, "timeouts"},
		{"no standard", func(c *Config) { c.Conversion.LegacyStandard = "" }, "legacy_standard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)

			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_LevelCaseInsensitive(t *testing.T) {
	c := DefaultConfig()
	c.Logging.Level = "DEBUG"
	c.Logging.Format = "JSON"

	assert.NoError(t, c.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sidc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
library:
  path: /srv/jmsml.yaml
server:
  shutdown_timeout: 3s
conversion:
  log_conversions: true
`), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/jmsml.yaml", c.Library.Path)
	assert.Equal(t, 3*time.Second, c.Server.ShutdownTimeout)
	assert.True(t, c.Conversion.LogConversions)
	// Unset keys keep their defaults.
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 5*time.Second, c.Server.ReadHeaderTimeout)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library: ["), 0o644))

	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestMerge(t *testing.T) {
	c := DefaultConfig()
	c.Merge(&Config{
		Logging:    LoggingConfig{Format: "json"},
		Conversion: ConversionConfig{LegacyStandard: "2525B", LogConversions: true},
	})

	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "2525B", c.Conversion.LegacyStandard)
	assert.True(t, c.Conversion.LogConversions)

	c.Merge(nil)
	assert.Equal(t, "json", c.Logging.Format)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLibrary:  "/tmp/lib.yaml",
		EnvAddr:     "127.0.0.1:9000",
		EnvLogLevel: "",
	}

	c := DefaultConfig()
	c.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "/tmp/lib.yaml", c.Library.Path)
	assert.Equal(t, "127.0.0.1:9000", c.Server.Addr)
	assert.Equal(t, "info", c.Logging.Level, "empty variables are ignored")
}

func TestLoader_Load(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: {level: warn, format: json}\n"), 0o644))

	c, err := NewLoader(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Logging.Level, "environment wins over the file")
	assert.Equal(t, "json", c.Logging.Format)

	_, err = NewLoader(nil).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoader_LoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: {level: chatty}\n"), 0o644))

	_, err := NewLoader(nil).Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}
