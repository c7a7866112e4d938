package config

import (
	"errors"
	"log/slog"
	"os"
)

// ProjectConfigFile is read from the working directory when no explicit
// path is given.
const ProjectConfigFile = "sidc.yaml"

// Loader loads configuration with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger means slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{logger: logger}
}

// Load builds the configuration from, in increasing precedence:
//  1. DefaultConfig
//  2. the file at path, or ProjectConfigFile if path is empty and it exists
//  3. SIDC_* environment variables
//
// An explicit path that cannot be read is an error; a missing project file
// is not.
func (l *Loader) Load(path string) (*Config, error) {
	config := DefaultConfig()

	switch {
	case path != "":
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}

		l.logger.Debug("Loaded config", slog.String("path", path))
		config = fileConfig
	default:
		fileConfig, err := LoadFromFile(ProjectConfigFile)
		switch {
		case err == nil:
			l.logger.Debug("Loaded project config", slog.String("path", ProjectConfigFile))
			config = fileConfig
		case errors.Is(err, os.ErrNotExist):
			l.logger.Debug("No project config found")
		default:
			l.logger.Warn("Failed to load project config",
				slog.String("path", ProjectConfigFile), slog.String("error", err.Error()))
		}
	}

	config.ApplyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
