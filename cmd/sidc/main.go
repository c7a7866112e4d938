// Package main provides the CLI entrypoint for the SIDC converter.
//
// sidc converts military symbol identification codes between the 20-digit
// 2525D form and the 15-character legacy (2525C) form against a YAML
// symbology library:
//   - decode: resolve and classify a 2525D code
//   - legacy: resolve and classify a legacy code
//   - check:  load and validate a library
//   - serve:  run the HTTP API
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sidc-converter/internal/config"
	"sidc-converter/internal/libraryfile"
	"sidc-converter/internal/logging"
	"sidc-converter/internal/symbol"
	"sidc-converter/internal/taxonomy"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	libraryPath string
	logLevel    string
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:           "sidc",
		Short:         "Convert military symbol identification codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&flags.libraryPath, "library", "", "Symbology library file (YAML)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		decodeCmd(&flags),
		legacyCmd(&flags),
		checkCmd(&flags),
		serveCmd(&flags),
	)

	return cmd
}

// app is the state built from flags and configuration.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *taxonomy.Store
}

// loadConfig layers flags over the loaded configuration.
func loadConfig(flags *globalFlags, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.NewLoader(logging.Discard()).Load(flags.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	cfg.Merge(&config.Config{
		Library: config.LibraryConfig{Path: flags.libraryPath},
		Logging: config.LoggingConfig{Level: flags.logLevel},
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(stderr, cfg.Logging)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func newApp(flags *globalFlags, stderr io.Writer) (*app, error) {
	cfg, logger, err := loadConfig(flags, stderr)
	if err != nil {
		return nil, err
	}

	store, err := openStore(cfg.Library.Path, logger)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, store: store}, nil
}

func openStore(path string, logger *slog.Logger) (*taxonomy.Store, error) {
	lib, err := libraryfile.LoadFile(path)
	if err != nil {
		return nil, err
	}

	store, err := taxonomy.NewStore(lib)
	if err != nil {
		return nil, fmt.Errorf("library file %s: %w", path, err)
	}

	for _, w := range store.Warnings() {
		logger.Warn("library warning", slog.String("diagnostic", w.String()))
	}

	logger.Debug("Loaded library",
		slog.String("path", path),
		slog.Int("symbol_sets", store.SymbolSets().Len()))

	return store, nil
}

func (a *app) librarian(opts ...symbol.Option) *symbol.Librarian {
	base := []symbol.Option{
		symbol.WithLogger(a.logger),
		symbol.WithLegacyStandard(a.cfg.Conversion.LegacyStandard),
		symbol.WithConversionLogging(a.cfg.Conversion.LogConversions),
	}

	return symbol.NewLibrarian(a.store, append(base, opts...)...)
}
