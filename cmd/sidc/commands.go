package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"sidc-converter/internal/httpapi"
	"sidc-converter/internal/sidc"
	"sidc-converter/internal/symbol"
	"sidc-converter/internal/telemetry"
)

// outputFlags select the output format of decode and legacy.
type outputFlags struct {
	json bool
	dump bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&o.dump, "dump", false, "Dump the resolved nodes")
	cmd.MarkFlagsMutuallyExclusive("json", "dump")
}

func decodeCmd(flags *globalFlags) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "decode PARTA PARTB",
		Short: "Resolve a 2525D code given as two 10-digit halves",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			sym := a.librarian().NewSymbol(sidc.FromStrings(args[0], args[1]))

			return printSymbol(cmd.OutOrStdout(), a.store, sym, out)
		},
	}

	out.register(cmd)

	return cmd
}

func legacyCmd(flags *globalFlags) *cobra.Command {
	var (
		out      outputFlags
		standard string
	)

	cmd := &cobra.Command{
		Use:   "legacy CODE",
		Short: "Resolve a legacy code; short input is padded with '-'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			code, err := sidc.ParseLegacy(sidc.NormalizeLegacy(args[0]))
			if err != nil {
				return err
			}

			if standard == "" {
				standard = a.cfg.Conversion.LegacyStandard
			}

			sym := a.librarian().NewLegacySymbol(standard, code)

			return printSymbol(cmd.OutOrStdout(), a.store, sym, out)
		},
	}

	cmd.Flags().StringVar(&standard, "standard", "", "Legacy standard of CODE (default conversion.legacy_standard)")
	out.register(cmd)

	return cmd
}

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load and validate the symbology library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			warnings := a.store.Warnings()

			fmt.Fprintf(w, "library %s: %d symbol sets, %d warnings\n",
				a.cfg.Library.Path, a.store.SymbolSets().Len(), len(warnings))

			for _, ss := range a.store.SymbolSetsByCode() {
				fmt.Fprintf(w, "  %s %s\n", ss.Code, ss.ID)
			}

			for _, d := range warnings {
				fmt.Fprintf(w, "  warning: %s\n", d.String())
			}

			return nil
		},
	}
}

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			lib := a.librarian(symbol.WithObserver(telemetry.New(reg)))
			handler := httpapi.New(lib, reg, a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return httpapi.Serve(ctx, a.cfg.Server, handler.Router(), a.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}
