package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"sidc-converter/internal/httpapi"
	"sidc-converter/internal/match"
	"sidc-converter/internal/symbol"
	"sidc-converter/internal/taxonomy"
)

// nearMisses is how many partial legacy matches are listed for a symbol
// without a legacy equivalent.
const nearMisses = 3

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                3,
}

func printSymbol(w io.Writer, store *taxonomy.Store, sym *symbol.Symbol, out outputFlags) error {
	switch {
	case out.json:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(httpapi.NewSymbolResponse(sym))
	case out.dump:
		dumper.Fdump(w, sym.Nodes)
		return nil
	}

	a, b := sym.SIDC.Strings()
	report := sym.Report()

	fmt.Fprintf(w, "status:  %s\n", sym.Status)
	fmt.Fprintf(w, "sidc:    %s %s\n", a, b)

	if sym.HasLegacy() {
		fmt.Fprintf(w, "legacy:  %s (%s)\n", sym.LegacySIDC, sym.Standard)
	}

	fmt.Fprintf(w, "mask:    %d\n", uint32(report.Mask))

	for _, reason := range report.Reasons() {
		fmt.Fprintf(w, "  - %s\n", reason)
	}

	if sym.Status == symbol.StatusNew {
		printNearMisses(w, store, sym)
	}

	return nil
}

func printNearMisses(w io.Writer, store *taxonomy.Store, sym *symbol.Symbol) {
	if sym.Nodes.SymbolSet == nil {
		return
	}

	ranked := match.Rank(store.CurrentLegacySymbols(sym.Nodes.SymbolSet), sym.Nodes.Target()).Top(nearMisses)

	var lines []string
	for _, c := range ranked {
		if c.Score == 0 {
			break
		}

		lines = append(lines, fmt.Sprintf("  %-40s %d/%d", c.Symbol.ID, c.Score, match.SlotCount))
	}

	if len(lines) == 0 {
		return
	}

	fmt.Fprintln(w, "closest legacy symbols:")
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}
