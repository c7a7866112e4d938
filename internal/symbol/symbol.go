package symbol

import (
	"sidc-converter/internal/diagnostic"
	"sidc-converter/internal/resolve"
	"sidc-converter/internal/sidc"
)

// Symbol is a classified, resolved code.
type Symbol struct {
	SIDC sidc.SIDC
	// LegacySIDC is the 2525C code, empty when the symbol has none.
	LegacySIDC sidc.LegacyCode
	// Standard names the legacy standard LegacySIDC belongs to.
	Standard string
	Status   Status
	// Nodes holds the resolved taxonomy nodes and the diagnostic report.
	Nodes resolve.Result
}

// Report returns the diagnostic report of the conversion that produced s.
func (s *Symbol) Report() diagnostic.Report {
	return s.Nodes.Report
}

// HasLegacy reports whether s has a 2525C code.
func (s *Symbol) HasLegacy() bool {
	return s.LegacySIDC != ""
}
