package resolve

import (
	"strings"

	"sidc-converter/internal/common"
	"sidc-converter/internal/match"
	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

const (
	legacyTailPad        = "---"
	legacyFunctionLength = 6
)

// LegacyCode rebuilds the 15-character legacy code of r for standard. It
// fails when r has no legacy symbol, or when the symbol set, affiliation,
// dimension or status carries no letter for standard. Overrides on the
// legacy function code take precedence over node letters.
func (e *Engine) LegacyCode(r Result, standard string) (sidc.LegacyCode, bool) {
	standard = strings.ToUpper(standard)

	ls := r.LegacySymbol
	if ls == nil || r.SymbolSet == nil || r.Affiliation == nil || r.Dimension == nil || r.Status == nil {
		return "", false
	}

	fc, ok := functionCodeFor(ls, standard)
	if !ok {
		return "", false
	}

	q := match.LetterQuery{Standard: standard, FirstFunctionLetter: fc.Value[:1]}

	schema := fc.SchemaOverride
	if schema == "" {
		if schema, ok = match.PickLetter(r.SymbolSet.LegacyCodingSchemes, match.LetterQuery{Standard: standard}); !ok {
			return "", false
		}
	}

	q.CodingSchemeLetter = schema

	identity, ok := match.PickLetter(r.Affiliation.LegacyCodes, q)
	if !ok {
		return "", false
	}

	dimension := fc.DimensionOverride
	if dimension == "" {
		if dimension, ok = match.PickLetter(r.Dimension.LegacyCodes, q); !ok {
			return "", false
		}
	}

	status, ok := match.PickLetter(r.Status.LegacyCodes, q)
	if !ok {
		return "", false
	}

	hqtfd := fc.HQTFFDOverride
	if hqtfd == "" {
		hqtfd = optionalLetter(r.HQTFDummy, func(n *taxonomy.HQTFDummy) (string, bool) {
			return match.PickStandardLetter(n.LegacyCodes, standard)
		})
	}

	amplifier := fc.AmplifierOverride
	if amplifier == "" {
		amplifier = optionalLetter(r.Amplifier, func(n *taxonomy.Amplifier) (string, bool) {
			return match.PickLetter(n.LegacyCodes, q)
		})
	}

	tail := fc.TailOverride
	if tail == "" {
		tail = legacyTailPad
	}

	code, err := sidc.ParseLegacy(schema + identity + dimension + status + fc.Value + hqtfd + amplifier + tail)
	if err != nil {
		return "", false
	}

	return code, true
}

// functionCodeFor returns the first usable function code of ls for standard.
func functionCodeFor(ls *taxonomy.LegacySymbol, standard string) (taxonomy.LegacyFunctionCode, bool) {
	return common.FirstWhere(ls.FunctionCodes, func(fc taxonomy.LegacyFunctionCode) bool {
		return len(fc.Value) == legacyFunctionLength &&
			(fc.Standard == "" || strings.EqualFold(fc.Standard, standard))
	})
}

// optionalLetter picks the letter of n, or the pad letter when n is nil or
// has none.
func optionalLetter[T any](n *T, pick func(*T) (string, bool)) string {
	if n == nil {
		return sidc.LegacyPad
	}

	if l, ok := pick(n); ok {
		return l
	}

	return sidc.LegacyPad
}
