package match

import (
	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

// FunctionQuery is the part of a legacy code used to find its legacy symbol.
type FunctionQuery struct {
	Function  string
	Standard  string
	Schema    string
	Dimension string
	HQTFDummy string
	Amplifier string
	Tail      string
}

// FunctionQueryFor splits code into a function query for standard.
func FunctionQueryFor(standard string, code sidc.LegacyCode) FunctionQuery {
	return FunctionQuery{
		Function:  code.Function(),
		Standard:  standard,
		Schema:    code.Schema(),
		Dimension: code.Dimension(),
		HQTFDummy: code.HQTFDummy(),
		Amplifier: code.Amplifier(),
		Tail:      code.Tail(),
	}
}

// Matches reports whether c denotes q. Set overrides must equal the
// corresponding position of the legacy code.
func (q FunctionQuery) Matches(c taxonomy.LegacyFunctionCode) bool {
	return c.Value == q.Function &&
		standardMatches(c.Standard, q.Standard) &&
		qualifies(c.SchemaOverride, q.Schema) &&
		qualifies(c.DimensionOverride, q.Dimension) &&
		qualifies(c.HQTFFDOverride, q.HQTFDummy) &&
		qualifies(c.AmplifierOverride, q.Amplifier) &&
		qualifies(c.TailOverride, q.Tail)
}

// FindByFunction returns the first legacy symbol owning a function code that
// matches q.
func FindByFunction(symbols []*taxonomy.LegacySymbol, q FunctionQuery) (*taxonomy.LegacySymbol, bool) {
	for _, ls := range symbols {
		if ls == nil {
			continue
		}

		for _, fc := range ls.FunctionCodes {
			if q.Matches(fc) {
				return ls, true
			}
		}
	}

	return nil, false
}
