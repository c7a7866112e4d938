package resolve

import (
	"slices"

	"sidc-converter/internal/common"
	"sidc-converter/internal/diagnostic"
	"sidc-converter/internal/match"
	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

// DimensionByLegacyCode resolves the dimension letter of code.
func (c *Conversion) DimensionByLegacyCode(standard string, code sidc.LegacyCode) *taxonomy.Dimension {
	return c.Dimension(ByLegacy(match.LetterQueryFor(standard, code, code.Dimension())))
}

// AffiliationByLegacyCode returns the first affiliation whose standard
// identity letter matches identity and whose dimension owns a letter
// matching dim. Both must match.
func (c *Conversion) AffiliationByLegacyCode(identity string, dim match.LetterQuery) *taxonomy.Affiliation {
	siQuery := dim
	siQuery.Value = identity

	for _, a := range c.store.Affiliations().All() {
		if !siQuery.MatchesAny(a.LegacyCodes) {
			continue
		}

		if d, ok := c.store.Dimensions().ID(a.DimensionID); ok && dim.MatchesAny(d.LegacyCodes) {
			return a
		}
	}

	c.miss(diagnostic.CategoryAffiliation)

	return nil
}

// HQTFDummyByLegacyCode resolves an HQ/TF/dummy letter, falling back to
// code 0 when no record carries the letter. Records match on value and
// standard only; function letter and coding scheme qualifiers are ignored.
func (c *Conversion) HQTFDummyByLegacyCode(standard, letter string) *taxonomy.HQTFDummy {
	q := match.LetterQuery{Value: letter, Standard: standard}

	h, ok := common.FirstWhere(c.store.HQTFDummies().All(), func(n *taxonomy.HQTFDummy) bool {
		return slices.ContainsFunc(n.LegacyCodes, q.MatchesValue)
	})
	if ok {
		return h
	}

	return c.HQTFDummy(ByCode(0))
}

// AmplifierByLegacyCode resolves an amplifier letter across every group,
// falling back to the pad letter when no record carries it.
func (c *Conversion) AmplifierByLegacyCode(q match.LetterQuery) *taxonomy.Amplifier {
	if a, ok := match.FirstByLetter(c.store.AllAmplifiers(), amplifierCodes, q); ok {
		return a
	}

	q.Value = sidc.LegacyPad

	return c.Amplifier(nil, ByLegacy(q))
}

// LegacySymbolByCode finds the legacy symbol denoted by code. Among the
// dimensions matching the dimension letter, the first one whose symbol sets
// own a matching legacy symbol is used; without one, the first matching
// dimension is returned with the symbol set and legacy symbol misses.
func (c *Conversion) LegacySymbolByCode(
	standard string,
	code sidc.LegacyCode,
) (*taxonomy.LegacySymbol, *taxonomy.Dimension, *taxonomy.SymbolSet) {
	fq := match.FunctionQueryFor(standard, code)

	dim := c.legacyDimension(standard, code, fq)
	ss := c.SymbolSetByLegacyCode(dim, fq)

	return c.LegacySymbol(ss, fq), dim, ss
}

func (c *Conversion) legacyDimension(standard string, code sidc.LegacyCode, fq match.FunctionQuery) *taxonomy.Dimension {
	dq := match.LetterQueryFor(standard, code, code.Dimension())

	for _, dim := range c.store.Dimensions().All() {
		if !dq.MatchesAny(dim.LegacyCodes) {
			continue
		}

		if _, ok := c.symbolSetOwning(dim, fq); ok {
			return dim
		}
	}

	return c.DimensionByLegacyCode(standard, code)
}
