package match

import (
	"strings"

	"sidc-converter/internal/common"
	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

// LetterQuery is a legacy letter plus the qualifiers known at the call site.
// Qualifiers left empty only match wildcard records.
type LetterQuery struct {
	Value               string
	Standard            string
	FirstFunctionLetter string
	CodingSchemeLetter  string
}

// LetterQueryFor builds a query for value qualified by the first function
// letter and coding scheme of code.
func LetterQueryFor(standard string, code sidc.LegacyCode, value string) LetterQuery {
	return LetterQuery{
		Value:               value,
		Standard:            standard,
		FirstFunctionLetter: code.FirstFunctionLetter(),
		CodingSchemeLetter:  code.Schema(),
	}
}

// Matches reports whether c denotes q. Every stored qualifier must be the
// wildcard or equal the supplied one.
func (q LetterQuery) Matches(c taxonomy.LegacyLetterCode) bool {
	return c.Value == q.Value && q.Qualifies(c)
}

// MatchesValue reports whether c carries q's value for q's standard,
// whatever its function letter and coding scheme qualifiers.
func (q LetterQuery) MatchesValue(c taxonomy.LegacyLetterCode) bool {
	return c.Value == q.Value && standardMatches(c.Standard, q.Standard)
}

// Qualifies reports whether c's qualifiers admit q, ignoring the value.
func (q LetterQuery) Qualifies(c taxonomy.LegacyLetterCode) bool {
	return standardMatches(c.Standard, q.Standard) &&
		qualifies(c.FirstFunctionLetter, q.FirstFunctionLetter) &&
		qualifies(c.CodingSchemeLetter, q.CodingSchemeLetter)
}

// MatchesAny reports whether any of codes matches q.
func (q LetterQuery) MatchesAny(codes []taxonomy.LegacyLetterCode) bool {
	for _, c := range codes {
		if q.Matches(c) {
			return true
		}
	}

	return false
}

// FirstByLetter returns the first item, in slice order, owning a legacy code
// that matches q.
func FirstByLetter[T any](items []T, codes func(T) []taxonomy.LegacyLetterCode, q LetterQuery) (T, bool) {
	return common.FirstWhere(items, func(it T) bool { return q.MatchesAny(codes(it)) })
}

// PickLetter returns the value of the first code whose qualifiers admit q.
// It is the reverse of Matches, used to rebuild a legacy code; q.Value is
// ignored.
func PickLetter(codes []taxonomy.LegacyLetterCode, q LetterQuery) (string, bool) {
	c, ok := common.FirstWhere(codes, q.Qualifies)

	return c.Value, ok
}

// PickStandardLetter returns the value of the first code applying to
// standard, whatever its qualifiers.
func PickStandardLetter(codes []taxonomy.LegacyLetterCode, standard string) (string, bool) {
	c, ok := common.FirstWhere(codes, func(c taxonomy.LegacyLetterCode) bool {
		return standardMatches(c.Standard, standard)
	})

	return c.Value, ok
}

func qualifies(stored, supplied string) bool {
	return stored == "" || stored == supplied
}

func standardMatches(stored, supplied string) bool {
	return stored == "" || strings.EqualFold(stored, supplied)
}
