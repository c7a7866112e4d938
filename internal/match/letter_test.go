package match

import (
	"testing"

	"sidc-converter/internal/taxonomy"
)

type lettered struct {
	id    string
	codes []taxonomy.LegacyLetterCode
}

func letterCodes(l lettered) []taxonomy.LegacyLetterCode { return l.codes }

func TestLetterQuery_Matches(t *testing.T) {
	tests := []struct {
		name   string
		stored taxonomy.LegacyLetterCode
		query  LetterQuery
		want   bool
	}{
		{
			name:   "wildcard record matches any qualifiers",
			stored: taxonomy.LegacyLetterCode{Value: "G"},
			query:  LetterQuery{Value: "G", FirstFunctionLetter: "U", CodingSchemeLetter: "S"},
			want:   true,
		},
		{
			name:   "value differs",
			stored: taxonomy.LegacyLetterCode{Value: "G"},
			query:  LetterQuery{Value: "A"},
			want:   false,
		},
		{
			name:   "first function letter must equal when set",
			stored: taxonomy.LegacyLetterCode{Value: "G", FirstFunctionLetter: "U"},
			query:  LetterQuery{Value: "G", FirstFunctionLetter: "E"},
			want:   false,
		},
		{
			name:   "coding scheme letter must equal when set",
			stored: taxonomy.LegacyLetterCode{Value: "G", CodingSchemeLetter: "W"},
			query:  LetterQuery{Value: "G", CodingSchemeLetter: "W"},
			want:   true,
		},
		{
			name:   "set qualifier does not match an empty supplied one",
			stored: taxonomy.LegacyLetterCode{Value: "P", CodingSchemeLetter: "G"},
			query:  LetterQuery{Value: "P"},
			want:   false,
		},
		{
			name:   "standard compares case-insensitively",
			stored: taxonomy.LegacyLetterCode{Value: "F", Standard: "2525c"},
			query:  LetterQuery{Value: "F", Standard: "2525C"},
			want:   true,
		},
		{
			name:   "other standard is ignored",
			stored: taxonomy.LegacyLetterCode{Value: "F", Standard: "2525B"},
			query:  LetterQuery{Value: "F", Standard: "2525C"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Matches(tt.stored); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Two records for the same letter: one wildcard, one qualified. The first
// declared record that matches must win, so reordering changes the result.
func TestFirstByLetter_DeclaredOrderWins(t *testing.T) {
	wildcard := lettered{id: "wildcard", codes: []taxonomy.LegacyLetterCode{{Value: "G"}}}
	specific := lettered{id: "specific", codes: []taxonomy.LegacyLetterCode{{Value: "G", FirstFunctionLetter: "E"}}}

	q := LetterQuery{Value: "G", FirstFunctionLetter: "E"}

	got, ok := FirstByLetter([]lettered{wildcard, specific}, letterCodes, q)
	if !ok || got.id != "wildcard" {
		t.Errorf("wildcard first: got %q (ok=%v), want wildcard", got.id, ok)
	}

	got, ok = FirstByLetter([]lettered{specific, wildcard}, letterCodes, q)
	if !ok || got.id != "specific" {
		t.Errorf("specific first: got %q (ok=%v), want specific", got.id, ok)
	}

	// A query the specific record cannot satisfy always falls through to the wildcard.
	got, ok = FirstByLetter([]lettered{specific, wildcard}, letterCodes, LetterQuery{Value: "G", FirstFunctionLetter: "U"})
	if !ok || got.id != "wildcard" {
		t.Errorf("non-matching qualifier: got %q (ok=%v), want wildcard", got.id, ok)
	}
}

func TestFirstByLetter_Miss(t *testing.T) {
	items := []lettered{{id: "a", codes: []taxonomy.LegacyLetterCode{{Value: "A"}}}}

	if _, ok := FirstByLetter(items, letterCodes, LetterQuery{Value: "Z"}); ok {
		t.Error("expected no match")
	}

	if _, ok := FirstByLetter(nil, letterCodes, LetterQuery{Value: "A"}); ok {
		t.Error("expected no match on empty input")
	}
}

func TestPickLetter(t *testing.T) {
	codes := []taxonomy.LegacyLetterCode{
		{Value: "X", Standard: "2525B"},
		{Value: "E", FirstFunctionLetter: "E"},
		{Value: "G"},
	}

	tests := []struct {
		name string
		q    LetterQuery
		want string
		ok   bool
	}{
		{"qualified record first", LetterQuery{Standard: "2525C", FirstFunctionLetter: "E"}, "E", true},
		{"falls through to wildcard", LetterQuery{Standard: "2525C", FirstFunctionLetter: "U"}, "G", true},
		{"standard specific record", LetterQuery{Standard: "2525B"}, "X", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PickLetter(codes, tt.q)
			if got != tt.want || ok != tt.ok {
				t.Errorf("PickLetter() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}

	if _, ok := PickLetter(nil, LetterQuery{}); ok {
		t.Error("expected no letter for empty codes")
	}
}

func TestMatchesValue(t *testing.T) {
	q := LetterQuery{Value: "A", Standard: "2525C", FirstFunctionLetter: "U"}

	if !q.MatchesValue(taxonomy.LegacyLetterCode{Value: "A", FirstFunctionLetter: "E", CodingSchemeLetter: "W"}) {
		t.Error("qualifiers must not affect a value match")
	}

	if q.MatchesValue(taxonomy.LegacyLetterCode{Value: "A", Standard: "2525B"}) {
		t.Error("a code for another standard must not match")
	}

	if q.MatchesValue(taxonomy.LegacyLetterCode{Value: "B"}) {
		t.Error("a different value must not match")
	}
}

func TestPickStandardLetter(t *testing.T) {
	codes := []taxonomy.LegacyLetterCode{
		{Value: "X", Standard: "2525B"},
		{Value: "A", FirstFunctionLetter: "E", CodingSchemeLetter: "W"},
	}

	if got, ok := PickStandardLetter(codes, "2525C"); !ok || got != "A" {
		t.Errorf("PickStandardLetter(2525C) = %q, %v; want A, true", got, ok)
	}

	if got, ok := PickStandardLetter(codes, "2525B"); !ok || got != "X" {
		t.Errorf("PickStandardLetter(2525B) = %q, %v; want X, true", got, ok)
	}

	if _, ok := PickStandardLetter(nil, "2525C"); ok {
		t.Error("expected no letter for empty codes")
	}
}
