package sidc

import (
	"fmt"
	"strconv"
)

const (
	smallestA    uint32 = 1000000000
	smallestB    uint32 = 0
	specialPartA uint32 = 1001980000
	invalidPartB uint32 = 1000000000
	retiredPartB uint32 = 1100000000

	// PartLength is the rendered width of each half.
	PartLength = 10
)

var (
	// Invalid marks a code that could not be parsed or resolved.
	Invalid = SIDC{partA: specialPartA, partB: invalidPartB}
	// Retired marks a symbol withdrawn from the standard.
	Retired = SIDC{partA: specialPartA, partB: retiredPartB}
)

// SIDC is a 20-digit (2525D) Symbol ID Code held as two 10-digit halves.
// The zero value is not valid; construct with New or FromStrings.
type SIDC struct {
	partA uint32
	partB uint32
}

// New returns the SIDC for the two halves, or Invalid if either half is
// below its threshold.
func New(partA, partB uint32) SIDC {
	if partA < smallestA || partB < smallestB {
		return Invalid
	}

	return SIDC{partA: partA, partB: partB}
}

// FromStrings parses two 10-character decimal strings. Anything else yields Invalid.
func FromStrings(partA, partB string) SIDC {
	a, okA := parsePart(partA)
	b, okB := parsePart(partB)

	if !okA || !okB {
		return Invalid
	}

	return New(a, b)
}

// ValidPart reports whether s is a well-formed half: 10 decimal digits
// that fit in 32 bits.
func ValidPart(s string) bool {
	_, ok := parsePart(s)
	return ok
}

// parsePart parses a fixed-width half. The bool reports whether s was a
// 10-character unsigned 32-bit decimal.
func parsePart(s string) (uint32, bool) {
	if len(s) != PartLength {
		return 0, false
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(v), true
}

// PartA returns the first half.
func (s SIDC) PartA() uint32 { return s.partA }

// PartB returns the second half.
func (s SIDC) PartB() uint32 { return s.partB }

// SetPartA replaces the first half; values below the threshold are ignored.
func (s *SIDC) SetPartA(v uint32) {
	if v >= smallestA {
		s.partA = v
	}
}

// SetPartB replaces the second half; values below the threshold are ignored.
func (s *SIDC) SetPartB(v uint32) {
	if v >= smallestB {
		s.partB = v
	}
}

// SetPartAString replaces the first half from its 10-character rendering.
// Strings of any other length and values below the threshold are ignored;
// non-numeric 10-character input sets the sentinel value.
func (s *SIDC) SetPartAString(v string) {
	if len(v) != PartLength {
		return
	}

	p, ok := parsePart(v)
	if !ok {
		s.partA = specialPartA
		return
	}

	s.SetPartA(p)
}

// SetPartBString replaces the second half from its 10-character rendering.
func (s *SIDC) SetPartBString(v string) {
	if len(v) != PartLength {
		return
	}

	p, ok := parsePart(v)
	if !ok {
		s.partB = invalidPartB
		return
	}

	s.partB = p
}

// PartAString renders the first half as 10 digits.
func (s SIDC) PartAString() string {
	return fmt.Sprintf("%010d", s.partA)
}

// PartBString renders the second half as 10 digits, so zero is "0000000000".
func (s SIDC) PartBString() string {
	return fmt.Sprintf("%010d", s.partB)
}

// Strings returns both rendered halves.
func (s SIDC) Strings() (string, string) {
	return s.PartAString(), s.PartBString()
}

// SymbolSetCode returns characters 5-6 (1-indexed) of the first half.
func (s SIDC) SymbolSetCode() string {
	return s.PartAString()[4:6]
}

// IsInvalid reports whether s is the Invalid sentinel.
func (s SIDC) IsInvalid() bool { return s == Invalid }

// IsRetired reports whether s is the Retired sentinel.
func (s SIDC) IsRetired() bool { return s == Retired }

// String renders the full 20-digit code.
func (s SIDC) String() string {
	return s.PartAString() + s.PartBString()
}
