package sidc

import (
	"errors"
	"fmt"
	"strings"
)

// LegacyLength is the exact length of a 2525C code.
const LegacyLength = 15

// LegacyPad is the legacy "not specified" character.
const LegacyPad = "-"

// ErrLegacyLength is returned for a legacy code that is not exactly LegacyLength characters.
var ErrLegacyLength = errors.New("legacy SIDC must be 15 characters")

// LegacyCode is a 15-character 2525C symbol code.
//
//	position  0      coding scheme (schema)
//	position  1      standard identity
//	position  2      battle dimension
//	position  3      status
//	positions 4-9    function code
//	position  10     HQ/TF/Dummy
//	position  11     amplifier (echelon/mobility)
//	positions 12-14  tail (country, order of battle)
type LegacyCode string

// ParseLegacy validates the length of s. Case and wildcard handling are the
// caller's concern; see NormalizeLegacy.
func ParseLegacy(s string) (LegacyCode, error) {
	if len(s) != LegacyLength {
		return "", fmt.Errorf("%w: got %d in %q", ErrLegacyLength, len(s), s)
	}

	return LegacyCode(s), nil
}

// NormalizeLegacy prepares free-form user input: '*' becomes '-', trailing
// padding is dropped, the code is right-padded with '-' to LegacyLength and
// upper-cased. Input longer than LegacyLength is left long so that
// ParseLegacy rejects it.
func NormalizeLegacy(s string) string {
	s = strings.ReplaceAll(s, "*", LegacyPad)
	s = strings.TrimRight(s, "- ")

	if n := LegacyLength - len(s); n > 0 {
		s += strings.Repeat(LegacyPad, n)
	}

	return strings.ToUpper(s)
}

// Schema returns the coding scheme letter.
func (c LegacyCode) Schema() string { return string(c[0:1]) }

// StandardIdentity returns the standard identity (affiliation) letter.
func (c LegacyCode) StandardIdentity() string { return string(c[1:2]) }

// Dimension returns the battle dimension letter.
func (c LegacyCode) Dimension() string { return string(c[2:3]) }

// Status returns the status letter.
func (c LegacyCode) Status() string { return string(c[3:4]) }

// Function returns the six-character function code.
func (c LegacyCode) Function() string { return string(c[4:10]) }

// FirstFunctionLetter returns the first character of the function code.
func (c LegacyCode) FirstFunctionLetter() string { return string(c[4:5]) }

// HQTFDummy returns the HQ/TF/Dummy character.
func (c LegacyCode) HQTFDummy() string { return string(c[10:11]) }

// Amplifier returns the amplifier character.
func (c LegacyCode) Amplifier() string { return string(c[11:12]) }

// Tail returns the last three characters.
func (c LegacyCode) Tail() string { return string(c[12:15]) }

// String returns the code.
func (c LegacyCode) String() string { return string(c) }
