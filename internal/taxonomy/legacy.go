package taxonomy

import "sidc-converter/internal/common"

// LegacyLetterCode maps a single 2525C letter onto a node. Empty qualifiers
// are wildcards.
type LegacyLetterCode struct {
	Value string
	// Standard restricts the record to one legacy standard, e.g. "2525C".
	Standard            string
	FirstFunctionLetter string
	CodingSchemeLetter  string
}

// LegacyFunctionCode maps a 2525C function code onto a legacy symbol.
// Empty overrides are wildcards; a set override must equal the matching
// position of the legacy code.
type LegacyFunctionCode struct {
	Value             string
	Standard          string
	SchemaOverride    string
	DimensionOverride string
	HQTFFDOverride    string
	AmplifierOverride string
	TailOverride      string
}

// Slot is a legacy symbol's reference to one node: either a node ID or absent.
// The zero value is absent.
type Slot struct {
	id      string
	present bool
}

// Present returns a slot referencing id.
func Present(id string) Slot {
	return Slot{id: id, present: true}
}

// Absent returns an empty slot.
func Absent() Slot {
	return Slot{}
}

// ID returns the referenced ID and whether the slot is present.
func (s Slot) ID() (string, bool) {
	return s.id, s.present
}

// IsPresent reports whether the slot references a node.
func (s Slot) IsPresent() bool {
	return s.present
}

// Refers reports whether the slot references exactly id.
func (s Slot) Refers(id string) bool {
	return s.present && s.id == id
}

// String returns the ID, or "NA" when absent.
func (s Slot) String() string {
	if !s.present {
		return common.NotApplicable
	}

	return s.id
}
