package resolve

import (
	"fmt"

	"sidc-converter/internal/match"
	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

type keyKind uint8

const (
	keyCode keyKind = iota
	keyID
	keyLegacy
)

// Key selects a node within one scope: by numeric code, by stable
// identifier, or by legacy letter with qualifiers.
type Key struct {
	kind   keyKind
	code   uint16
	id     string
	legacy match.LetterQuery
}

// ByCode keys a single-digit or composite two-digit code.
func ByCode(code uint16) Key {
	return Key{kind: keyCode, code: code}
}

// ByPair keys a two-digit code.
func ByPair(p sidc.Pair) Key {
	return ByCode(p.Value())
}

// ByID keys a stable identifier.
func ByID(id string) Key {
	return Key{kind: keyID, id: id}
}

// ByLegacy keys a legacy letter with qualifiers.
func ByLegacy(q match.LetterQuery) Key {
	return Key{kind: keyLegacy, legacy: q}
}

// String returns a short description for logs.
func (k Key) String() string {
	switch k.kind {
	case keyCode:
		return fmt.Sprintf("code %02d", k.code)
	case keyID:
		return fmt.Sprintf("id %q", k.id)
	case keyLegacy:
		return fmt.Sprintf("legacy %q", k.legacy.Value)
	default:
		return "invalid key"
	}
}

// lookup dispatches k against ix. Legacy keys scan in declaration order.
func lookup[T any](ix *taxonomy.Index[T], k Key, legacy func(T) []taxonomy.LegacyLetterCode) (T, bool) {
	switch k.kind {
	case keyCode:
		return ix.Code(k.code)
	case keyID:
		return ix.ID(k.id)
	case keyLegacy:
		if legacy != nil {
			return match.FirstByLetter[T](ix.All(), legacy, k.legacy)
		}
	}

	var zero T

	return zero, false
}
