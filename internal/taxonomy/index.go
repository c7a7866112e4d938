package taxonomy

import (
	"fmt"

	"sidc-converter/internal/diagnostic"
	"sidc-converter/internal/sidc"
)

// Index is a read-only keyed view over one scope of sibling nodes. It keeps
// declaration order for iteration alongside code and ID maps. A nil *Index is
// an empty scope: every lookup misses.
type Index[T any] struct {
	ordered []T
	byCode  map[uint16]T
	byID    map[string]T
}

// Code returns the node with the numeric code.
func (ix *Index[T]) Code(code uint16) (T, bool) {
	var zero T
	if ix == nil || ix.byCode == nil {
		return zero, false
	}

	n, ok := ix.byCode[code]

	return n, ok
}

// ID returns the node with the stable identifier.
func (ix *Index[T]) ID(id string) (T, bool) {
	var zero T
	if ix == nil {
		return zero, false
	}

	n, ok := ix.byID[id]

	return n, ok
}

// All returns the nodes in declaration order. The slice is shared and must
// not be modified.
func (ix *Index[T]) All() []T {
	if ix == nil {
		return nil
	}

	return ix.ordered
}

// Len returns the number of nodes.
func (ix *Index[T]) Len() int {
	if ix == nil {
		return 0
	}

	return len(ix.ordered)
}

// keyFuncs describes how to key a node type.
type keyFuncs[T any] struct {
	kind string
	id   func(T) string
	// code is nil for node types without a numeric code. The bool is false
	// when a position of the code holds more than one digit.
	code func(T) (uint16, bool)
}

func digitCode(c uint8) (uint16, bool) {
	return uint16(c), c <= 9
}

func pairCode(p sidc.Pair) (uint16, bool) {
	return p.Value(), p.Valid()
}

// indexer builds indices while collecting validation findings.
type indexer struct {
	diags *diagnostic.Diagnostics
	// ids tracks every stable identifier in the tree.
	ids map[string]string
}

// buildIndex indexes items under scope. Nil nodes, empty IDs, out of range
// codes, and duplicate IDs or codes are reported as errors and left out of the maps; the first
// declaration of a duplicate wins.
func buildIndex[T comparable](b *indexer, scope string, items []T, keys keyFuncs[T]) *Index[T] {
	ix := &Index[T]{
		ordered: make([]T, 0, len(items)),
		byID:    make(map[string]T, len(items)),
	}
	if keys.code != nil {
		ix.byCode = make(map[uint16]T, len(items))
	}

	var zero T

	for i, n := range items {
		if n == zero {
			b.diags.AddError("nil_node", fmt.Sprintf("%s #%d is nil", keys.kind, i), scope, "")
			continue
		}

		id := keys.id(n)
		if id == "" {
			b.diags.AddError("missing_id", fmt.Sprintf("%s #%d has no id", keys.kind, i), scope, "")
			continue
		}

		if prev, dup := b.ids[id]; dup {
			b.diags.AddError("duplicate_id", fmt.Sprintf("%s id %q already used by a %s", keys.kind, id, prev), scope, id)
			continue
		}

		if keys.code != nil {
			code, ok := keys.code(n)
			if !ok {
				b.diags.AddError("invalid_code", fmt.Sprintf("%s code is not a digit or two-digit code", keys.kind), scope, id)
				continue
			}

			if _, dup := ix.byCode[code]; dup {
				b.diags.AddError("duplicate_code", fmt.Sprintf("%s code %02d is not unique", keys.kind, code), scope, id)
				continue
			}

			ix.byCode[code] = n
		}

		b.ids[id] = keys.kind
		ix.byID[id] = n
		ix.ordered = append(ix.ordered, n)
	}

	return ix
}
