// Package taxonomy provides the symbology library model and its read-only,
// indexed view.
//
// A Library is the materialized taxonomy handed over by a loader. NewStore
// validates it and builds every index once; after that the Store is never
// mutated, so any number of goroutines may read it without locking.
//
// Declaration order is preserved everywhere: legacy code disambiguation
// takes the first matching record, so the order in which a loader appends
// nodes is part of the taxonomy's meaning.
package taxonomy
