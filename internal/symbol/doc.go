// Package symbol is the top-level factory: it classifies resolved codes and
// refuses to hand out symbols for malformed or invalid input.
//
// A Librarian is built once over a taxonomy.Store and shared; it owns the
// two sentinel symbols (invalid and retired), which are always available.
package symbol
