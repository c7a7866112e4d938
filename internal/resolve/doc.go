// Package resolve resolves SIDC fields against a taxonomy.Store.
//
// Resolution pipeline:
//  1. Engine wraps an immutable store and is shared freely.
//  2. Each conversion calls Engine.Begin to get a Conversion, which owns the
//     diagnostic mask for that conversion only.
//  3. Category lookups take a Key (ByCode, ByPair, ByID, ByLegacy); a miss
//     returns nil and sets the category bit, resolution continues.
//  4. Resolve and ResolveLegacy run the compound resolution of a 2525D or a
//     2525C code and return a Result: resolved nodes plus mask.
package resolve
