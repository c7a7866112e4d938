// Package sidc provides the Symbol Identification Code value types.
//
// A modern (2525D) SIDC is two 10-digit decimal halves held as uint32 values.
// Malformed input never fails: it collapses to the Invalid sentinel so that
// every value of SIDC is representable and renderable.
//
// Key types:
//   - SIDC: the two-part numeric code, with Invalid and Retired sentinels
//   - Fields: the positional split of a SIDC into its taxonomy codes
//   - Pair: a two-digit code (symbol set, entity, modifier, ...)
//   - LegacyCode: a validated 15-character 2525C code with positional accessors
package sidc
