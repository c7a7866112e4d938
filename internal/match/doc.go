// Package match implements legacy (2525C) code matching against taxonomy
// mapping records.
//
// Key functions:
//   - LetterQuery.Matches / FirstByLetter: single-letter codes with override
//     qualifiers, first match in declared order wins
//   - FunctionQuery.Matches / FindByFunction: six-character function codes
//     with schema, dimension, HQ/TF/dummy, amplifier and tail overrides
//   - Target.Score / FindExact / Rank: five-slot scoring of legacy symbols
//     against resolved 2525D nodes
package match
