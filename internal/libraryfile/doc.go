// Package libraryfile loads a symbology taxonomy from a YAML document.
//
// The document mirrors taxonomy.Library: two-digit codes may be written as
// numbers or quoted strings, and legacy symbol slots name node IDs, with an
// empty value or "NA" meaning the slot is absent. Struct tags are checked
// with go-playground/validator before conversion; cross-references are left
// to taxonomy.NewStore.
package libraryfile
