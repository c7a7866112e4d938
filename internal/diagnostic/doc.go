// Package diagnostic provides the failure reporting used across SIDC
// conversion and taxonomy loading.
//
// Key capabilities:
//   - Category: one bit per taxonomy lookup category (17 in total)
//   - Mask: the per-conversion set of categories that failed to resolve
//   - Report: a Mask bound to the input it describes, with named reasons
//   - Diagnostics: structured errors/warnings raised while validating a taxonomy
package diagnostic
