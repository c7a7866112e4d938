package common

// UnknownStr is the String() fallback for enum values outside their defined range.
const UnknownStr = "unknown"

// NotApplicable is the identifier the symbology library uses for "no node" in
// legacy mapping slots and modifier lookups.
const NotApplicable = "NA"
