package symbol

//go:generate go tool stringer -type=Status -trimprefix=Status -output=status_string.go

// Status classifies a symbol against the current and legacy standards.
type Status int

const (
	// StatusInvalid is the zero value: the code does not denote a symbol.
	StatusInvalid Status = iota
	// StatusNew is a 2525D symbol with no 2525C equivalent.
	StatusNew
	// StatusOld is a symbol present in both standards.
	StatusOld
	// StatusRetired is a 2525C symbol withdrawn from 2525D.
	StatusRetired
)

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
