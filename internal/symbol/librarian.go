package symbol

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"sidc-converter/internal/diagnostic"
	"sidc-converter/internal/resolve"
	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

// ErrInvalidSymbol is returned when a code resolves to an invalid symbol.
var ErrInvalidSymbol = errors.New("invalid symbol")

// DefaultLegacyStandard is the legacy standard used when rebuilding 2525C
// codes for 2525D input.
const DefaultLegacyStandard = "2525C"

// Conversion directions reported to observers.
const (
	DirectionCurrent = "2525D"
	DirectionLegacy  = "2525C"
)

// Observer is notified of every classified conversion.
type Observer interface {
	ObserveConversion(direction, status string, mask diagnostic.Mask)
}

// Option configures a Librarian.
type Option func(*Librarian)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Librarian) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(l *Librarian) {
		l.observer = o
	}
}

// WithConversionLogging logs the diagnostic report of every conversion at
// info level.
func WithConversionLogging(enabled bool) Option {
	return func(l *Librarian) {
		l.logConversion = enabled
	}
}

// WithLegacyStandard sets the standard used to rebuild legacy codes.
func WithLegacyStandard(standard string) Option {
	return func(l *Librarian) {
		if standard != "" {
			l.standard = strings.ToUpper(standard)
		}
	}
}

// Librarian makes symbols from codes. It is safe for concurrent use.
type Librarian struct {
	engine        *resolve.Engine
	logger        *slog.Logger
	observer      Observer
	logConversion bool
	standard      string

	invalid *Symbol
	retired *Symbol
}

// NewLibrarian creates a Librarian over store and builds the sentinel symbols.
func NewLibrarian(store *taxonomy.Store, opts ...Option) *Librarian {
	l := &Librarian{
		engine:   resolve.NewEngine(store),
		logger:   slog.Default(),
		standard: DefaultLegacyStandard,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.invalid = &Symbol{SIDC: sidc.Invalid, Status: StatusInvalid, Nodes: l.engine.Resolve(sidc.Invalid)}
	l.retired = &Symbol{SIDC: sidc.Retired, Status: StatusRetired, Nodes: l.engine.Resolve(sidc.Retired)}

	return l
}

// Engine returns the resolution engine.
func (l *Librarian) Engine() *resolve.Engine {
	return l.engine
}

// InvalidSymbol returns the shared invalid sentinel. It is never nil.
func (l *Librarian) InvalidSymbol() *Symbol {
	return l.invalid
}

// RetiredSymbol returns the shared retired sentinel. It is never nil.
func (l *Librarian) RetiredSymbol() *Symbol {
	return l.retired
}

// MakeSymbol makes a symbol from the two numeric halves of a 2525D code.
func (l *Librarian) MakeSymbol(partA, partB uint32) (*Symbol, error) {
	return l.MakeSymbolFromSIDC(sidc.New(partA, partB))
}

// MakeSymbolFromStrings makes a symbol from two 10-digit strings.
func (l *Librarian) MakeSymbolFromStrings(partA, partB string) (*Symbol, error) {
	return l.MakeSymbolFromSIDC(sidc.FromStrings(partA, partB))
}

// MakeSymbolFromSIDC makes a symbol from a 2525D code. Invalid codes yield
// ErrInvalidSymbol and no symbol.
func (l *Librarian) MakeSymbolFromSIDC(s sidc.SIDC) (*Symbol, error) {
	sym := l.NewSymbol(s)
	if sym.Status == StatusInvalid {
		return nil, fmt.Errorf("%w: %s (%s)", ErrInvalidSymbol, s, sym.Report().Mask)
	}

	return sym, nil
}

// MakeLegacySymbol makes a symbol from a 15-character legacy code. The code
// must be exactly 15 characters; "*" is read as "-" and case is ignored.
func (l *Librarian) MakeLegacySymbol(standard, code string) (*Symbol, error) {
	if len(code) != sidc.LegacyLength {
		l.logger.Error("legacy SIDC has the wrong length", "sidc", code, "length", len(code))
		return nil, fmt.Errorf("%w: %q", sidc.ErrLegacyLength, code)
	}

	lc, err := sidc.ParseLegacy(strings.ToUpper(strings.ReplaceAll(code, "*", sidc.LegacyPad)))
	if err != nil {
		return nil, err
	}

	sym := l.NewLegacySymbol(standard, lc)
	if sym.Status == StatusInvalid {
		l.logger.Warn("legacy SIDC is an invalid symbol", "sidc", lc.String(), "standard", sym.Standard)
		return nil, fmt.Errorf("%w: %s (%s)", ErrInvalidSymbol, lc, sym.Report().Mask)
	}

	return sym, nil
}

// NewSymbol classifies a 2525D code without refusing invalid input. The
// sentinel codes yield the shared sentinel symbols.
func (l *Librarian) NewSymbol(s sidc.SIDC) *Symbol {
	switch s {
	case sidc.Invalid:
		l.observe(DirectionCurrent, l.invalid)
		return l.invalid
	case sidc.Retired:
		l.observe(DirectionCurrent, l.retired)
		return l.retired
	}

	r := l.engine.Resolve(s)

	sym := &Symbol{SIDC: s, Nodes: r}

	switch {
	case s.IsRetired():
		sym.Status = StatusRetired
	case s.IsInvalid() || r.SymbolSet == nil:
		sym.Status = StatusInvalid
	case r.LegacySymbol != nil:
		sym.Status = StatusOld
	default:
		sym.Status = StatusNew
	}

	if sym.Status == StatusOld {
		if code, ok := l.engine.LegacyCode(r, l.standard); ok {
			sym.LegacySIDC = code
			sym.Standard = l.standard
		}
	}

	l.observe(DirectionCurrent, sym)

	return sym
}

// NewLegacySymbol classifies a legacy code without refusing invalid input.
func (l *Librarian) NewLegacySymbol(standard string, code sidc.LegacyCode) *Symbol {
	standard = strings.ToUpper(standard)
	r := l.engine.ResolveLegacy(standard, code)

	sym := &Symbol{LegacySIDC: code, Standard: standard, Nodes: r, SIDC: r.SIDC()}

	switch {
	case r.LegacySymbol == nil || sym.SIDC.IsInvalid():
		sym.Status = StatusInvalid
		sym.SIDC = sidc.Invalid
	case r.IsRetired():
		sym.Status = StatusRetired
	default:
		sym.Status = StatusOld
	}

	l.observe(DirectionLegacy, sym)

	return sym
}

func (l *Librarian) observe(direction string, sym *Symbol) {
	report := sym.Report()

	if l.logConversion {
		l.logger.Info("conversion",
			"direction", direction,
			"status", sym.Status.String(),
			"report", report,
		)
	}

	if l.observer != nil {
		l.observer.ObserveConversion(direction, sym.Status.String(), report.Mask)
	}
}
