package symbol_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidc-converter/internal/diagnostic"
	"sidc-converter/internal/sidc"
	"sidc-converter/internal/symbol"
	tx "sidc-converter/internal/taxonomy/taxonomytest"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
	masks []diagnostic.Mask
}

func (r *recorder) ObserveConversion(direction, status string, mask diagnostic.Mask) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, direction+"/"+status)
	r.masks = append(r.masks, mask)
}

func newLibrarian(t *testing.T, opts ...symbol.Option) *symbol.Librarian {
	t.Helper()

	return symbol.NewLibrarian(tx.Store(t), opts...)
}

func TestLibrarian_Sentinels(t *testing.T) {
	l := newLibrarian(t)

	require.NotNil(t, l.InvalidSymbol())
	require.NotNil(t, l.RetiredSymbol())
	assert.Equal(t, sidc.Invalid, l.InvalidSymbol().SIDC)
	assert.Equal(t, symbol.StatusInvalid, l.InvalidSymbol().Status)
	assert.Equal(t, sidc.Retired, l.RetiredSymbol().SIDC)
	assert.Equal(t, symbol.StatusRetired, l.RetiredSymbol().Status)
	assert.Same(t, l.InvalidSymbol(), l.InvalidSymbol())

	assert.Same(t, l.InvalidSymbol(), l.NewSymbol(sidc.Invalid))
	assert.Same(t, l.RetiredSymbol(), l.NewSymbol(sidc.Retired))
	assert.Same(t, l.InvalidSymbol(), l.NewSymbol(sidc.FromStrings("x", "y")))

	other := l.NewSymbol(sidc.New(1003990000, 0))
	assert.Equal(t, symbol.StatusInvalid, other.Status)
	assert.NotSame(t, l.InvalidSymbol(), other)
}

func TestLibrarian_MakeSymbol(t *testing.T) {
	tests := []struct {
		name       string
		partA      uint32
		partB      uint32
		wantErr    error
		wantStatus symbol.Status
		wantLegacy sidc.LegacyCode
	}{
		{
			name:       "old symbol with legacy equivalent",
			partA:      1003100000,
			partB:      1205010001,
			wantStatus: symbol.StatusOld,
			wantLegacy: "SFGPUCATA------",
		},
		{
			name:       "new symbol without legacy equivalent",
			partA:      1003100000,
			partB:      1205950000,
			wantStatus: symbol.StatusNew,
		},
		{
			name:       "retired sentinel",
			partA:      1001980000,
			partB:      1100000000,
			wantStatus: symbol.StatusRetired,
		},
		{
			name:    "invalid sentinel",
			partA:   1001980000,
			partB:   1000000000,
			wantErr: symbol.ErrInvalidSymbol,
		},
		{
			name:    "unknown symbol set",
			partA:   1003990000,
			partB:   1205010001,
			wantErr: symbol.ErrInvalidSymbol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLibrarian(t)

			sym, err := l.MakeSymbol(tt.partA, tt.partB)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sym)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, sym.Status)
			assert.Equal(t, tt.wantLegacy, sym.LegacySIDC)
			assert.Equal(t, tt.wantLegacy != "", sym.HasLegacy())
		})
	}
}

func TestLibrarian_MakeSymbolFromStrings(t *testing.T) {
	l := newLibrarian(t)

	sym, err := l.MakeSymbolFromStrings("1003100000", "1205010001")
	require.NoError(t, err)
	assert.Equal(t, symbol.StatusOld, sym.Status)
	assert.Equal(t, symbol.DefaultLegacyStandard, sym.Standard)

	_, err = l.MakeSymbolFromStrings("not-a-code", "1205010001")
	require.ErrorIs(t, err, symbol.ErrInvalidSymbol)
}

func TestLibrarian_MakeLegacySymbol(t *testing.T) {
	tests := []struct {
		name       string
		standard   string
		code       string
		wantErr    error
		wantStatus symbol.Status
		wantSIDC   sidc.SIDC
	}{
		{
			name:       "old symbol",
			standard:   "2525C",
			code:       "SFGPUCATA---USA",
			wantStatus: symbol.StatusOld,
			wantSIDC:   sidc.New(1003100000, 1205010001),
		},
		{
			name:       "lower case and stars",
			standard:   "2525c",
			code:       "sfgpucata***usa",
			wantStatus: symbol.StatusOld,
			wantSIDC:   sidc.New(1003100000, 1205010001),
		},
		{
			name:       "retired symbol",
			standard:   "2525C",
			code:       "SFGPUCIN-------",
			wantStatus: symbol.StatusRetired,
			wantSIDC:   sidc.Retired,
		},
		{
			name:     "too short",
			standard: "2525C",
			code:     "SFGPUCI",
			wantErr:  sidc.ErrLegacyLength,
		},
		{
			name:     "too long",
			standard: "2525C",
			code:     "SFGPUCATA---USAX",
			wantErr:  sidc.ErrLegacyLength,
		},
		{
			name:     "unknown function",
			standard: "2525C",
			code:     "SFGPXXXXXX-----",
			wantErr:  symbol.ErrInvalidSymbol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := newLibrarian(t, symbol.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

			sym, err := l.MakeLegacySymbol(tt.standard, tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, sym)
				assert.NotEmpty(t, buf.String())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, sym.Status)
			assert.Equal(t, tt.wantSIDC, sym.SIDC)
			assert.Equal(t, "2525C", sym.Standard)
		})
	}
}

func TestLibrarian_NewLegacySymbol_Invalid(t *testing.T) {
	l := newLibrarian(t)

	sym := l.NewLegacySymbol("2525C", sidc.LegacyCode("SFGXUCI--------"))

	assert.Equal(t, symbol.StatusInvalid, sym.Status)
	assert.Equal(t, sidc.Invalid, sym.SIDC)
	assert.True(t, sym.Report().Mask.Has(diagnostic.CategoryStatus))
}

func TestLibrarian_Observer(t *testing.T) {
	rec := &recorder{}
	l := newLibrarian(t, symbol.WithObserver(rec))

	_, _ = l.MakeSymbol(1003100000, 1205010001)
	_, _ = l.MakeLegacySymbol("2525C", "SFGPXXXXXX-----")

	rec.mu.Lock()
	defer rec.mu.Unlock()

	// The sentinels are built without notifying observers set after them.
	require.Len(t, rec.calls, 2)
	assert.Equal(t, "2525D/Old", rec.calls[0])
	assert.True(t, rec.masks[0].IsZero())
	assert.Equal(t, "2525C/Invalid", rec.calls[1])
	assert.True(t, rec.masks[1].Has(diagnostic.CategoryLegacySymbol))
}

func TestLibrarian_ConversionLogging(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	l := newLibrarian(t, symbol.WithLogger(logger), symbol.WithConversionLogging(true))

	_, err := l.MakeSymbol(1003100000, 1300000000)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=conversion")
	assert.Contains(t, out, "status=New")
	assert.Contains(t, out, "Entity")
}

func TestLibrarian_LegacyStandard(t *testing.T) {
	l := newLibrarian(t, symbol.WithLegacyStandard("2525b"))

	sym, err := l.MakeSymbol(1003100000, 1205010001)
	require.NoError(t, err)

	// The fixture carries no 2525B-only letters, so unqualified letters apply.
	assert.Equal(t, "2525B", sym.Standard)
	assert.Equal(t, sidc.LegacyCode("SFGPUCATA------"), sym.LegacySIDC)
}

func TestStatus_MarshalText(t *testing.T) {
	b, err := symbol.StatusRetired.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Retired", string(b))
	assert.Equal(t, "Status(9)", symbol.Status(9).String())
}
