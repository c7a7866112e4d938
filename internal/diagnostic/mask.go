package diagnostic

import (
	"log/slog"
	"math/bits"
	"strings"

	"sidc-converter/internal/common"
)

// Category identifies one taxonomy lookup category. Each category is a single
// bit so that failures can be accumulated in a Mask.
type Category uint32

const (
	CategoryVersion Category = 1 << iota
	CategoryContext
	CategoryDimension
	CategoryStandardIdentity
	CategorySymbolSet
	CategoryStatus
	CategoryHQTFDummy
	CategoryAmplifierGroup
	CategoryAmplifier
	CategoryAffiliation
	CategoryContextAmplifier
	CategoryEntity
	CategoryEntityType
	CategoryEntitySubType
	CategoryModifierOne
	CategoryModifierTwo
	CategoryLegacySymbol

	CategoryAll  = Category(1<<iota) - 1 // every category
	CategoryNone = Category(0)
)

// CategoryCount is the number of lookup categories.
const CategoryCount = 17

var categoryNames = [CategoryCount]string{
	"Version",
	"Context",
	"Dimension",
	"Standard Identity",
	"Symbol Set",
	"Status",
	"HQ/TF/Dummy",
	"Amplifier Group",
	"Amplifier",
	"Affiliation",
	"Context Amplifier",
	"Entity",
	"Entity Type",
	"Entity SubType",
	"Modifier One",
	"Modifier Two",
	"Legacy Symbol",
}

// Categories lists every category in reporting order.
func Categories() []Category {
	out := make([]Category, CategoryCount)
	for i := range out {
		out[i] = Category(1) << i
	}

	return out
}

// String returns the category name.
func (c Category) String() string {
	if bits.OnesCount32(uint32(c)) != 1 || c > CategoryLegacySymbol {
		return common.UnknownStr
	}

	return categoryNames[bits.TrailingZeros32(uint32(c))]
}

// Reason returns the failure message for the category, e.g. "Entity Not Found".
func (c Category) Reason() string {
	return c.String() + " Not Found"
}

// Mask records which categories failed during one conversion. The zero
// value means every lookup resolved.
type Mask uint32

// Add records a failure for c.
func (m *Mask) Add(c Category) {
	*m |= Mask(c)
}

// Has reports whether c failed.
func (m Mask) Has(c Category) bool {
	return m&Mask(c) != 0
}

// IsZero reports full resolution.
func (m Mask) IsZero() bool {
	return m == 0
}

// Categories returns the failed categories in reporting order.
func (m Mask) Categories() []Category {
	var out []Category

	for _, c := range Categories() {
		if m.Has(c) {
			out = append(out, c)
		}
	}

	return out
}

// Reasons returns up to 17 failure messages in reporting order.
func (m Mask) Reasons() []string {
	cats := m.Categories()

	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.Reason())
	}

	return out
}

// String joins the reasons, or returns "ok" for a zero mask.
func (m Mask) String() string {
	if m.IsZero() {
		return "ok"
	}

	return strings.Join(m.Reasons(), ", ")
}

// Report binds a Mask to the input it was produced for.
type Report struct {
	Converting string
	Mask       Mask
}

// OK reports full resolution.
func (r Report) OK() bool {
	return r.Mask.IsZero()
}

// Reasons returns the named failure reasons.
func (r Report) Reasons() []string {
	return r.Mask.Reasons()
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("converting", r.Converting),
		slog.Uint64("mask", uint64(r.Mask)),
		slog.Any("reasons", r.Reasons()),
	)
}
