package sidc

import "fmt"

// Pair is a two-digit code such as a symbol set or entity code.
type Pair struct {
	One uint8
	Two uint8
}

// PairOf splits a value in [0, 99] into its two digits.
func PairOf(v uint16) Pair {
	return Pair{One: uint8(v / 10 % 10), Two: uint8(v % 10)}
}

// Value returns the pair as a number, e.g. Pair{1, 0} is 10.
func (p Pair) Value() uint16 {
	return uint16(p.One)*10 + uint16(p.Two)
}

// Valid reports whether both digits are in [0, 9].
func (p Pair) Valid() bool {
	return p.One <= 9 && p.Two <= 9
}

// IsZero reports whether both digits are zero.
func (p Pair) IsZero() bool {
	return p.One == 0 && p.Two == 0
}

// String renders the pair as two digits.
func (p Pair) String() string {
	return fmt.Sprintf("%d%d", p.One, p.Two)
}

// Fields is the positional split of a SIDC.
//
//	partA: VV C S SS T H G A   version, context, standard identity, symbol set,
//	                           status, HQ/TF/dummy, amplifier group, amplifier
//	partB: EE TT UU M1 M2      entity, entity type, entity subtype, modifiers
type Fields struct {
	Version          Pair
	Context          uint8
	StandardIdentity uint8
	SymbolSet        Pair
	Status           uint8
	HQTFDummy        uint8
	AmplifierGroup   uint8
	Amplifier        uint8
	Entity           Pair
	EntityType       Pair
	EntitySubType    Pair
	ModifierOne      Pair
	ModifierTwo      Pair
}

// Fields splits s into its positional codes.
func (s SIDC) Fields() Fields {
	a := digits(s.partA)
	b := digits(s.partB)

	return Fields{
		Version:          Pair{a[0], a[1]},
		Context:          a[2],
		StandardIdentity: a[3],
		SymbolSet:        Pair{a[4], a[5]},
		Status:           a[6],
		HQTFDummy:        a[7],
		AmplifierGroup:   a[8],
		Amplifier:        a[9],
		Entity:           Pair{b[0], b[1]},
		EntityType:       Pair{b[2], b[3]},
		EntitySubType:    Pair{b[4], b[5]},
		ModifierOne:      Pair{b[6], b[7]},
		ModifierTwo:      Pair{b[8], b[9]},
	}
}

// Compose builds a SIDC from its positional codes. A position above 9, or a
// half that overflows uint32 or fails validation, yields Invalid.
func Compose(f Fields) SIDC {
	a := [PartLength]uint8{
		f.Version.One, f.Version.Two,
		f.Context,
		f.StandardIdentity,
		f.SymbolSet.One, f.SymbolSet.Two,
		f.Status,
		f.HQTFDummy,
		f.AmplifierGroup,
		f.Amplifier,
	}
	b := [PartLength]uint8{
		f.Entity.One, f.Entity.Two,
		f.EntityType.One, f.EntityType.Two,
		f.EntitySubType.One, f.EntitySubType.Two,
		f.ModifierOne.One, f.ModifierOne.Two,
		f.ModifierTwo.One, f.ModifierTwo.Two,
	}

	partA, okA := number(a)
	partB, okB := number(b)

	if !okA || !okB {
		return Invalid
	}

	return New(partA, partB)
}

func digits(v uint32) [PartLength]uint8 {
	var d [PartLength]uint8

	for i := PartLength - 1; i >= 0; i-- {
		d[i] = uint8(v % 10)
		v /= 10
	}

	return d
}

// number folds ten digits into a half; false means a position holds more
// than one digit or the half overflows uint32.
func number(d [PartLength]uint8) (uint32, bool) {
	var v uint64

	for _, x := range d {
		if x > 9 {
			return 0, false
		}

		v = v*10 + uint64(x)
	}

	if v > uint64(^uint32(0)) {
		return 0, false
	}

	return uint32(v), true
}
