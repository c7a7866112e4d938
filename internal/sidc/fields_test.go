package sidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	f := New(1003101234, 1211040506).Fields()

	assert.Equal(t, Pair{1, 0}, f.Version)
	assert.Equal(t, uint8(0), f.Context)
	assert.Equal(t, uint8(3), f.StandardIdentity)
	assert.Equal(t, Pair{1, 0}, f.SymbolSet)
	assert.Equal(t, uint8(1), f.Status)
	assert.Equal(t, uint8(2), f.HQTFDummy)
	assert.Equal(t, uint8(3), f.AmplifierGroup)
	assert.Equal(t, uint8(4), f.Amplifier)
	assert.Equal(t, Pair{1, 2}, f.Entity)
	assert.Equal(t, Pair{1, 1}, f.EntityType)
	assert.Equal(t, Pair{0, 4}, f.EntitySubType)
	assert.Equal(t, Pair{0, 5}, f.ModifierOne)
	assert.Equal(t, Pair{0, 6}, f.ModifierTwo)
}

func TestComposeRoundTrip(t *testing.T) {
	for _, s := range []SIDC{New(1003101234, 1211040506), New(1006100000, 0), Invalid, Retired} {
		assert.Equal(t, s, Compose(s.Fields()), s.String())
	}
}

func TestComposeInvalid(t *testing.T) {
	assert.Equal(t, Invalid, Compose(Fields{}), "version 00 puts part A below the threshold")

	overflow := Fields{Version: Pair{9, 9}, SymbolSet: Pair{9, 9}}
	assert.Equal(t, Invalid, Compose(overflow))

	base := New(1003100000, 1211000000).Fields()

	wide := base
	wide.Entity = Pair{1, 10}
	assert.Equal(t, Invalid, Compose(wide), "Pair{1, 10} must not collide with Pair{2, 0}")

	wide = base
	wide.Status = 12
	assert.Equal(t, Invalid, Compose(wide))
}

func TestPair(t *testing.T) {
	assert.Equal(t, uint16(10), Pair{1, 0}.Value())
	assert.Equal(t, "05", Pair{0, 5}.String())
	assert.Equal(t, Pair{4, 5}, PairOf(45))
	assert.True(t, Pair{}.IsZero())
	assert.False(t, Pair{0, 1}.IsZero())
	assert.True(t, Pair{9, 9}.Valid())
	assert.False(t, Pair{1, 10}.Valid())
}
