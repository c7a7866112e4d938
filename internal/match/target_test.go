package match

import (
	"testing"

	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

var (
	entity     = &taxonomy.Entity{ID: "E"}
	entityType = &taxonomy.EntityType{ID: "ET"}
	subType    = &taxonomy.EntitySubType{ID: "ST"}
	modOne     = &taxonomy.Modifier{ID: "M1", Code: sidc.Pair{Two: 1}}
	modTwoNone = &taxonomy.Modifier{ID: "M2_NONE"}
)

func legacy(id string, e, et, st, m1, m2 taxonomy.Slot) *taxonomy.LegacySymbol {
	return &taxonomy.LegacySymbol{ID: id, Entity: e, EntityType: et, EntitySubType: st, ModifierOne: m1, ModifierTwo: m2}
}

func TestNewTarget_ZeroModifierIsAbsent(t *testing.T) {
	target := NewTarget(entity, nil, nil, modOne, modTwoNone)
	slots := target.Slots()

	if !slots[0].Refers("E") {
		t.Errorf("entity slot = %v, want E", slots[0])
	}

	if slots[1].IsPresent() || slots[2].IsPresent() {
		t.Error("nil nodes must be absent")
	}

	if !slots[3].Refers("M1") {
		t.Errorf("modifier one slot = %v, want M1", slots[3])
	}

	if slots[4].IsPresent() {
		t.Error("a (0,0) modifier must be absent")
	}
}

// Each decoy differs from the target in exactly one slot. None may be
// accepted; only the exact record is.
func TestFindExact_Strict(t *testing.T) {
	p := taxonomy.Present
	na := taxonomy.Absent()

	target := NewTarget(entity, entityType, nil, modOne, modTwoNone)

	decoys := []*taxonomy.LegacySymbol{
		legacy("wrong-entity", p("X"), p("ET"), na, p("M1"), na),
		legacy("missing-type", p("E"), na, na, p("M1"), na),
		legacy("extra-subtype", p("E"), p("ET"), p("ST"), p("M1"), na),
		legacy("extra-modifier-two", p("E"), p("ET"), na, p("M1"), p("M2")),
	}

	for _, d := range decoys {
		if got := target.Score(d); got != SlotCount-1 {
			t.Errorf("%s: score = %d, want %d", d.ID, got, SlotCount-1)
		}
	}

	if got, ok := FindExact(decoys, target); ok {
		t.Fatalf("FindExact accepted partial match %q", got.ID)
	}

	exact := legacy("exact", p("E"), p("ET"), na, p("M1"), na)

	got, ok := FindExact(append(decoys, exact), target)
	if !ok || got.ID != "exact" {
		t.Fatalf("FindExact() = %v (ok=%v), want exact", got, ok)
	}

	ranked := Rank(append(decoys, exact), target)
	if top := ranked.Top(1); len(top) != 1 || top[0].Symbol.ID != "exact" || top[0].Score != SlotCount {
		t.Errorf("Rank top = %+v, want exact with full score", top)
	}

	if top := ranked.Top(2); len(top) != 2 || top[1].Symbol.ID != "wrong-entity" {
		t.Errorf("Rank ties should keep declaration order, got %+v", top)
	}
}

func TestFindExact_FirstOfDuplicates(t *testing.T) {
	na := taxonomy.Absent()
	first := legacy("first", taxonomy.Present("E"), na, na, na, na)
	second := legacy("second", taxonomy.Present("E"), na, na, na, na)

	got, ok := FindExact([]*taxonomy.LegacySymbol{first, nil, second}, NewTarget(entity, nil, nil, nil, nil))
	if !ok || got != first {
		t.Errorf("FindExact() = %v, want first", got)
	}
}

func TestScore_Nil(t *testing.T) {
	if got := NewTarget(nil, nil, nil, nil, nil).Score(nil); got != 0 {
		t.Errorf("Score(nil) = %d, want 0", got)
	}

	if got := (Target{}).Score(&taxonomy.LegacySymbol{}); got != SlotCount {
		t.Errorf("empty target vs empty record = %d, want %d", got, SlotCount)
	}
}

func TestCandidateList_Empty(t *testing.T) {
	if top := Rank(nil, Target{}).Top(3); len(top) != 0 {
		t.Errorf("Top() on empty list = %+v, want none", top)
	}
}
