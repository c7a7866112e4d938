package match

import (
	"sort"

	"sidc-converter/internal/taxonomy"
)

// SlotCount is the number of slots scored by Target.Score.
const SlotCount = 5

// Target is a resolved 2525D node combination expressed as match slots.
type Target struct {
	slots [SlotCount]taxonomy.Slot
}

// NewTarget builds a target from resolved nodes; nil nodes are absent.
// Modifiers coded (0,0) mean "no modifier" and are treated as absent.
func NewTarget(
	entity *taxonomy.Entity,
	entityType *taxonomy.EntityType,
	subType *taxonomy.EntitySubType,
	modOne, modTwo *taxonomy.Modifier,
) Target {
	var t Target

	if entity != nil {
		t.slots[0] = taxonomy.Present(entity.ID)
	}

	if entityType != nil {
		t.slots[1] = taxonomy.Present(entityType.ID)
	}

	if subType != nil {
		t.slots[2] = taxonomy.Present(subType.ID)
	}

	if modOne != nil && !modOne.Code.IsZero() {
		t.slots[3] = taxonomy.Present(modOne.ID)
	}

	if modTwo != nil && !modTwo.Code.IsZero() {
		t.slots[4] = taxonomy.Present(modTwo.ID)
	}

	return t
}

// Slots returns the target slots in entity, type, subtype, modifier one,
// modifier two order.
func (t Target) Slots() [SlotCount]taxonomy.Slot {
	return t.slots
}

// Score counts the slots on which ls agrees with t: a present slot must name
// the same node, an absent slot must be absent on the record too.
func (t Target) Score(ls *taxonomy.LegacySymbol) int {
	if ls == nil {
		return 0
	}

	score := 0

	for i, want := range ls.Slots() {
		got := t.slots[i]
		if id, ok := got.ID(); ok {
			if want.Refers(id) {
				score++
			}
		} else if !want.IsPresent() {
			score++
		}
	}

	return score
}

// FindExact returns the first legacy symbol agreeing with t on every slot.
// Partial scores never match.
func FindExact(symbols []*taxonomy.LegacySymbol, t Target) (*taxonomy.LegacySymbol, bool) {
	for _, ls := range symbols {
		if t.Score(ls) == SlotCount {
			return ls, true
		}
	}

	return nil, false
}

// Candidate is a legacy symbol scored against a target.
type Candidate struct {
	Symbol *taxonomy.LegacySymbol
	Score  int

	// order is the declaration index, used to break ties.
	order int
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every legacy symbol against t. The result is sorted by score
// (descending), then by declaration order. It is meant for reporting near
// misses; only FindExact decides a match.
func Rank(symbols []*taxonomy.LegacySymbol, t Target) CandidateList {
	candidates := make(CandidateList, 0, len(symbols))

	for i, ls := range symbols {
		if ls == nil {
			continue
		}

		candidates = append(candidates, Candidate{Symbol: ls, Score: t.Score(ls), order: i})
	}

	sort.Sort(candidates)

	return candidates
}

// Top returns the top n candidates.
func (cl CandidateList) Top(n int) CandidateList {
	if n >= len(cl) {
		return cl
	}

	return cl[:n]
}

// Len implements sort.Interface.
func (cl CandidateList) Len() int { return len(cl) }

// Swap implements sort.Interface.
func (cl CandidateList) Swap(i, j int) { cl[i], cl[j] = cl[j], cl[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by declaration order.
func (cl CandidateList) Less(i, j int) bool {
	if cl[i].Score != cl[j].Score {
		return cl[i].Score > cl[j].Score
	}

	return cl[i].order < cl[j].order
}
