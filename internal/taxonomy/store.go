package taxonomy

import (
	"errors"
	"fmt"
	"slices"

	"sidc-converter/internal/diagnostic"
)

// ErrInvalidLibrary is returned by NewStore when the library violates a
// structural invariant (duplicate IDs or codes, dangling references).
var ErrInvalidLibrary = errors.New("invalid symbology library")

// Store is the immutable, indexed view over a Library.
type Store struct {
	versions               *Index[*Version]
	contexts               *Index[*Context]
	dimensions             *Index[*Dimension]
	standardIdentities     *Index[*StandardIdentity]
	standardIdentityGroups *Index[*StandardIdentityGroup]
	statuses               *Index[*Status]
	hqtfDummies            *Index[*HQTFDummy]
	amplifierGroups        *Index[*AmplifierGroup]
	affiliations           *Index[*Affiliation]
	symbolSets             *Index[*SymbolSet]

	amplifiers       map[*AmplifierGroup]*Index[*Amplifier]
	allAmplifiers    []*Amplifier
	amplifierGroupOf map[*Amplifier]*AmplifierGroup
	groupOfIdentity  map[string]*StandardIdentityGroup
	affiliationOf    map[triplet]*Affiliation

	symbolSetsByCode []*SymbolSet
	dimensionOf      map[*SymbolSet]*Dimension
	setsOf           map[*Dimension][]*SymbolSet
	sets             map[*SymbolSet]*setIndex

	warnings []diagnostic.Diagnostic
}

type triplet struct {
	context, dimension, standardIdentity string
}

// setIndex holds the indices scoped below one symbol set.
type setIndex struct {
	entities    *Index[*Entity]
	entityTypes map[*Entity]*Index[*EntityType]
	subTypes    map[*EntityType]*Index[*EntitySubType]
	special     *Index[*EntitySubType]
	modOne      *Index[*Modifier]
	modTwo      *Index[*Modifier]
	// current holds the legacy symbols not flagged retired, in declared order.
	current []*LegacySymbol
	// ids holds every identifier declared in the set, for slot validation.
	ids map[string]struct{}
}

// NewStore validates lib and builds its indices. Structural errors abort
// construction with an error wrapping ErrInvalidLibrary; softer findings are
// kept and exposed through Warnings.
func NewStore(lib *Library) (*Store, error) {
	if lib == nil {
		return nil, fmt.Errorf("%w: library is nil", ErrInvalidLibrary)
	}

	diags := &diagnostic.Diagnostics{}
	b := &indexer{diags: diags, ids: make(map[string]string)}

	s := &Store{
		amplifiers:       make(map[*AmplifierGroup]*Index[*Amplifier]),
		amplifierGroupOf: make(map[*Amplifier]*AmplifierGroup),
		groupOfIdentity:  make(map[string]*StandardIdentityGroup),
		affiliationOf:    make(map[triplet]*Affiliation),
		dimensionOf:      make(map[*SymbolSet]*Dimension),
		setsOf:           make(map[*Dimension][]*SymbolSet),
		sets:             make(map[*SymbolSet]*setIndex),
	}

	s.versions = buildIndex(b, "library", lib.Versions, keyFuncs[*Version]{
		kind: "version",
		id:   func(n *Version) string { return n.ID },
		code: func(n *Version) (uint16, bool) { return pairCode(n.Code) },
	})
	s.contexts = buildIndex(b, "library", lib.Contexts, keyFuncs[*Context]{
		kind: "context",
		id:   func(n *Context) string { return n.ID },
		code: func(n *Context) (uint16, bool) { return digitCode(n.Code) },
	})
	s.dimensions = buildIndex(b, "library", lib.Dimensions, keyFuncs[*Dimension]{
		kind: "dimension",
		id:   func(n *Dimension) string { return n.ID },
	})
	s.standardIdentities = buildIndex(b, "library", lib.StandardIdentities, keyFuncs[*StandardIdentity]{
		kind: "standard identity",
		id:   func(n *StandardIdentity) string { return n.ID },
		code: func(n *StandardIdentity) (uint16, bool) { return digitCode(n.Code) },
	})
	s.standardIdentityGroups = buildIndex(b, "library", lib.StandardIdentityGroups, keyFuncs[*StandardIdentityGroup]{
		kind: "standard identity group",
		id:   func(n *StandardIdentityGroup) string { return n.ID },
	})
	s.statuses = buildIndex(b, "library", lib.Statuses, keyFuncs[*Status]{
		kind: "status",
		id:   func(n *Status) string { return n.ID },
		code: func(n *Status) (uint16, bool) { return digitCode(n.Code) },
	})
	s.hqtfDummies = buildIndex(b, "library", lib.HQTFDummies, keyFuncs[*HQTFDummy]{
		kind: "hq/tf/dummy",
		id:   func(n *HQTFDummy) string { return n.ID },
		code: func(n *HQTFDummy) (uint16, bool) { return digitCode(n.Code) },
	})
	s.amplifierGroups = buildIndex(b, "library", lib.AmplifierGroups, keyFuncs[*AmplifierGroup]{
		kind: "amplifier group",
		id:   func(n *AmplifierGroup) string { return n.ID },
		code: func(n *AmplifierGroup) (uint16, bool) { return digitCode(n.Code) },
	})
	s.affiliations = buildIndex(b, "library", lib.Affiliations, keyFuncs[*Affiliation]{
		kind: "affiliation",
		id:   func(n *Affiliation) string { return n.ID },
	})
	s.symbolSets = buildIndex(b, "library", lib.SymbolSets, keyFuncs[*SymbolSet]{
		kind: "symbol set",
		id:   func(n *SymbolSet) string { return n.ID },
		code: func(n *SymbolSet) (uint16, bool) { return pairCode(n.Code) },
	})

	s.indexAmplifiers(b)
	s.linkStandardIdentityGroups(diags)
	s.linkAffiliations(diags)

	for _, ss := range s.symbolSets.All() {
		s.sets[ss] = buildSetIndex(b, ss)
	}

	s.linkDimensions(diags)

	s.symbolSetsByCode = slices.Clone(s.symbolSets.All())
	slices.SortStableFunc(s.symbolSetsByCode, func(a, b *SymbolSet) int {
		return int(a.Code.Value()) - int(b.Code.Value())
	})

	for _, ss := range s.symbolSets.All() {
		validateLegacySymbols(diags, ss, s.sets[ss])
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLibrary, diags.Error())
	}

	s.warnings = diags.Warnings

	return s, nil
}

func (s *Store) indexAmplifiers(b *indexer) {
	for _, g := range s.amplifierGroups.All() {
		amps := buildIndex(b, g.ID, g.Amplifiers, keyFuncs[*Amplifier]{
			kind: "amplifier",
			id:   func(n *Amplifier) string { return n.ID },
			code: func(n *Amplifier) (uint16, bool) { return digitCode(n.Code) },
		})

		s.amplifiers[g] = amps
		for _, a := range amps.All() {
			s.amplifierGroupOf[a] = g
			s.allAmplifiers = append(s.allAmplifiers, a)
		}
	}
}

func (s *Store) linkStandardIdentityGroups(diags *diagnostic.Diagnostics) {
	for _, g := range s.standardIdentityGroups.All() {
		for _, siID := range g.StandardIdentityIDs {
			if _, ok := s.standardIdentities.ID(siID); !ok {
				diags.AddWarning("dangling_reference",
					fmt.Sprintf("standard identity %q is not defined", siID), g.ID, siID)
				continue
			}

			if _, taken := s.groupOfIdentity[siID]; !taken {
				s.groupOfIdentity[siID] = g
			}
		}
	}
}

func (s *Store) linkAffiliations(diags *diagnostic.Diagnostics) {
	for _, a := range s.affiliations.All() {
		if _, ok := s.contexts.ID(a.ContextID); !ok {
			diags.AddError("dangling_reference", fmt.Sprintf("context %q is not defined", a.ContextID), a.ID, a.ContextID)
		}

		if _, ok := s.dimensions.ID(a.DimensionID); !ok {
			diags.AddError("dangling_reference", fmt.Sprintf("dimension %q is not defined", a.DimensionID), a.ID, a.DimensionID)
		}

		if _, ok := s.standardIdentities.ID(a.StandardIdentityID); !ok {
			diags.AddError("dangling_reference",
				fmt.Sprintf("standard identity %q is not defined", a.StandardIdentityID), a.ID, a.StandardIdentityID)
		}

		key := triplet{a.ContextID, a.DimensionID, a.StandardIdentityID}
		if prev, dup := s.affiliationOf[key]; dup {
			diags.AddError("duplicate_affiliation", fmt.Sprintf("same combination as %q", prev.ID), "library", a.ID)
			continue
		}

		s.affiliationOf[key] = a
	}
}

// linkDimensions connects dimensions and symbol sets. A dimension's own
// references come first, in their declared order; symbol sets that name a
// dimension without being referenced by it are appended with a warning.
func (s *Store) linkDimensions(diags *diagnostic.Diagnostics) {
	for _, ss := range s.symbolSets.All() {
		dim, ok := s.dimensions.ID(ss.DimensionID)
		if !ok {
			diags.AddError("dangling_reference", fmt.Sprintf("dimension %q is not defined", ss.DimensionID), ss.ID, ss.DimensionID)
			continue
		}

		s.dimensionOf[ss] = dim
	}

	for _, dim := range s.dimensions.All() {
		for _, ref := range dim.SymbolSets {
			ss, ok := s.symbolSets.ID(ref.ID)
			if !ok {
				diags.AddWarning("dangling_reference", fmt.Sprintf("symbol set %q is not defined", ref.ID), dim.ID, ref.ID)
				continue
			}

			if ss.Code != ref.Code {
				diags.AddWarning("code_mismatch",
					fmt.Sprintf("reference code %s differs from symbol set code %s", ref.Code, ss.Code), dim.ID, ref.ID)
			}

			if s.dimensionOf[ss] != dim {
				diags.AddError("dimension_mismatch",
					fmt.Sprintf("symbol set belongs to dimension %q", ss.DimensionID), dim.ID, ref.ID)
				continue
			}

			if !slices.Contains(s.setsOf[dim], ss) {
				s.setsOf[dim] = append(s.setsOf[dim], ss)
			}
		}
	}

	for _, ss := range s.symbolSets.All() {
		dim := s.dimensionOf[ss]
		if dim == nil || slices.Contains(s.setsOf[dim], ss) {
			continue
		}

		diags.AddWarning("unreferenced_symbol_set", "symbol set is not listed by its dimension", dim.ID, ss.ID)
		s.setsOf[dim] = append(s.setsOf[dim], ss)
	}
}

func buildSetIndex(b *indexer, ss *SymbolSet) *setIndex {
	si := &setIndex{
		entityTypes: make(map[*Entity]*Index[*EntityType]),
		subTypes:    make(map[*EntityType]*Index[*EntitySubType]),
		ids:         make(map[string]struct{}),
	}

	subTypeKeys := keyFuncs[*EntitySubType]{
		kind: "entity subtype",
		id:   func(n *EntitySubType) string { return n.ID },
		code: func(n *EntitySubType) (uint16, bool) { return pairCode(n.Code) },
	}
	modifierKeys := keyFuncs[*Modifier]{
		kind: "modifier",
		id:   func(n *Modifier) string { return n.ID },
		code: func(n *Modifier) (uint16, bool) { return pairCode(n.Code) },
	}

	si.entities = buildIndex(b, ss.ID, ss.Entities, keyFuncs[*Entity]{
		kind: "entity",
		id:   func(n *Entity) string { return n.ID },
		code: func(n *Entity) (uint16, bool) { return pairCode(n.Code) },
	})
	for _, e := range si.entities.All() {
		si.ids[e.ID] = struct{}{}

		types := buildIndex(b, e.ID, e.EntityTypes, keyFuncs[*EntityType]{
			kind: "entity type",
			id:   func(n *EntityType) string { return n.ID },
			code: func(n *EntityType) (uint16, bool) { return pairCode(n.Code) },
		})
		si.entityTypes[e] = types

		for _, et := range types.All() {
			si.ids[et.ID] = struct{}{}

			subs := buildIndex(b, et.ID, et.EntitySubTypes, subTypeKeys)
			si.subTypes[et] = subs

			for _, st := range subs.All() {
				si.ids[st.ID] = struct{}{}
			}
		}
	}

	si.special = buildIndex(b, ss.ID, ss.SpecialEntitySubTypes, subTypeKeys)
	si.modOne = buildIndex(b, ss.ID, ss.SectorOneModifiers, modifierKeys)
	si.modTwo = buildIndex(b, ss.ID, ss.SectorTwoModifiers, modifierKeys)

	for _, st := range si.special.All() {
		si.ids[st.ID] = struct{}{}
	}

	for _, m := range si.modOne.All() {
		si.ids[m.ID] = struct{}{}
	}

	for _, m := range si.modTwo.All() {
		si.ids[m.ID] = struct{}{}
	}

	for _, ls := range ss.LegacySymbols {
		if ls != nil && !ls.Retired {
			si.current = append(si.current, ls)
		}
	}

	return si
}

// validateLegacySymbols warns about slots naming nodes the set does not declare.
// Such records can never score a full match.
func validateLegacySymbols(diags *diagnostic.Diagnostics, ss *SymbolSet, si *setIndex) {
	for i, ls := range ss.LegacySymbols {
		if ls == nil {
			diags.AddError("nil_node", fmt.Sprintf("legacy symbol #%d is nil", i), ss.ID, "")
			continue
		}

		for _, slot := range ls.Slots() {
			id, ok := slot.ID()
			if !ok {
				continue
			}

			if _, declared := si.ids[id]; !declared {
				diags.AddWarning("dangling_slot", fmt.Sprintf("slot references undeclared node %q", id), ss.ID, ls.ID)
			}
		}
	}
}

// Warnings returns the non-fatal findings from construction.
func (s *Store) Warnings() []diagnostic.Diagnostic {
	return s.warnings
}

// Versions returns the version index.
func (s *Store) Versions() *Index[*Version] { return s.versions }

// Contexts returns the context index.
func (s *Store) Contexts() *Index[*Context] { return s.contexts }

// Dimensions returns the dimension index.
func (s *Store) Dimensions() *Index[*Dimension] { return s.dimensions }

// StandardIdentities returns the standard identity index.
func (s *Store) StandardIdentities() *Index[*StandardIdentity] { return s.standardIdentities }

// StandardIdentityGroups returns the standard identity group index.
func (s *Store) StandardIdentityGroups() *Index[*StandardIdentityGroup] {
	return s.standardIdentityGroups
}

// Statuses returns the status index.
func (s *Store) Statuses() *Index[*Status] { return s.statuses }

// HQTFDummies returns the HQ/TF/Dummy index.
func (s *Store) HQTFDummies() *Index[*HQTFDummy] { return s.hqtfDummies }

// AmplifierGroups returns the amplifier group index.
func (s *Store) AmplifierGroups() *Index[*AmplifierGroup] { return s.amplifierGroups }

// Affiliations returns the affiliation index.
func (s *Store) Affiliations() *Index[*Affiliation] { return s.affiliations }

// SymbolSets returns the symbol set index, keyed by composite two-digit code.
func (s *Store) SymbolSets() *Index[*SymbolSet] { return s.symbolSets }

// SymbolSetsByCode returns every symbol set ordered by code.
func (s *Store) SymbolSetsByCode() []*SymbolSet { return s.symbolSetsByCode }

// Amplifiers returns the amplifiers of g; nil for a nil or foreign group.
func (s *Store) Amplifiers(g *AmplifierGroup) *Index[*Amplifier] { return s.amplifiers[g] }

// AllAmplifiers returns every amplifier, group by group, in declaration order.
func (s *Store) AllAmplifiers() []*Amplifier { return s.allAmplifiers }

// AmplifierGroupOf returns the group owning a.
func (s *Store) AmplifierGroupOf(a *Amplifier) (*AmplifierGroup, bool) {
	g, ok := s.amplifierGroupOf[a]
	return g, ok
}

// StandardIdentityGroupOf returns the first group listing the standard identity.
func (s *Store) StandardIdentityGroupOf(standardIdentityID string) (*StandardIdentityGroup, bool) {
	g, ok := s.groupOfIdentity[standardIdentityID]
	return g, ok
}

// AffiliationOf returns the affiliation for a context, dimension and standard identity.
func (s *Store) AffiliationOf(contextID, dimensionID, standardIdentityID string) (*Affiliation, bool) {
	a, ok := s.affiliationOf[triplet{contextID, dimensionID, standardIdentityID}]
	return a, ok
}

// DimensionOf returns the dimension owning ss.
func (s *Store) DimensionOf(ss *SymbolSet) (*Dimension, bool) {
	d, ok := s.dimensionOf[ss]
	return d, ok
}

// SymbolSetsOf returns the symbol sets of dim in declaration order.
func (s *Store) SymbolSetsOf(dim *Dimension) []*SymbolSet { return s.setsOf[dim] }

// Entities returns the entities of ss.
func (s *Store) Entities(ss *SymbolSet) *Index[*Entity] {
	if si := s.sets[ss]; si != nil {
		return si.entities
	}

	return nil
}

// EntityTypes returns the entity types of e within ss.
func (s *Store) EntityTypes(ss *SymbolSet, e *Entity) *Index[*EntityType] {
	if si := s.sets[ss]; si != nil {
		return si.entityTypes[e]
	}

	return nil
}

// EntitySubTypes returns the subtypes of et within ss.
func (s *Store) EntitySubTypes(ss *SymbolSet, et *EntityType) *Index[*EntitySubType] {
	if si := s.sets[ss]; si != nil {
		return si.subTypes[et]
	}

	return nil
}

// SpecialEntitySubTypes returns the subtypes of ss not owned by any entity type.
func (s *Store) SpecialEntitySubTypes(ss *SymbolSet) *Index[*EntitySubType] {
	if si := s.sets[ss]; si != nil {
		return si.special
	}

	return nil
}

// SectorOneModifiers returns the sector one modifiers of ss.
func (s *Store) SectorOneModifiers(ss *SymbolSet) *Index[*Modifier] {
	if si := s.sets[ss]; si != nil {
		return si.modOne
	}

	return nil
}

// SectorTwoModifiers returns the sector two modifiers of ss.
func (s *Store) SectorTwoModifiers(ss *SymbolSet) *Index[*Modifier] {
	if si := s.sets[ss]; si != nil {
		return si.modTwo
	}

	return nil
}

// CurrentLegacySymbols returns the legacy symbols of ss that still have a
// 2525D equivalent.
func (s *Store) CurrentLegacySymbols(ss *SymbolSet) []*LegacySymbol {
	if si := s.sets[ss]; si != nil {
		return si.current
	}

	return nil
}
