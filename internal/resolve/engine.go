package resolve

import (
	"sidc-converter/internal/common"
	"sidc-converter/internal/diagnostic"
	"sidc-converter/internal/match"
	"sidc-converter/internal/taxonomy"
)

// Engine resolves codes against one store. It holds no per-conversion state
// and is safe for concurrent use.
type Engine struct {
	store *taxonomy.Store
}

// NewEngine creates an Engine over store.
func NewEngine(store *taxonomy.Store) *Engine {
	return &Engine{store: store}
}

// Store returns the underlying store.
func (e *Engine) Store() *taxonomy.Store {
	return e.store
}

// Begin starts a conversion with an empty mask.
func (e *Engine) Begin() *Conversion {
	return &Conversion{store: e.store}
}

// Conversion carries the diagnostic mask of one conversion. It must not be
// shared between goroutines.
type Conversion struct {
	store *taxonomy.Store
	mask  diagnostic.Mask
}

// Mask returns the failures recorded so far.
func (c *Conversion) Mask() diagnostic.Mask {
	return c.mask
}

// Report binds the mask to a description of the input.
func (c *Conversion) Report(converting string) diagnostic.Report {
	return diagnostic.Report{Converting: converting, Mask: c.mask}
}

func (c *Conversion) miss(cat diagnostic.Category) {
	c.mask.Add(cat)
}

// find runs lookup and records cat on a miss.
func find[T any](
	c *Conversion,
	cat diagnostic.Category,
	ix *taxonomy.Index[T],
	k Key,
	legacy func(T) []taxonomy.LegacyLetterCode,
) T {
	n, ok := lookup(ix, k, legacy)
	if !ok {
		c.miss(cat)
	}

	return n
}

// Version resolves a version by code or ID.
func (c *Conversion) Version(k Key) *taxonomy.Version {
	return find(c, diagnostic.CategoryVersion, c.store.Versions(), k, nil)
}

// LatestVersion returns the last declared version, used when converting
// legacy codes.
func (c *Conversion) LatestVersion() *taxonomy.Version {
	all := c.store.Versions().All()
	if common.IsEmpty(all) {
		c.miss(diagnostic.CategoryVersion)
		return nil
	}

	return all[len(all)-1]
}

// Context resolves a context by code or ID.
func (c *Conversion) Context(k Key) *taxonomy.Context {
	return find(c, diagnostic.CategoryContext, c.store.Contexts(), k, nil)
}

// Dimension resolves a dimension by ID or legacy letter.
func (c *Conversion) Dimension(k Key) *taxonomy.Dimension {
	return find(c, diagnostic.CategoryDimension, c.store.Dimensions(), k, dimensionCodes)
}

// DimensionBySymbolSet returns the dimension owning ss.
func (c *Conversion) DimensionBySymbolSet(ss *taxonomy.SymbolSet) *taxonomy.Dimension {
	d, ok := c.store.DimensionOf(ss)
	if !ok {
		c.miss(diagnostic.CategoryDimension)
	}

	return d
}

// StandardIdentity resolves a standard identity by code or ID.
func (c *Conversion) StandardIdentity(k Key) *taxonomy.StandardIdentity {
	return find(c, diagnostic.CategoryStandardIdentity, c.store.StandardIdentities(), k, nil)
}

// StandardIdentityGroup resolves a group by ID. Groups have no code, so a
// code key always misses. Misses are reported as standard identity failures.
func (c *Conversion) StandardIdentityGroup(k Key) *taxonomy.StandardIdentityGroup {
	return find(c, diagnostic.CategoryStandardIdentity, c.store.StandardIdentityGroups(), k, nil)
}

// StandardIdentityGroupOf returns the group listing si.
func (c *Conversion) StandardIdentityGroupOf(si *taxonomy.StandardIdentity) *taxonomy.StandardIdentityGroup {
	if si != nil {
		if g, ok := c.store.StandardIdentityGroupOf(si.ID); ok {
			return g
		}
	}

	c.miss(diagnostic.CategoryStandardIdentity)

	return nil
}

// SymbolSet resolves a symbol set by composite code, ID or coding scheme letter.
func (c *Conversion) SymbolSet(k Key) *taxonomy.SymbolSet {
	return find(c, diagnostic.CategorySymbolSet, c.store.SymbolSets(), k, symbolSetCodes)
}

// Status resolves a status by code, ID or legacy letter. A legacy miss
// reports like any other miss.
func (c *Conversion) Status(k Key) *taxonomy.Status {
	return find(c, diagnostic.CategoryStatus, c.store.Statuses(), k, statusCodes)
}

// HQTFDummy resolves an HQ/TF/dummy indicator by code, ID or legacy letter.
func (c *Conversion) HQTFDummy(k Key) *taxonomy.HQTFDummy {
	return find(c, diagnostic.CategoryHQTFDummy, c.store.HQTFDummies(), k, hqtfDummyCodes)
}

// AmplifierGroup resolves an amplifier group by code or ID.
func (c *Conversion) AmplifierGroup(k Key) *taxonomy.AmplifierGroup {
	return find(c, diagnostic.CategoryAmplifierGroup, c.store.AmplifierGroups(), k, nil)
}

// AmplifierGroupOf returns the group owning a.
func (c *Conversion) AmplifierGroupOf(a *taxonomy.Amplifier) *taxonomy.AmplifierGroup {
	g, ok := c.store.AmplifierGroupOf(a)
	if !ok {
		c.miss(diagnostic.CategoryAmplifierGroup)
	}

	return g
}

// Amplifier resolves an amplifier within g. Legacy keys with a nil group
// search every amplifier, group by group.
func (c *Conversion) Amplifier(g *taxonomy.AmplifierGroup, k Key) *taxonomy.Amplifier {
	if g == nil && k.kind == keyLegacy {
		a, ok := match.FirstByLetter(c.store.AllAmplifiers(), amplifierCodes, k.legacy)
		if !ok {
			c.miss(diagnostic.CategoryAmplifier)
		}

		return a
	}

	return find(c, diagnostic.CategoryAmplifier, c.store.Amplifiers(g), k, amplifierCodes)
}

// Affiliation resolves an affiliation by ID or standard identity letter.
func (c *Conversion) Affiliation(k Key) *taxonomy.Affiliation {
	return find(c, diagnostic.CategoryAffiliation, c.store.Affiliations(), k, affiliationCodes)
}

// AffiliationOf resolves the affiliation of a context, dimension and
// standard identity.
func (c *Conversion) AffiliationOf(
	ctx *taxonomy.Context,
	dim *taxonomy.Dimension,
	si *taxonomy.StandardIdentity,
) *taxonomy.Affiliation {
	if ctx != nil && dim != nil && si != nil {
		if a, ok := c.store.AffiliationOf(ctx.ID, dim.ID, si.ID); ok {
			return a
		}
	}

	c.miss(diagnostic.CategoryAffiliation)

	return nil
}

// Entity resolves an entity within ss.
func (c *Conversion) Entity(ss *taxonomy.SymbolSet, k Key) *taxonomy.Entity {
	return find(c, diagnostic.CategoryEntity, c.store.Entities(ss), k, nil)
}

// EntityType resolves an entity type within e.
func (c *Conversion) EntityType(ss *taxonomy.SymbolSet, e *taxonomy.Entity, k Key) *taxonomy.EntityType {
	return find(c, diagnostic.CategoryEntityType, c.store.EntityTypes(ss, e), k, nil)
}

// EntitySubType resolves a subtype of et. When et is found but does not own
// the subtype, the special subtypes of ss are tried for both code and ID keys.
func (c *Conversion) EntitySubType(ss *taxonomy.SymbolSet, et *taxonomy.EntityType, k Key) *taxonomy.EntitySubType {
	if et == nil {
		c.miss(diagnostic.CategoryEntitySubType)
		return nil
	}

	if st, ok := lookup(c.store.EntitySubTypes(ss, et), k, nil); ok {
		return st
	}

	return find(c, diagnostic.CategoryEntitySubType, c.store.SpecialEntitySubTypes(ss), k, nil)
}

// ModifierOne resolves a sector one modifier of ss. The ID "NA" also
// matches the modifier coded 00.
func (c *Conversion) ModifierOne(ss *taxonomy.SymbolSet, k Key) *taxonomy.Modifier {
	return modifier(c, diagnostic.CategoryModifierOne, c.store.SectorOneModifiers(ss), k)
}

// ModifierTwo resolves a sector two modifier of ss. The ID "NA" also
// matches the modifier coded 00.
func (c *Conversion) ModifierTwo(ss *taxonomy.SymbolSet, k Key) *taxonomy.Modifier {
	return modifier(c, diagnostic.CategoryModifierTwo, c.store.SectorTwoModifiers(ss), k)
}

// modifier looks k up in ix. A "NA" ID key is tried as an ID first, then
// as code 00.
func modifier(c *Conversion, cat diagnostic.Category, ix *taxonomy.Index[*taxonomy.Modifier], k Key) *taxonomy.Modifier {
	if k.kind == keyID && k.id == common.NotApplicable {
		if m, ok := ix.ID(k.id); ok {
			return m
		}

		k = ByCode(0)
	}

	return find(c, cat, ix, k, nil)
}

// LegacySymbol returns the legacy symbol of ss matching q.
func (c *Conversion) LegacySymbol(ss *taxonomy.SymbolSet, q match.FunctionQuery) *taxonomy.LegacySymbol {
	if ss != nil {
		if ls, ok := match.FindByFunction(ss.LegacySymbols, q); ok {
			return ls
		}
	}

	c.miss(diagnostic.CategoryLegacySymbol)

	return nil
}

// SymbolSetByLegacyCode returns the first symbol set of dim owning a legacy
// symbol that matches q.
func (c *Conversion) SymbolSetByLegacyCode(dim *taxonomy.Dimension, q match.FunctionQuery) *taxonomy.SymbolSet {
	ss, ok := c.symbolSetOwning(dim, q)
	if !ok {
		c.miss(diagnostic.CategorySymbolSet)
	}

	return ss
}

func (c *Conversion) symbolSetOwning(dim *taxonomy.Dimension, q match.FunctionQuery) (*taxonomy.SymbolSet, bool) {
	return common.FirstWhere(c.store.SymbolSetsOf(dim), func(ss *taxonomy.SymbolSet) bool {
		_, ok := match.FindByFunction(ss.LegacySymbols, q)
		return ok
	})
}

func dimensionCodes(n *taxonomy.Dimension) []taxonomy.LegacyLetterCode    { return n.LegacyCodes }
func symbolSetCodes(n *taxonomy.SymbolSet) []taxonomy.LegacyLetterCode    { return n.LegacyCodingSchemes }
func statusCodes(n *taxonomy.Status) []taxonomy.LegacyLetterCode          { return n.LegacyCodes }
func hqtfDummyCodes(n *taxonomy.HQTFDummy) []taxonomy.LegacyLetterCode    { return n.LegacyCodes }
func amplifierCodes(n *taxonomy.Amplifier) []taxonomy.LegacyLetterCode    { return n.LegacyCodes }
func affiliationCodes(n *taxonomy.Affiliation) []taxonomy.LegacyLetterCode { return n.LegacyCodes }
