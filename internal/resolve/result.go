package resolve

import (
	"strings"

	"sidc-converter/internal/diagnostic"
	"sidc-converter/internal/match"
	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

// Result is the outcome of one compound resolution. Nil nodes were either
// not requested (zero codes) or not found; Mask tells which.
type Result struct {
	Version               *taxonomy.Version
	Context               *taxonomy.Context
	StandardIdentity      *taxonomy.StandardIdentity
	StandardIdentityGroup *taxonomy.StandardIdentityGroup
	Dimension             *taxonomy.Dimension
	SymbolSet             *taxonomy.SymbolSet
	Status                *taxonomy.Status
	HQTFDummy             *taxonomy.HQTFDummy
	AmplifierGroup        *taxonomy.AmplifierGroup
	Amplifier             *taxonomy.Amplifier
	Affiliation           *taxonomy.Affiliation
	Entity                *taxonomy.Entity
	EntityType            *taxonomy.EntityType
	EntitySubType         *taxonomy.EntitySubType
	ModifierOne           *taxonomy.Modifier
	ModifierTwo           *taxonomy.Modifier
	// LegacySymbol is the 2525C equivalent, if one exists.
	LegacySymbol *taxonomy.LegacySymbol

	Report diagnostic.Report
}

// symbolSetScoped lists the categories that cannot resolve without a symbol set.
const symbolSetScoped = diagnostic.CategoryEntity |
	diagnostic.CategoryEntityType |
	diagnostic.CategoryEntitySubType |
	diagnostic.CategoryModifierOne |
	diagnostic.CategoryModifierTwo |
	diagnostic.CategoryLegacySymbol

// Resolve resolves every field of a 2525D code. Zero entity, entity type,
// subtype and modifier codes mean "unspecified" and are not looked up, unless
// the symbol set itself is missing, in which case every dependent category
// is reported.
//
// The legacy equivalent is searched among current (not retired) legacy
// symbols without touching the mask: a 2525D symbol without a 2525C
// counterpart is not a failure.
func (e *Engine) Resolve(s sidc.SIDC) Result {
	c := e.Begin()
	f := s.Fields()

	var r Result

	r.Version = c.Version(ByPair(f.Version))
	r.Context = c.Context(ByCode(uint16(f.Context)))
	r.StandardIdentity = c.StandardIdentity(ByCode(uint16(f.StandardIdentity)))
	r.StandardIdentityGroup = c.StandardIdentityGroupOf(r.StandardIdentity)
	r.SymbolSet = c.SymbolSet(ByPair(f.SymbolSet))
	r.Status = c.Status(ByCode(uint16(f.Status)))
	r.HQTFDummy = c.HQTFDummy(ByCode(uint16(f.HQTFDummy)))
	r.AmplifierGroup = c.AmplifierGroup(ByCode(uint16(f.AmplifierGroup)))
	r.Amplifier = c.Amplifier(r.AmplifierGroup, ByCode(uint16(f.Amplifier)))

	if r.SymbolSet == nil {
		c.miss(symbolSetScoped)
		c.miss(diagnostic.CategoryDimension)
		c.miss(diagnostic.CategoryAffiliation)
		r.Report = c.Report(s.String())

		return r
	}

	r.Dimension = c.DimensionBySymbolSet(r.SymbolSet)
	r.Affiliation = c.AffiliationOf(r.Context, r.Dimension, r.StandardIdentity)

	if !f.Entity.IsZero() {
		r.Entity = c.Entity(r.SymbolSet, ByPair(f.Entity))
	}

	if !f.EntityType.IsZero() {
		r.EntityType = c.EntityType(r.SymbolSet, r.Entity, ByPair(f.EntityType))
	}

	if !f.EntitySubType.IsZero() {
		r.EntitySubType = c.EntitySubType(r.SymbolSet, r.EntityType, ByPair(f.EntitySubType))
	}

	if !f.ModifierOne.IsZero() {
		r.ModifierOne = c.ModifierOne(r.SymbolSet, ByPair(f.ModifierOne))
	}

	if !f.ModifierTwo.IsZero() {
		r.ModifierTwo = c.ModifierTwo(r.SymbolSet, ByPair(f.ModifierTwo))
	}

	r.LegacySymbol, _ = match.FindExact(e.store.CurrentLegacySymbols(r.SymbolSet), r.Target())
	r.Report = c.Report(s.String())

	return r
}

// ResolveLegacy resolves a 15-character legacy code for standard. The
// legacy symbol decides the symbol set and the entity hierarchy; the
// remaining letters are resolved independently.
func (e *Engine) ResolveLegacy(standard string, code sidc.LegacyCode) Result {
	c := e.Begin()
	standard = strings.ToUpper(standard)

	var r Result

	r.Version = c.LatestVersion()
	r.LegacySymbol, r.Dimension, r.SymbolSet = c.LegacySymbolByCode(standard, code)

	r.Affiliation = c.AffiliationByLegacyCode(code.StandardIdentity(),
		match.LetterQueryFor(standard, code, code.Dimension()))
	if r.Affiliation != nil {
		r.Context = c.Context(ByID(r.Affiliation.ContextID))
		r.StandardIdentity = c.StandardIdentity(ByID(r.Affiliation.StandardIdentityID))
		r.StandardIdentityGroup = c.StandardIdentityGroupOf(r.StandardIdentity)
	}

	r.Status = c.Status(ByLegacy(match.LetterQueryFor(standard, code, code.Status())))
	r.HQTFDummy = c.HQTFDummyByLegacyCode(standard, code.HQTFDummy())

	r.Amplifier = c.AmplifierByLegacyCode(match.LetterQueryFor(standard, code, code.Amplifier()))
	if r.Amplifier != nil {
		r.AmplifierGroup = c.AmplifierGroupOf(r.Amplifier)
	}

	if ls := r.LegacySymbol; ls != nil && !ls.Retired {
		ss := r.SymbolSet

		if id, ok := ls.Entity.ID(); ok {
			r.Entity = c.Entity(ss, ByID(id))
		}

		if id, ok := ls.EntityType.ID(); ok {
			r.EntityType = c.EntityType(ss, r.Entity, ByID(id))
		}

		if id, ok := ls.EntitySubType.ID(); ok {
			r.EntitySubType = c.EntitySubType(ss, r.EntityType, ByID(id))
		}

		if id, ok := ls.ModifierOne.ID(); ok {
			r.ModifierOne = c.ModifierOne(ss, ByID(id))
		}

		if id, ok := ls.ModifierTwo.ID(); ok {
			r.ModifierTwo = c.ModifierTwo(ss, ByID(id))
		}
	}

	r.Report = c.Report(standard + ":" + code.String())

	return r
}

// Mask returns the diagnostic mask.
func (r Result) Mask() diagnostic.Mask {
	return r.Report.Mask
}

// Target returns the resolved entity hierarchy as match slots.
func (r Result) Target() match.Target {
	return match.NewTarget(r.Entity, r.EntityType, r.EntitySubType, r.ModifierOne, r.ModifierTwo)
}

// IsRetired reports whether the resolved legacy symbol was withdrawn.
func (r Result) IsRetired() bool {
	return r.LegacySymbol != nil && r.LegacySymbol.Retired
}

// SIDC composes a 2525D code from the resolved nodes. A retired legacy
// symbol yields sidc.Retired; a missing version, context, standard identity,
// symbol set, status or HQ/TF/dummy yields sidc.Invalid. Missing amplifier
// and entity nodes compose as zero.
func (r Result) SIDC() sidc.SIDC {
	if r.IsRetired() {
		return sidc.Retired
	}

	if r.Version == nil || r.Context == nil || r.StandardIdentity == nil ||
		r.SymbolSet == nil || r.Status == nil || r.HQTFDummy == nil {
		return sidc.Invalid
	}

	f := sidc.Fields{
		Version:          r.Version.Code,
		Context:          r.Context.Code,
		StandardIdentity: r.StandardIdentity.Code,
		SymbolSet:        r.SymbolSet.Code,
		Status:           r.Status.Code,
		HQTFDummy:        r.HQTFDummy.Code,
	}

	if r.AmplifierGroup != nil && r.Amplifier != nil {
		f.AmplifierGroup = r.AmplifierGroup.Code
		f.Amplifier = r.Amplifier.Code
	}

	if r.Entity != nil {
		f.Entity = r.Entity.Code
	}

	if r.EntityType != nil {
		f.EntityType = r.EntityType.Code
	}

	if r.EntitySubType != nil {
		f.EntitySubType = r.EntitySubType.Code
	}

	if r.ModifierOne != nil {
		f.ModifierOne = r.ModifierOne.Code
	}

	if r.ModifierTwo != nil {
		f.ModifierTwo = r.ModifierTwo.Code
	}

	return sidc.Compose(f)
}
