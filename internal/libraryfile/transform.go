package libraryfile

import (
	"strings"

	"sidc-converter/internal/common"
	"sidc-converter/internal/taxonomy"
)

// Library converts doc into a taxonomy library. It does not validate
// cross-references; taxonomy.NewStore does.
func (doc *Document) Library() *taxonomy.Library {
	lib := &taxonomy.Library{}

	for _, v := range doc.Versions {
		lib.Versions = append(lib.Versions, &taxonomy.Version{ID: v.ID, Label: v.Label, Code: v.Code.Pair()})
	}

	for _, c := range doc.Contexts {
		lib.Contexts = append(lib.Contexts, &taxonomy.Context{ID: c.ID, Label: c.Label, Code: c.Code})
	}

	for _, d := range doc.Dimensions {
		dim := &taxonomy.Dimension{ID: d.ID, Label: d.Label, LegacyCodes: letters(d.Legacy)}
		for _, ref := range d.SymbolSets {
			dim.SymbolSets = append(dim.SymbolSets, taxonomy.SymbolSetRef{ID: ref.ID, Code: ref.Code.Pair()})
		}

		lib.Dimensions = append(lib.Dimensions, dim)
	}

	for _, si := range doc.StandardIdentities {
		lib.StandardIdentities = append(lib.StandardIdentities,
			&taxonomy.StandardIdentity{ID: si.ID, Label: si.Label, Code: si.Code})
	}

	for _, g := range doc.StandardIdentityGroups {
		lib.StandardIdentityGroups = append(lib.StandardIdentityGroups, &taxonomy.StandardIdentityGroup{
			ID:                  g.ID,
			Label:               g.Label,
			StandardIdentityIDs: append([]string(nil), g.StandardIdentities...),
		})
	}

	for _, s := range doc.Statuses {
		lib.Statuses = append(lib.Statuses,
			&taxonomy.Status{ID: s.ID, Label: s.Label, Code: s.Code, LegacyCodes: letters(s.Legacy)})
	}

	for _, h := range doc.HQTFDummies {
		lib.HQTFDummies = append(lib.HQTFDummies,
			&taxonomy.HQTFDummy{ID: h.ID, Label: h.Label, Code: h.Code, LegacyCodes: letters(h.Legacy)})
	}

	for _, g := range doc.AmplifierGroups {
		group := &taxonomy.AmplifierGroup{ID: g.ID, Label: g.Label, Code: g.Code}
		for _, a := range g.Amplifiers {
			group.Amplifiers = append(group.Amplifiers,
				&taxonomy.Amplifier{ID: a.ID, Label: a.Label, Code: a.Code, LegacyCodes: letters(a.Legacy)})
		}

		lib.AmplifierGroups = append(lib.AmplifierGroups, group)
	}

	for _, a := range doc.Affiliations {
		lib.Affiliations = append(lib.Affiliations, &taxonomy.Affiliation{
			ID:                 a.ID,
			ContextID:          a.Context,
			DimensionID:        a.Dimension,
			StandardIdentityID: a.StandardIdentity,
			LegacyCodes:        letters(a.Legacy),
		})
	}

	for _, ss := range doc.SymbolSets {
		lib.SymbolSets = append(lib.SymbolSets, ss.symbolSet())
	}

	return lib
}

func (d SymbolSetDoc) symbolSet() *taxonomy.SymbolSet {
	ss := &taxonomy.SymbolSet{
		ID:                  d.ID,
		Label:               d.Label,
		Code:                d.Code.Pair(),
		DimensionID:         d.Dimension,
		LegacyCodingSchemes: letters(d.LegacyCodingSchemes),
	}

	for _, e := range d.Entities {
		entity := &taxonomy.Entity{ID: e.ID, Label: e.Label, Code: e.Code.Pair()}

		for _, et := range e.EntityTypes {
			entityType := &taxonomy.EntityType{ID: et.ID, Label: et.Label, Code: et.Code.Pair()}
			entityType.EntitySubTypes = subTypes(et.EntitySubTypes)
			entity.EntityTypes = append(entity.EntityTypes, entityType)
		}

		ss.Entities = append(ss.Entities, entity)
	}

	ss.SpecialEntitySubTypes = subTypes(d.SpecialEntitySubTypes)
	ss.SectorOneModifiers = modifiers(d.SectorOneModifiers)
	ss.SectorTwoModifiers = modifiers(d.SectorTwoModifiers)

	for _, ls := range d.LegacySymbols {
		ss.LegacySymbols = append(ss.LegacySymbols, ls.legacySymbol())
	}

	return ss
}

func (d LegacySymbolDoc) legacySymbol() *taxonomy.LegacySymbol {
	ls := &taxonomy.LegacySymbol{
		ID:            d.ID,
		Label:         d.Label,
		Entity:        slot(d.Entity),
		EntityType:    slot(d.EntityType),
		EntitySubType: slot(d.EntitySubType),
		ModifierOne:   slot(d.ModifierOne),
		ModifierTwo:   slot(d.ModifierTwo),
		Retired:       d.Retired,
	}

	for _, fc := range d.Functions {
		ls.FunctionCodes = append(ls.FunctionCodes, taxonomy.LegacyFunctionCode{
			Value:             strings.ToUpper(fc.Value),
			Standard:          fc.Standard,
			SchemaOverride:    fc.Schema,
			DimensionOverride: fc.Dimension,
			HQTFFDOverride:    fc.HQTFDummy,
			AmplifierOverride: fc.Amplifier,
			TailOverride:      fc.Tail,
		})
	}

	return ls
}

// slot maps an empty or "NA" reference to an absent slot.
func slot(id string) taxonomy.Slot {
	id = strings.TrimSpace(id)
	if id == "" || strings.EqualFold(id, common.NotApplicable) {
		return taxonomy.Absent()
	}

	return taxonomy.Present(id)
}

func letters(docs []LetterDoc) []taxonomy.LegacyLetterCode {
	if common.IsEmpty(docs) {
		return nil
	}

	out := make([]taxonomy.LegacyLetterCode, 0, len(docs))
	for _, d := range docs {
		out = append(out, taxonomy.LegacyLetterCode{
			Value:               d.Value,
			Standard:            d.Standard,
			FirstFunctionLetter: d.FirstFunctionLetter,
			CodingSchemeLetter:  d.CodingSchemeLetter,
		})
	}

	return out
}

func subTypes(docs []NodeDoc) []*taxonomy.EntitySubType {
	var out []*taxonomy.EntitySubType
	for _, d := range docs {
		out = append(out, &taxonomy.EntitySubType{ID: d.ID, Label: d.Label, Code: d.Code.Pair()})
	}

	return out
}

func modifiers(docs []ModifierDoc) []*taxonomy.Modifier {
	var out []*taxonomy.Modifier
	for _, d := range docs {
		out = append(out, &taxonomy.Modifier{ID: d.ID, Label: d.Label, Category: d.Category, Code: d.Code.Pair()})
	}

	return out
}
