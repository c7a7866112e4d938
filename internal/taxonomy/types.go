package taxonomy

import "sidc-converter/internal/sidc"

// Library is the materialized symbology taxonomy.
type Library struct {
	Versions               []*Version
	Contexts               []*Context
	Dimensions             []*Dimension
	StandardIdentities     []*StandardIdentity
	StandardIdentityGroups []*StandardIdentityGroup
	Statuses               []*Status
	HQTFDummies            []*HQTFDummy
	AmplifierGroups        []*AmplifierGroup
	Affiliations           []*Affiliation
	SymbolSets             []*SymbolSet
}

// Version is a 2525 revision, e.g. "10" for 2525D.
type Version struct {
	ID    string
	Label string
	Code  sidc.Pair
}

// Context is the reality/exercise/simulation context.
type Context struct {
	ID    string
	Label string
	Code  uint8
}

// Dimension groups symbol sets by operating domain (air, land, ...).
type Dimension struct {
	ID          string
	Label       string
	SymbolSets  []SymbolSetRef
	LegacyCodes []LegacyLetterCode
}

// SymbolSetRef links a dimension to one of its symbol sets.
type SymbolSetRef struct {
	ID   string
	Code sidc.Pair
}

// StandardIdentity is the friend/hostile/... identity.
type StandardIdentity struct {
	ID    string
	Label string
	Code  uint8
}

// StandardIdentityGroup clusters standard identities that share a frame.
type StandardIdentityGroup struct {
	ID                  string
	Label               string
	StandardIdentityIDs []string
}

// Status is the present/planned/... status.
type Status struct {
	ID          string
	Label       string
	Code        uint8
	LegacyCodes []LegacyLetterCode
}

// HQTFDummy is the headquarters/task force/feint-dummy indicator.
type HQTFDummy struct {
	ID          string
	Label       string
	Code        uint8
	LegacyCodes []LegacyLetterCode
}

// AmplifierGroup owns the amplifiers sharing the group digit.
type AmplifierGroup struct {
	ID         string
	Label      string
	Code       uint8
	Amplifiers []*Amplifier
}

// Amplifier is an echelon, mobility or towed-array amplifier.
type Amplifier struct {
	ID          string
	Label       string
	Code        uint8
	LegacyCodes []LegacyLetterCode
}

// Affiliation is one Context x Dimension x StandardIdentity combination.
// Its legacy codes hold the 2525C standard identity letters.
type Affiliation struct {
	ID                 string
	ContextID          string
	DimensionID        string
	StandardIdentityID string
	LegacyCodes        []LegacyLetterCode
}

// SymbolSet owns the entity hierarchy and modifiers for one symbol set code.
type SymbolSet struct {
	ID                    string
	Label                 string
	Code                  sidc.Pair
	DimensionID           string
	Entities              []*Entity
	SpecialEntitySubTypes []*EntitySubType
	SectorOneModifiers    []*Modifier
	SectorTwoModifiers    []*Modifier
	LegacySymbols         []*LegacySymbol
	LegacyCodingSchemes   []LegacyLetterCode
}

// Entity is the first level of a symbol set's hierarchy.
type Entity struct {
	ID          string
	Label       string
	Code        sidc.Pair
	EntityTypes []*EntityType
}

// EntityType is the second level of a symbol set's hierarchy.
type EntityType struct {
	ID             string
	Label          string
	Code           sidc.Pair
	EntitySubTypes []*EntitySubType
}

// EntitySubType is the third level of a symbol set's hierarchy.
type EntitySubType struct {
	ID    string
	Label string
	Code  sidc.Pair
}

// Modifier is a sector one or sector two modifier.
type Modifier struct {
	ID       string
	Label    string
	Category string
	Code     sidc.Pair
}

// LegacySymbol maps 2525C function codes onto a 2525D node combination.
type LegacySymbol struct {
	ID            string
	Label         string
	FunctionCodes []LegacyFunctionCode
	Entity        Slot
	EntityType    Slot
	EntitySubType Slot
	ModifierOne   Slot
	ModifierTwo   Slot
	// Retired marks a 2525C symbol with no 2525D equivalent.
	Retired bool
}

// Slots returns the five match slots in entity, type, subtype, modifier one,
// modifier two order.
func (l *LegacySymbol) Slots() [5]Slot {
	return [5]Slot{l.Entity, l.EntityType, l.EntitySubType, l.ModifierOne, l.ModifierTwo}
}
