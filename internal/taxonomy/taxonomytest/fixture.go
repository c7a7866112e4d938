// Package taxonomytest provides a small, consistent symbology library for tests.
package taxonomytest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

// Node identifiers used by the fixture.
const (
	VersionD = "2525D"

	ContextReality  = "REALITY"
	ContextExercise = "EXERCISE"

	DimensionAir  = "AIR_DIMENSION"
	DimensionLand = "LAND_DIMENSION"

	IdentityUnknown = "UNKNOWN"
	IdentityFriend  = "FRIEND"
	IdentityHostile = "HOSTILE"

	StatusPresent = "PRESENT"
	StatusPlanned = "PLANNED"

	HQTFDummyNone = "NOT_APPLICABLE"
	HQTFDummyHQ   = "HEADQUARTERS"

	AmplifierGroupNone     = "AMPLIFIER_GROUP_NONE"
	AmplifierGroupEchelon  = "ECHELON_BRIGADE_BELOW"
	AmplifierNone          = "AMPLIFIER_NONE"
	AmplifierTeam          = "TEAM_CREW"
	AmplifierSquad         = "SQUAD"
	SymbolSetAir           = "AIR"
	SymbolSetLandUnit      = "LAND_UNIT"
	EntityMilitaryAir      = "MILITARY"
	EntityTypeFixedWing    = "FIXED_WING"
	EntityManeuver         = "MOVEMENT_AND_MANEUVER"
	EntityTypeArmor        = "ARMOR"
	EntityTypeInfantry     = "INFANTRY"
	SubTypeArmorTracked    = "ARMOR_TRACKED"
	SubTypeArmorWheeled    = "ARMOR_WHEELED"
	SubTypeHeadquarters    = "HEADQUARTERS_ELEMENT"
	ModifierOneNone        = "LAND_UNIT_M1_NONE"
	ModifierOneAttack      = "LAND_UNIT_M1_ATTACK"
	ModifierTwoNone        = "LAND_UNIT_M2_NONE"
	ModifierTwoAirborne    = "LAND_UNIT_M2_AIRBORNE"
	LegacyArmor            = "LEGACY_ARMOR"
	LegacyArmorTrackedAbn  = "LEGACY_ARMOR_TRACKED_AIRBORNE"
	LegacyArmorWheeled     = "LEGACY_ARMOR_WHEELED"
	LegacyInfantry         = "LEGACY_INFANTRY"
	LegacyInfantryRetired  = "LEGACY_INFANTRY_NAVAL"
	LegacyFixedWing        = "LEGACY_FIXED_WING"
	AffiliationLandFriend  = "REALITY_LAND_FRIEND"
	AffiliationLandHostile = "REALITY_LAND_HOSTILE"
	AffiliationAirFriend   = "REALITY_AIR_FRIEND"
	AffiliationLandExFrd   = "EXERCISE_LAND_FRIEND"
)

func pair(one, two uint8) sidc.Pair {
	return sidc.Pair{One: one, Two: two}
}

func letter(v string) taxonomy.LegacyLetterCode {
	return taxonomy.LegacyLetterCode{Value: v}
}

// Library returns a fresh fixture library. Each call builds new nodes, so
// tests may modify the result freely.
func Library() *taxonomy.Library {
	return &taxonomy.Library{
		Versions: []*taxonomy.Version{
			{ID: VersionD, Label: "2525D", Code: pair(1, 0)},
		},
		Contexts: []*taxonomy.Context{
			{ID: ContextReality, Label: "Reality", Code: 0},
			{ID: ContextExercise, Label: "Exercise", Code: 1},
		},
		Dimensions: []*taxonomy.Dimension{
			{
				ID: DimensionAir, Label: "Air",
				SymbolSets:  []taxonomy.SymbolSetRef{{ID: SymbolSetAir, Code: pair(0, 1)}},
				LegacyCodes: []taxonomy.LegacyLetterCode{letter("A")},
			},
			{
				ID: DimensionLand, Label: "Land Unit",
				SymbolSets:  []taxonomy.SymbolSetRef{{ID: SymbolSetLandUnit, Code: pair(1, 0)}},
				LegacyCodes: []taxonomy.LegacyLetterCode{{Value: "G", FirstFunctionLetter: "U"}},
			},
		},
		StandardIdentities: []*taxonomy.StandardIdentity{
			{ID: IdentityUnknown, Label: "Unknown", Code: 1},
			{ID: IdentityFriend, Label: "Friend", Code: 3},
			{ID: IdentityHostile, Label: "Hostile", Code: 6},
		},
		StandardIdentityGroups: []*taxonomy.StandardIdentityGroup{
			{ID: "UNKNOWN_GROUP", Label: "Unknown", StandardIdentityIDs: []string{IdentityUnknown}},
			{ID: "FRIEND_GROUP", Label: "Friend", StandardIdentityIDs: []string{IdentityFriend}},
			{ID: "HOSTILE_GROUP", Label: "Hostile", StandardIdentityIDs: []string{IdentityHostile}},
		},
		Statuses: []*taxonomy.Status{
			{ID: StatusPresent, Label: "Present", Code: 0, LegacyCodes: []taxonomy.LegacyLetterCode{letter("P")}},
			{ID: StatusPlanned, Label: "Planned", Code: 1, LegacyCodes: []taxonomy.LegacyLetterCode{letter("A")}},
		},
		HQTFDummies: []*taxonomy.HQTFDummy{
			{ID: HQTFDummyNone, Label: "Not Applicable", Code: 0, LegacyCodes: []taxonomy.LegacyLetterCode{letter("-")}},
			{ID: HQTFDummyHQ, Label: "Headquarters", Code: 2, LegacyCodes: []taxonomy.LegacyLetterCode{letter("A")}},
		},
		AmplifierGroups: []*taxonomy.AmplifierGroup{
			{
				ID: AmplifierGroupNone, Label: "Unknown", Code: 0,
				Amplifiers: []*taxonomy.Amplifier{
					{ID: AmplifierNone, Label: "Unspecified", Code: 0, LegacyCodes: []taxonomy.LegacyLetterCode{letter("-")}},
				},
			},
			{
				ID: AmplifierGroupEchelon, Label: "Echelon at Brigade and Below", Code: 1,
				Amplifiers: []*taxonomy.Amplifier{
					{ID: AmplifierTeam, Label: "Team/Crew", Code: 1, LegacyCodes: []taxonomy.LegacyLetterCode{letter("A")}},
					{ID: AmplifierSquad, Label: "Squad", Code: 2, LegacyCodes: []taxonomy.LegacyLetterCode{letter("B")}},
				},
			},
		},
		Affiliations: []*taxonomy.Affiliation{
			{
				ID: AffiliationAirFriend, ContextID: ContextReality, DimensionID: DimensionAir, StandardIdentityID: IdentityFriend,
				LegacyCodes: []taxonomy.LegacyLetterCode{letter("F")},
			},
			{
				ID: AffiliationLandFriend, ContextID: ContextReality, DimensionID: DimensionLand, StandardIdentityID: IdentityFriend,
				LegacyCodes: []taxonomy.LegacyLetterCode{letter("F")},
			},
			{
				ID: AffiliationLandHostile, ContextID: ContextReality, DimensionID: DimensionLand, StandardIdentityID: IdentityHostile,
				LegacyCodes: []taxonomy.LegacyLetterCode{letter("H")},
			},
			{
				ID: AffiliationLandExFrd, ContextID: ContextExercise, DimensionID: DimensionLand, StandardIdentityID: IdentityFriend,
				LegacyCodes: []taxonomy.LegacyLetterCode{letter("D")},
			},
		},
		SymbolSets: []*taxonomy.SymbolSet{landUnit(), air()},
	}
}

func landUnit() *taxonomy.SymbolSet {
	return &taxonomy.SymbolSet{
		ID: SymbolSetLandUnit, Label: "Land Unit", Code: pair(1, 0), DimensionID: DimensionLand,
		Entities: []*taxonomy.Entity{
			{
				ID: EntityManeuver, Label: "Movement and Maneuver", Code: pair(1, 2),
				EntityTypes: []*taxonomy.EntityType{
					{
						ID: EntityTypeArmor, Label: "Armor", Code: pair(0, 5),
						EntitySubTypes: []*taxonomy.EntitySubType{
							{ID: SubTypeArmorTracked, Label: "Armored Tracked", Code: pair(0, 1)},
							{ID: SubTypeArmorWheeled, Label: "Armored Wheeled", Code: pair(0, 2)},
						},
					},
					{ID: EntityTypeInfantry, Label: "Infantry", Code: pair(1, 1)},
				},
			},
		},
		SpecialEntitySubTypes: []*taxonomy.EntitySubType{
			{ID: SubTypeHeadquarters, Label: "Headquarters Element", Code: pair(9, 5)},
		},
		SectorOneModifiers: []*taxonomy.Modifier{
			{ID: ModifierOneNone, Label: "Unspecified", Code: pair(0, 0)},
			{ID: ModifierOneAttack, Label: "Attack", Category: "Capability", Code: pair(0, 1)},
		},
		SectorTwoModifiers: []*taxonomy.Modifier{
			{ID: ModifierTwoNone, Label: "Unspecified", Code: pair(0, 0)},
			{ID: ModifierTwoAirborne, Label: "Airborne", Category: "Mobility", Code: pair(0, 1)},
		},
		LegacySymbols: []*taxonomy.LegacySymbol{
			{
				ID: LegacyArmor, Label: "Armor",
				FunctionCodes: []taxonomy.LegacyFunctionCode{{Value: "UCA---"}},
				Entity:        taxonomy.Present(EntityManeuver),
				EntityType:    taxonomy.Present(EntityTypeArmor),
			},
			{
				ID: LegacyArmorTrackedAbn, Label: "Armor Tracked Airborne",
				FunctionCodes: []taxonomy.LegacyFunctionCode{{Value: "UCATA-"}},
				Entity:        taxonomy.Present(EntityManeuver),
				EntityType:    taxonomy.Present(EntityTypeArmor),
				EntitySubType: taxonomy.Present(SubTypeArmorTracked),
				ModifierTwo:   taxonomy.Present(ModifierTwoAirborne),
			},
			{
				ID: LegacyArmorWheeled, Label: "Armor Wheeled",
				FunctionCodes: []taxonomy.LegacyFunctionCode{{Value: "UCAW--"}},
				Entity:        taxonomy.Present(EntityManeuver),
				EntityType:    taxonomy.Present(EntityTypeArmor),
				EntitySubType: taxonomy.Present(SubTypeArmorWheeled),
			},
			{
				ID: LegacyInfantry, Label: "Infantry",
				FunctionCodes: []taxonomy.LegacyFunctionCode{{Value: "UCI---"}},
				Entity:        taxonomy.Present(EntityManeuver),
				EntityType:    taxonomy.Present(EntityTypeInfantry),
			},
			{
				ID: LegacyInfantryRetired, Label: "Infantry Naval",
				FunctionCodes: []taxonomy.LegacyFunctionCode{{Value: "UCIN--"}},
				Retired:       true,
			},
		},
		LegacyCodingSchemes: []taxonomy.LegacyLetterCode{letter("S")},
	}
}

func air() *taxonomy.SymbolSet {
	return &taxonomy.SymbolSet{
		ID: SymbolSetAir, Label: "Air", Code: pair(0, 1), DimensionID: DimensionAir,
		Entities: []*taxonomy.Entity{
			{
				ID: EntityMilitaryAir, Label: "Military", Code: pair(1, 1),
				EntityTypes: []*taxonomy.EntityType{
					{ID: EntityTypeFixedWing, Label: "Fixed Wing", Code: pair(0, 1)},
				},
			},
		},
		LegacySymbols: []*taxonomy.LegacySymbol{
			{
				ID: LegacyFixedWing, Label: "Fixed Wing",
				FunctionCodes: []taxonomy.LegacyFunctionCode{{Value: "MF----"}},
				Entity:        taxonomy.Present(EntityMilitaryAir),
				EntityType:    taxonomy.Present(EntityTypeFixedWing),
			},
		},
		LegacyCodingSchemes: []taxonomy.LegacyLetterCode{letter("S")},
	}
}

// Store builds a store over Library and fails the test on error.
func Store(t testing.TB) *taxonomy.Store {
	t.Helper()

	s, err := taxonomy.NewStore(Library())
	require.NoError(t, err)

	return s
}
