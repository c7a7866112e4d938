package libraryfile

// Document is the root of a YAML symbology library file.
type Document struct {
	// Name is a free-form label for the library, e.g. "JMSML 2525D".
	Name string `yaml:"name,omitempty"`

	Versions               []VersionDoc               `yaml:"versions" validate:"required,min=1,dive"`
	Contexts               []CodedDoc                 `yaml:"contexts" validate:"required,min=1,dive"`
	Dimensions             []DimensionDoc             `yaml:"dimensions" validate:"required,min=1,dive"`
	StandardIdentities     []CodedDoc                 `yaml:"standard_identities" validate:"required,min=1,dive"`
	StandardIdentityGroups []StandardIdentityGroupDoc `yaml:"standard_identity_groups,omitempty" validate:"dive"`
	Statuses               []LetteredDoc              `yaml:"statuses" validate:"required,min=1,dive"`
	HQTFDummies            []LetteredDoc              `yaml:"hqtf_dummies" validate:"required,min=1,dive"`
	AmplifierGroups        []AmplifierGroupDoc        `yaml:"amplifier_groups,omitempty" validate:"dive"`
	Affiliations           []AffiliationDoc           `yaml:"affiliations" validate:"required,min=1,dive"`
	SymbolSets             []SymbolSetDoc             `yaml:"symbol_sets" validate:"required,min=1,dive"`
}

// VersionDoc describes a 2525 revision.
type VersionDoc struct {
	ID    string `yaml:"id" validate:"required"`
	Label string `yaml:"label,omitempty"`
	Code  Code   `yaml:"code"`
}

// CodedDoc is a node with a single-digit code.
type CodedDoc struct {
	ID    string `yaml:"id" validate:"required"`
	Label string `yaml:"label,omitempty"`
	Code  uint8  `yaml:"code" validate:"lte=9"`
}

// LetteredDoc is a single-digit node carrying legacy letters.
type LetteredDoc struct {
	ID     string      `yaml:"id" validate:"required"`
	Label  string      `yaml:"label,omitempty"`
	Code   uint8       `yaml:"code" validate:"lte=9"`
	Legacy []LetterDoc `yaml:"legacy,omitempty" validate:"dive"`
}

// LetterDoc is one legacy letter with its qualifiers. Empty qualifiers match
// any legacy code.
type LetterDoc struct {
	Value               string `yaml:"value" validate:"len=1"`
	Standard            string `yaml:"standard,omitempty"`
	FirstFunctionLetter string `yaml:"first_function_letter,omitempty" validate:"omitempty,len=1"`
	CodingSchemeLetter  string `yaml:"coding_scheme_letter,omitempty" validate:"omitempty,len=1"`
}

// DimensionDoc groups symbol sets.
type DimensionDoc struct {
	ID         string      `yaml:"id" validate:"required"`
	Label      string      `yaml:"label,omitempty"`
	SymbolSets []RefDoc    `yaml:"symbol_sets,omitempty" validate:"dive"`
	Legacy     []LetterDoc `yaml:"legacy,omitempty" validate:"dive"`
}

// RefDoc references a node by ID and two-digit code.
type RefDoc struct {
	ID   string `yaml:"id" validate:"required"`
	Code Code   `yaml:"code"`
}

// StandardIdentityGroupDoc lists the standard identities of a group.
type StandardIdentityGroupDoc struct {
	ID                 string   `yaml:"id" validate:"required"`
	Label              string   `yaml:"label,omitempty"`
	StandardIdentities []string `yaml:"standard_identities" validate:"required,min=1,dive,required"`
}

// AmplifierGroupDoc owns amplifiers.
type AmplifierGroupDoc struct {
	ID         string        `yaml:"id" validate:"required"`
	Label      string        `yaml:"label,omitempty"`
	Code       uint8         `yaml:"code" validate:"lte=9"`
	Amplifiers []LetteredDoc `yaml:"amplifiers,omitempty" validate:"dive"`
}

// AffiliationDoc is one context, dimension and standard identity combination.
type AffiliationDoc struct {
	ID               string      `yaml:"id" validate:"required"`
	Context          string      `yaml:"context" validate:"required"`
	Dimension        string      `yaml:"dimension" validate:"required"`
	StandardIdentity string      `yaml:"standard_identity" validate:"required"`
	Legacy           []LetterDoc `yaml:"legacy,omitempty" validate:"dive"`
}

// SymbolSetDoc owns the entity hierarchy, modifiers and legacy symbols.
type SymbolSetDoc struct {
	ID                    string            `yaml:"id" validate:"required"`
	Label                 string            `yaml:"label,omitempty"`
	Code                  Code              `yaml:"code"`
	Dimension             string            `yaml:"dimension" validate:"required"`
	Entities              []EntityDoc       `yaml:"entities,omitempty" validate:"dive"`
	SpecialEntitySubTypes []NodeDoc         `yaml:"special_entity_subtypes,omitempty" validate:"dive"`
	SectorOneModifiers    []ModifierDoc     `yaml:"sector_one_modifiers,omitempty" validate:"dive"`
	SectorTwoModifiers    []ModifierDoc     `yaml:"sector_two_modifiers,omitempty" validate:"dive"`
	LegacySymbols         []LegacySymbolDoc `yaml:"legacy_symbols,omitempty" validate:"dive"`
	LegacyCodingSchemes   []LetterDoc       `yaml:"legacy_coding_schemes,omitempty" validate:"dive"`
}

// NodeDoc is a leaf of the entity hierarchy.
type NodeDoc struct {
	ID    string `yaml:"id" validate:"required"`
	Label string `yaml:"label,omitempty"`
	Code  Code   `yaml:"code"`
}

// EntityDoc is the first hierarchy level.
type EntityDoc struct {
	ID          string          `yaml:"id" validate:"required"`
	Label       string          `yaml:"label,omitempty"`
	Code        Code            `yaml:"code"`
	EntityTypes []EntityTypeDoc `yaml:"entity_types,omitempty" validate:"dive"`
}

// EntityTypeDoc is the second hierarchy level.
type EntityTypeDoc struct {
	ID             string    `yaml:"id" validate:"required"`
	Label          string    `yaml:"label,omitempty"`
	Code           Code      `yaml:"code"`
	EntitySubTypes []NodeDoc `yaml:"entity_subtypes,omitempty" validate:"dive"`
}

// ModifierDoc is a sector one or sector two modifier.
type ModifierDoc struct {
	ID       string `yaml:"id" validate:"required"`
	Label    string `yaml:"label,omitempty"`
	Category string `yaml:"category,omitempty"`
	Code     Code   `yaml:"code"`
}

// LegacySymbolDoc maps legacy function codes onto a node combination. Slot
// fields hold a node ID; empty or "NA" means absent.
type LegacySymbolDoc struct {
	ID            string            `yaml:"id" validate:"required"`
	Label         string            `yaml:"label,omitempty"`
	Functions     []FunctionCodeDoc `yaml:"functions" validate:"required,min=1,dive"`
	Entity        string            `yaml:"entity,omitempty"`
	EntityType    string            `yaml:"entity_type,omitempty"`
	EntitySubType string            `yaml:"entity_subtype,omitempty"`
	ModifierOne   string            `yaml:"modifier_one,omitempty"`
	ModifierTwo   string            `yaml:"modifier_two,omitempty"`
	Retired       bool              `yaml:"retired,omitempty"`
}

// FunctionCodeDoc is a six-letter legacy function code with its overrides.
type FunctionCodeDoc struct {
	Value     string `yaml:"value" validate:"len=6"`
	Standard  string `yaml:"standard,omitempty"`
	Schema    string `yaml:"schema,omitempty" validate:"omitempty,len=1"`
	Dimension string `yaml:"dimension,omitempty" validate:"omitempty,len=1"`
	HQTFDummy string `yaml:"hqtf_dummy,omitempty" validate:"omitempty,len=1"`
	Amplifier string `yaml:"amplifier,omitempty" validate:"omitempty,len=1"`
	Tail      string `yaml:"tail,omitempty" validate:"omitempty,len=3"`
}
