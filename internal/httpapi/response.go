package httpapi

import (
	"encoding/json"
	"net/http"

	"sidc-converter/internal/diagnostic"
	"sidc-converter/internal/resolve"
	"sidc-converter/internal/symbol"
)

// SymbolResponse is the JSON body returned for a conversion.
type SymbolResponse struct {
	PartA      string        `json:"part_a"`
	PartB      string        `json:"part_b"`
	LegacySIDC string        `json:"legacy_sidc,omitempty"`
	Standard   string        `json:"standard,omitempty"`
	Status     symbol.Status `json:"status"`
	Nodes      Nodes         `json:"nodes"`
	Mask       uint32        `json:"mask"`
	Reasons    []string      `json:"reasons"`
}

// Nodes lists the IDs of the resolved taxonomy nodes; unresolved nodes are
// omitted.
type Nodes struct {
	Version               string `json:"version,omitempty"`
	Context               string `json:"context,omitempty"`
	StandardIdentity      string `json:"standard_identity,omitempty"`
	StandardIdentityGroup string `json:"standard_identity_group,omitempty"`
	Dimension             string `json:"dimension,omitempty"`
	SymbolSet             string `json:"symbol_set,omitempty"`
	Status                string `json:"status,omitempty"`
	HQTFDummy             string `json:"hqtf_dummy,omitempty"`
	AmplifierGroup        string `json:"amplifier_group,omitempty"`
	Amplifier             string `json:"amplifier,omitempty"`
	Affiliation           string `json:"affiliation,omitempty"`
	Entity                string `json:"entity,omitempty"`
	EntityType            string `json:"entity_type,omitempty"`
	EntitySubType         string `json:"entity_subtype,omitempty"`
	ModifierOne           string `json:"modifier_one,omitempty"`
	ModifierTwo           string `json:"modifier_two,omitempty"`
	LegacySymbol          string `json:"legacy_symbol,omitempty"`
}

// ErrorResponse is the JSON body returned for refused requests.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Detail  string   `json:"detail"`
	Mask    uint32   `json:"mask,omitempty"`
	Reasons []string `json:"reasons,omitempty"`
}

// NewSymbolResponse renders sym.
func NewSymbolResponse(sym *symbol.Symbol) SymbolResponse {
	report := sym.Report()
	a, b := sym.SIDC.Strings()

	return SymbolResponse{
		PartA:      a,
		PartB:      b,
		LegacySIDC: sym.LegacySIDC.String(),
		Standard:   sym.Standard,
		Status:     sym.Status,
		Nodes:      NodesOf(sym.Nodes),
		Mask:       uint32(report.Mask),
		Reasons:    reasons(report),
	}
}

// NodesOf collects the node IDs of r.
func NodesOf(r resolve.Result) Nodes {
	var n Nodes

	if r.Version != nil {
		n.Version = r.Version.ID
	}

	if r.Context != nil {
		n.Context = r.Context.ID
	}

	if r.StandardIdentity != nil {
		n.StandardIdentity = r.StandardIdentity.ID
	}

	if r.StandardIdentityGroup != nil {
		n.StandardIdentityGroup = r.StandardIdentityGroup.ID
	}

	if r.Dimension != nil {
		n.Dimension = r.Dimension.ID
	}

	if r.SymbolSet != nil {
		n.SymbolSet = r.SymbolSet.ID
	}

	if r.Status != nil {
		n.Status = r.Status.ID
	}

	if r.HQTFDummy != nil {
		n.HQTFDummy = r.HQTFDummy.ID
	}

	if r.AmplifierGroup != nil {
		n.AmplifierGroup = r.AmplifierGroup.ID
	}

	if r.Amplifier != nil {
		n.Amplifier = r.Amplifier.ID
	}

	if r.Affiliation != nil {
		n.Affiliation = r.Affiliation.ID
	}

	if r.Entity != nil {
		n.Entity = r.Entity.ID
	}

	if r.EntityType != nil {
		n.EntityType = r.EntityType.ID
	}

	if r.EntitySubType != nil {
		n.EntitySubType = r.EntitySubType.ID
	}

	if r.ModifierOne != nil {
		n.ModifierOne = r.ModifierOne.ID
	}

	if r.ModifierTwo != nil {
		n.ModifierTwo = r.ModifierTwo.ID
	}

	if r.LegacySymbol != nil {
		n.LegacySymbol = r.LegacySymbol.ID
	}

	return n
}

func reasons(r diagnostic.Report) []string {
	out := r.Reasons()
	if out == nil {
		return []string{}
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, errCode, detail string) {
	writeJSON(w, status, ErrorResponse{Error: errCode, Detail: detail})
}
