package match

import (
	"testing"

	"sidc-converter/internal/sidc"
	"sidc-converter/internal/taxonomy"
)

func mustLegacy(t *testing.T, s string) sidc.LegacyCode {
	t.Helper()

	c, err := sidc.ParseLegacy(s)
	if err != nil {
		t.Fatalf("ParseLegacy(%q): %v", s, err)
	}

	return c
}

func TestFunctionQueryFor(t *testing.T) {
	q := FunctionQueryFor("2525C", mustLegacy(t, "SFGPUCATA---USA"))

	want := FunctionQuery{
		Function:  "UCATA-",
		Standard:  "2525C",
		Schema:    "S",
		Dimension: "G",
		HQTFDummy: "-",
		Amplifier: "-",
		Tail:      "USA",
	}
	if q != want {
		t.Errorf("FunctionQueryFor() = %+v, want %+v", q, want)
	}
}

func TestFindByFunction(t *testing.T) {
	plain := &taxonomy.LegacySymbol{
		ID:            "plain",
		FunctionCodes: []taxonomy.LegacyFunctionCode{{Value: "UCI---"}},
	}
	hq := &taxonomy.LegacySymbol{
		ID:            "hq-override",
		FunctionCodes: []taxonomy.LegacyFunctionCode{{Value: "UCI---", HQTFFDOverride: "A"}},
	}
	tail := &taxonomy.LegacySymbol{
		ID:            "tail-override",
		FunctionCodes: []taxonomy.LegacyFunctionCode{{Value: "UCI---", TailOverride: "USA", SchemaOverride: "S"}},
	}

	tests := []struct {
		name    string
		symbols []*taxonomy.LegacySymbol
		code    string
		want    string
	}{
		{"wildcard first", []*taxonomy.LegacySymbol{plain, hq}, "SFGPUCI---A-USA", "plain"},
		{"override first and satisfied", []*taxonomy.LegacySymbol{hq, plain}, "SFGPUCI---A-USA", "hq-override"},
		{"override first but unsatisfied", []*taxonomy.LegacySymbol{hq, plain}, "SFGPUCI--------", "plain"},
		{"two overrides satisfied", []*taxonomy.LegacySymbol{tail, plain}, "SFGPUCI-----USA", "tail-override"},
		{"schema override unsatisfied", []*taxonomy.LegacySymbol{tail, plain}, "GFGPUCI-----USA", "plain"},
		{"unknown function", []*taxonomy.LegacySymbol{plain, hq}, "SFGPUCR--------", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindByFunction(tt.symbols, FunctionQueryFor("2525C", mustLegacy(t, tt.code)))
			if tt.want == "" {
				if ok {
					t.Errorf("expected no match, got %q", got.ID)
				}

				return
			}

			if !ok || got.ID != tt.want {
				t.Errorf("FindByFunction() = %v (ok=%v), want %q", got, ok, tt.want)
			}
		})
	}
}
