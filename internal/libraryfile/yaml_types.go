package libraryfile

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"sidc-converter/internal/common"
	"sidc-converter/internal/sidc"
)

// Code is a two-digit code. It accepts a bare number (10) or a quoted,
// zero-padded string ("01").
type Code sidc.Pair

// UnmarshalYAML implements custom YAML unmarshaling for Code.
func (c *Code) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a two-digit code, got %v", node.Line, node.Kind)
	}

	v, err := strconv.ParseUint(node.Value, 10, 16)
	if err != nil || !common.IsInRange(0, v, 99) || len(node.Value) > 2 {
		return fmt.Errorf("line %d: invalid two-digit code %q", node.Line, node.Value)
	}

	*c = Code(sidc.PairOf(uint16(v)))

	return nil
}

// MarshalYAML renders the code as a zero-padded string.
func (c Code) MarshalYAML() (any, error) {
	return c.Pair().String(), nil
}

// Pair returns the code as a sidc.Pair.
func (c Code) Pair() sidc.Pair {
	return sidc.Pair(c)
}
