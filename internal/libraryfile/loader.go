package libraryfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sidc-converter/internal/taxonomy"
)

// LoadFile reads, validates and converts the YAML library at path.
func LoadFile(path string) (*taxonomy.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library file %s: %w", path, err)
	}

	lib, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("library file %s: %w", path, err)
	}

	return lib, nil
}

// Load parses, validates and converts YAML library data.
func Load(data []byte) (*taxonomy.Library, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}

	return doc.Library(), nil
}

// Parse parses YAML data into a Document without validating it.
func Parse(data []byte) (*Document, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse library YAML: %w", err)
	}

	return &doc, nil
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
