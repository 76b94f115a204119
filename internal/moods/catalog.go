package moods

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed moods.yaml
var catalogYAML []byte

// Catalog is the set of mood labels the API accepts, loaded from the
// embedded moods.yaml manifest.
type Catalog struct {
	SchemaVersion string        `yaml:"schema_version"`
	Moods         []CatalogMood `yaml:"moods"`
}

// CatalogMood is a single selectable mood.
type CatalogMood struct {
	Label string `yaml:"label"`
	Emoji string `yaml:"emoji"`
}

// LoadCatalog parses the embedded mood manifest with strict validation.
// Unknown YAML fields are rejected (via KnownFields) to catch typos.
func LoadCatalog() (*Catalog, error) {
	var catalog Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(catalogYAML))
	decoder.KnownFields(true)

	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to parse mood catalog: %w", err)
	}

	if catalog.SchemaVersion == "" {
		catalog.SchemaVersion = "v1"
	}
	if len(catalog.Moods) == 0 {
		return nil, fmt.Errorf("mood catalog is empty")
	}
	for _, m := range catalog.Moods {
		if m.Label == "" {
			return nil, fmt.Errorf("mood catalog entry missing required field: label")
		}
	}

	return &catalog, nil
}

// Contains reports whether the label is a known mood.
func (c *Catalog) Contains(label string) bool {
	for _, m := range c.Moods {
		if m.Label == label {
			return true
		}
	}
	return false
}
