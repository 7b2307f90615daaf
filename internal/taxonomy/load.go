package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a full replacement taxonomy from a YAML file. Missing tables
// fall back to the built-in defaults so an override file only needs to name
// what it changes.
func LoadFile(path string) (*Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy file %s: %w", path, err)
	}

	var loaded Taxonomy
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("taxonomy file %s: parse: %w", path, err)
	}

	def := Default()
	if len(loaded.Categories) == 0 {
		loaded.Categories = def.Categories
	}
	if len(loaded.Related) == 0 {
		loaded.Related = def.Related
	}
	if len(loaded.Synonyms) == 0 {
		loaded.Synonyms = def.Synonyms
	}
	if len(loaded.StopWords) == 0 {
		loaded.StopWords = def.StopWords
	}
	if len(loaded.Phrases) == 0 {
		loaded.Phrases = def.Phrases
	}
	loaded.index()
	return &loaded, nil
}
