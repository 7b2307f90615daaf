// Package taxonomy holds the static vocabulary the matching engine runs on:
// skill categories with their surface phrases, relation and synonym tables,
// stop words, and the curated phrase list. Tables are read-only after
// construction and can be replaced wholesale from a YAML file.
package taxonomy

// Category is a canonical skill label covering a cluster of surface phrases.
type Category struct {
	Name    string   `yaml:"name"`
	Phrases []string `yaml:"phrases"`
}

// Taxonomy bundles every static table used by extraction and matching.
type Taxonomy struct {
	// Categories maps free text to canonical skill tokens. A category is
	// emitted when any of its phrases occurs in the text.
	Categories []Category `yaml:"categories"`

	// Related lists skill tokens considered equivalent for coverage
	// purposes. Authored one-way; lookups check both directions.
	Related map[string][]string `yaml:"related"`

	// Synonyms groups keyword phrases into equivalence sets, keyed by a
	// representative phrase.
	Synonyms map[string][]string `yaml:"synonyms"`

	// StopWords are dropped during keyword extraction. Includes common
	// English words plus job-posting boilerplate.
	StopWords []string `yaml:"stopWords"`

	// Phrases are multi-word terms worth surfacing as keywords even though
	// whitespace splitting would tear them apart.
	Phrases []string `yaml:"phrases"`

	stopSet map[string]struct{}
}

// StopWord reports whether w is filtered out of keyword extraction.
func (t *Taxonomy) StopWord(w string) bool {
	_, ok := t.stopSet[w]
	return ok
}

// CategoryNames returns the canonical token for every category, in table order.
func (t *Taxonomy) CategoryNames() []string {
	names := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		names = append(names, c.Name)
	}
	return names
}

func (t *Taxonomy) index() {
	t.stopSet = make(map[string]struct{}, len(t.StopWords))
	for _, w := range t.StopWords {
		t.stopSet[w] = struct{}{}
	}
}
