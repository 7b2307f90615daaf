// Package extract turns free résumé/job-description text into the tokens the
// matching engine works with: canonical skill categories from the taxonomy and
// broader keyword tokens surviving stop-word filtering.
package extract

import (
	"strings"
	"unicode"

	"resumefit-backend/internal/taxonomy"
)

// maxKeywords caps keyword extraction; quality over quantity.
const maxKeywords = 100

const (
	minKeywordLen = 3
	minBigramLen  = 6
	maxBigramLen  = 25
)

// Normalize lowercases text, replaces every character outside
// [letters digits space @ . -] with a space, and collapses whitespace.
// Total function; any input is accepted.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '@' || r == '.' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Extractor maps text onto the taxonomy vocabulary.
type Extractor struct {
	Tax *taxonomy.Taxonomy
}

// NewExtractor constructs an Extractor over the given taxonomy.
func NewExtractor(tax *taxonomy.Taxonomy) *Extractor {
	return &Extractor{Tax: tax}
}

// Skills returns the canonical skill tokens whose surface phrases occur in the
// text. Each category is emitted at most once, in table order; the first
// matching phrase short-circuits the rest of its category.
func (e *Extractor) Skills(text string) []string {
	lowered := strings.ToLower(text)
	skills := make([]string, 0, 8)
	for _, cat := range e.Tax.Categories {
		for _, phrase := range cat.Phrases {
			if strings.Contains(lowered, phrase) {
				skills = append(skills, cat.Name)
				break
			}
		}
	}
	return skills
}

// Keywords returns normalized word and phrase tokens in first-seen order:
// single words surviving the stop-word filter, curated multi-word phrases
// found in the text, and contiguous bigrams of the filtered word stream.
// The result is deduplicated and truncated to maxKeywords entries.
func (e *Extractor) Keywords(text string) []string {
	normalized := Normalize(text)
	words := strings.Fields(normalized)

	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	add := func(token string) {
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}

	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if !e.keepWord(w) {
			continue
		}
		filtered = append(filtered, w)
		add(w)
	}

	for _, phrase := range e.Tax.Phrases {
		if strings.Contains(normalized, phrase) {
			add(phrase)
		}
	}

	for i := 0; i+1 < len(filtered); i++ {
		bigram := filtered[i] + " " + filtered[i+1]
		if len(bigram) >= minBigramLen && len(bigram) <= maxBigramLen {
			add(bigram)
		}
	}

	if len(out) > maxKeywords {
		out = out[:maxKeywords]
	}
	return out
}

func (e *Extractor) keepWord(w string) bool {
	if len(w) < minKeywordLen {
		return false
	}
	if e.Tax.StopWord(w) {
		return false
	}
	hasLetter := false
	allDigits := true
	for _, r := range w {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if !unicode.IsDigit(r) {
			allDigits = false
		}
	}
	return hasLetter && !allDigits
}
