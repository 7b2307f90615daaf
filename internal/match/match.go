// Package match decides whether two skill or keyword tokens denote the same
// real-world concept: exact equality, the curated relation/synonym tables, and
// an edit-distance similarity fallback.
package match

import (
	"strings"

	"resumefit-backend/internal/taxonomy"
)

// DefaultSimilarityThreshold is the minimum normalized Levenshtein similarity
// for the fallback keyword match. Tunable: short strings inflate similarity,
// so raising it trades recall for precision.
const DefaultSimilarityThreshold = 0.7

// Matcher answers token-equivalence questions over a taxonomy's tables.
type Matcher struct {
	Tax *taxonomy.Taxonomy

	// SimilarityThreshold gates the edit-distance fallback of KeywordMatch.
	SimilarityThreshold float64
}

// NewMatcher constructs a Matcher with the default similarity threshold.
func NewMatcher(tax *taxonomy.Taxonomy) *Matcher {
	return &Matcher{Tax: tax, SimilarityThreshold: DefaultSimilarityThreshold}
}

// SkillMatch reports whether two canonical skill tokens denote the same
// concept. The relation table is authored one-way, so both directions are
// checked; the result is symmetric.
func (m *Matcher) SkillMatch(a, b string) bool {
	if a == b {
		return true
	}
	return m.related(a, b) || m.related(b, a)
}

func (m *Matcher) related(from, to string) bool {
	for _, r := range m.Tax.Related[from] {
		if r == to {
			return true
		}
	}
	return false
}

// KeywordMatch reports whether two keyword tokens are equivalent: equal,
// substring of one another, members of the same synonym group, or close
// enough under normalized Levenshtein similarity.
func (m *Matcher) KeywordMatch(a, b string) bool {
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	for key, group := range m.Tax.Synonyms {
		if inGroup(key, group, a) && inGroup(key, group, b) {
			return true
		}
	}
	return Similarity(a, b) > m.SimilarityThreshold
}

func inGroup(key string, group []string, token string) bool {
	if token == key {
		return true
	}
	for _, g := range group {
		if g == token {
			return true
		}
	}
	return false
}

// Similarity returns (maxLen - Levenshtein(a, b)) / maxLen in [0, 1].
// Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	if longer == 0 {
		return 1.0
	}
	return float64(longer-Levenshtein(a, b)) / float64(longer)
}

// Levenshtein computes the classic dynamic-programming edit distance over
// characters. Inputs are expected to be case-normalized already.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j-1]+cost, minInt(curr[j-1]+1, prev[j]+1))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
