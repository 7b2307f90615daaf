// Package scoring computes the four fit sub-scores and the years-of-experience
// estimate. Each calculator is a documented base score plus additive bonuses
// with per-category caps, clamped to [0, 100]. All functions are total over
// arbitrary text.
package scoring

import (
	"strings"

	"resumefit-backend/internal/extract"
)

// Calculator holds the extractor the skills score needs for the candidate's
// raw category count. The other calculators are pure text functions.
type Calculator struct {
	Ex *extract.Extractor
}

// NewCalculator constructs a Calculator.
func NewCalculator(ex *extract.Extractor) *Calculator {
	return &Calculator{Ex: ex}
}

func clamp100(score float64) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return int(score)
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func countContained(text string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}
