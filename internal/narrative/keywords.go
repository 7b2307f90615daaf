package narrative

import "strings"

// KeywordSuggestions buckets job-description vocabulary by how well the
// résumé covers it.
type KeywordSuggestions struct {
	Missing []string `json:"missing"`
	Weak    []string `json:"weak"`
	Strong  []string `json:"strong"`
}

// Caps keep the buckets readable.
const (
	maxMissingKeywords = 5
	maxWeakKeywords    = 10
	maxStrongKeywords  = 10
)

// Keywords computes the three buckets. Missing and strong come from the
// curated taxonomy (set difference and intersection of skill tokens); weak
// comes from the broader keyword extractor, catching job-description terms the
// résumé only brushes against via substring overlap.
func (g *Generator) Keywords(sig Signals) KeywordSuggestions {
	missing := g.missingSkills(sig)
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}

	strong := make([]string, 0, len(sig.CandidateSkills))
	for _, have := range sig.CandidateSkills {
		for _, want := range sig.JobSkills {
			if g.M.SkillMatch(have, want) {
				strong = append(strong, have)
				break
			}
		}
		if len(strong) == maxStrongKeywords {
			break
		}
	}

	return KeywordSuggestions{
		Missing: missing,
		Weak:    g.weakKeywords(sig),
		Strong:  strong,
	}
}

func (g *Generator) weakKeywords(sig Signals) []string {
	jobKeywords := g.Ex.Keywords(sig.JobText)
	resumeKeywords := g.Ex.Keywords(sig.ResumeText)

	weak := make([]string, 0, maxWeakKeywords)
	for _, jk := range jobKeywords {
		exact := false
		partial := false
		for _, rk := range resumeKeywords {
			if jk == rk {
				exact = true
				break
			}
			if containsEither(jk, rk) {
				partial = true
			}
		}
		if !exact && partial {
			weak = append(weak, jk)
			if len(weak) == maxWeakKeywords {
				break
			}
		}
	}
	return weak
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
