package narrative

import (
	"strings"
)

// Improvement is one actionable résumé-writing fix.
type Improvement struct {
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// SkillGap flags a missing or underrepresented skill area.
type SkillGap struct {
	Skill      string `json:"skill"`
	Status     string `json:"status"`
	Suggestion string `json:"suggestion"`
}

const minResumeWords = 200

var improvementActionVerbs = []string{
	"managed", "led", "developed", "created", "implemented",
	"designed", "improved", "increased", "reduced",
}

// Improvements checks the résumé against writing best practices: measurable
// outcomes, a professional summary, enough substance, and strong action verbs.
// An empty result means the résumé already follows them.
func (g *Generator) Improvements(resumeText string) []Improvement {
	resume := strings.ToLower(resumeText)
	out := make([]Improvement, 0, 4)

	if !strings.Contains(resume, "increased") && !strings.Contains(resume, "improved") &&
		!strings.Contains(resume, "reduced") && !strings.Contains(resume, "achieved") {
		out = append(out, Improvement{
			Category:   "XYZ Method",
			Issue:      "Missing quantifiable achievements",
			Suggestion: "Use the XYZ method: 'Accomplished [X] as measured by [Y] by doing [Z]' - e.g., 'Increased sales by 25% by implementing new customer outreach strategy'",
		})
	}

	if !strings.Contains(resume, "summary") && !strings.Contains(resume, "objective") {
		out = append(out, Improvement{
			Category:   "ATS Optimization",
			Issue:      "Missing professional summary",
			Suggestion: "Add a 2-3 line professional summary highlighting key qualifications and career focus",
		})
	}

	if len(strings.Fields(resume)) < minResumeWords {
		out = append(out, Improvement{
			Category:   "Content",
			Issue:      "Resume may be too brief",
			Suggestion: "Expand on responsibilities and achievements to provide more context and keywords",
		})
	}

	if !containsAnyTerm(resume, improvementActionVerbs) {
		out = append(out, Improvement{
			Category:   "Language",
			Issue:      "Weak action verbs",
			Suggestion: "Replace passive language with strong action verbs like 'managed', 'led', 'developed', 'implemented'",
		})
	}

	return out
}

const maxGapSkills = 3

// SkillGaps reports the taxonomy categories the job description requires that
// the candidate does not cover, as a single actionable entry. Empty when the
// candidate covers everything.
func (g *Generator) SkillGaps(sig Signals) []SkillGap {
	missing := g.missingSkills(sig)
	if len(missing) == 0 {
		return []SkillGap{}
	}
	if len(missing) > maxGapSkills {
		missing = missing[:maxGapSkills]
	}
	return []SkillGap{
		{
			Skill:      "Skills Development",
			Status:     "partial",
			Suggestion: "Consider highlighting or developing: " + strings.Join(missing, ", "),
		},
	}
}

func (g *Generator) missingSkills(sig Signals) []string {
	missing := make([]string, 0, len(sig.JobSkills))
	for _, want := range sig.JobSkills {
		covered := false
		for _, have := range sig.CandidateSkills {
			if g.M.SkillMatch(want, have) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, want)
		}
	}
	return missing
}
