// Package narrative synthesizes the human-readable side of an analysis from
// the numeric results and raw-text signals: strengths, weaknesses, risks,
// rewards, recommendations, reasonings, a summary, résumé improvements, skill
// gaps, ATS feedback, and keyword suggestions.
//
// Every generator is a deterministic rule table: conditions are checked in a
// fixed order, one entry appended per satisfied condition, with a generic
// fallback entry so no list is ever empty.
package narrative

import (
	"fmt"
	"math"
	"strings"

	"resumefit-backend/internal/extract"
	"resumefit-backend/internal/match"
	"resumefit-backend/internal/scoring"
)

// Generator builds narrative output. The extractor and matcher feed the
// keyword-level suggestions; everything else is pure rule tables.
type Generator struct {
	Ex *extract.Extractor
	M  *match.Matcher
}

// NewGenerator constructs a Generator.
func NewGenerator(ex *extract.Extractor, m *match.Matcher) *Generator {
	return &Generator{Ex: ex, M: m}
}

// Signals carries everything the generators condition on: the raw texts, the
// four sub-scores, the aggregate, the years estimate, and the skill-coverage
// numbers computed by the orchestrator.
type Signals struct {
	ResumeText string
	JobText    string

	Experience   int
	Skills       int
	Education    int
	Achievements int
	Overall      int

	Years    int
	Coverage float64

	JobSkills       []string
	CandidateSkills []string
	MatchedSkills   []string
}

func fallback(list []string, entry string) []string {
	if len(list) == 0 {
		return []string{entry}
	}
	return list
}

// Strengths lists what speaks for the candidate.
func (g *Generator) Strengths(sig Signals) []string {
	resume := strings.ToLower(sig.ResumeText)
	out := make([]string, 0, 8)

	switch {
	case sig.Experience >= 70:
		out = append(out, "Good relevant experience that aligns with job requirements")
	case sig.Experience >= 60:
		out = append(out, "Some relevant experience with potential for growth")
	}

	switch {
	case sig.Skills >= 70:
		out = append(out, "Strong skills alignment with job requirements")
	case sig.Skills >= 60:
		out = append(out, "Good skills match with solid foundation")
	}

	if sig.Education >= 80 {
		out = append(out, "Strong educational background with relevant qualifications")
	}

	switch {
	case sig.Achievements >= 70:
		out = append(out, "Demonstrates solid achievements and impact")
	case sig.Achievements >= 60:
		out = append(out, "Shows some quantifiable achievements")
	}

	if strings.Contains(resume, "customer service") || strings.Contains(resume, "retail") {
		out = append(out, "Direct customer service and retail experience")
	}
	if strings.Contains(resume, "team") || strings.Contains(resume, "collaboration") {
		out = append(out, "Good teamwork and collaboration skills")
	}
	if strings.Contains(resume, "communication") || strings.Contains(resume, "presentation") {
		out = append(out, "Strong communication skills")
	}
	if strings.Contains(resume, "bilingual") || strings.Contains(resume, "multilingual") {
		out = append(out, "Language skills that expand team capabilities")
	}

	return fallback(out, "Shows potential with basic qualifications")
}

// Weaknesses lists what may hold the candidate back.
func (g *Generator) Weaknesses(sig Signals) []string {
	resume := strings.ToLower(sig.ResumeText)
	out := make([]string, 0, 6)

	if sig.Experience < 70 {
		out = append(out, "Limited overall experience may require additional training")
	}
	if sig.Skills < 70 {
		out = append(out, "Some gaps in required skills that may need development")
	}
	if sig.Achievements < 70 {
		out = append(out, "Could benefit from more quantifiable achievements")
	}

	if !containsAnyTerm(resume, scoring.ManagementVerbs) {
		out = append(out, "No management or leadership experience")
	}
	if !strings.Contains(resume, "certification") && !strings.Contains(resume, "certified") {
		out = append(out, "No professional certifications mentioned")
	}
	if sig.Years < 3 {
		out = append(out, "Limited years of professional experience")
	}

	return fallback(out, "Overall profile meets basic requirements")
}

// RiskFactors lists hiring risks.
func (g *Generator) RiskFactors(sig Signals) []string {
	out := make([]string, 0, 2)
	if sig.Coverage < 50 {
		out = append(out, "Skill gaps may require additional training time")
	}
	if sig.Overall < 60 {
		out = append(out, "May need more onboarding support")
	}
	return fallback(out, "Standard hiring considerations apply")
}

// RewardFactors lists the upside of hiring the candidate.
func (g *Generator) RewardFactors(sig Signals) []string {
	resume := strings.ToLower(sig.ResumeText)
	out := make([]string, 0, 4)

	if sig.Coverage >= 70 {
		out = append(out, "Strong skill match suggests quick ramp-up")
	}
	if sig.Overall >= 80 {
		out = append(out, "Excellent candidate with high potential")
	}
	if strings.Contains(resume, "leadership") || strings.Contains(resume, "managed") {
		out = append(out, "Leadership experience can benefit the team")
	}
	if strings.Contains(resume, "bilingual") || strings.Contains(resume, "multilingual") {
		out = append(out, "Language skills expand team capabilities")
	}

	return fallback(out, "Candidate shows potential for growth")
}

// Recommendations suggests next hiring steps. The closing entries always
// apply, so the list is inherently non-empty.
func (g *Generator) Recommendations(sig Signals) []string {
	out := make([]string, 0, 5)

	switch {
	case sig.Overall >= 80:
		out = append(out,
			"Strong candidate - recommend for interview",
			"Focus on cultural fit and specific experience")
	case sig.Overall >= 60:
		out = append(out,
			"Good candidate - schedule interview",
			"Assess specific skills during interview")
	default:
		out = append(out, "Consider if candidate meets minimum requirements")
	}

	out = append(out,
		"Verify references and previous work quality",
		"Discuss career goals and expectations")
	return out
}

// Summary renders the one-paragraph verdict.
func (g *Generator) Summary(sig Signals) string {
	scoreLevel := "fair"
	if sig.Overall >= 80 {
		scoreLevel = "excellent"
	} else if sig.Overall >= 60 {
		scoreLevel = "good"
	}

	expLevel := "junior"
	if sig.Years >= 5 {
		expLevel = "senior"
	} else if sig.Years >= 3 {
		expLevel = "mid-level"
	}

	closing := "Consider the identified areas during the interview process"
	if sig.Overall >= 70 {
		closing = "The candidate appears well-suited for the role"
	}

	return fmt.Sprintf(
		"This %s candidate shows %s potential with an overall fit score of %d/100. "+
			"The resume demonstrates strong alignment with %d%% of required skills "+
			"and approximately %d years of experience. %s.",
		expLevel, scoreLevel, sig.Overall, int(math.Round(sig.Coverage)), sig.Years, closing)
}

// ExperienceReasoning explains the experience sub-score.
func (g *Generator) ExperienceReasoning(sig Signals) string {
	resume := strings.ToLower(sig.ResumeText)
	if strings.Contains(resume, "retail") || strings.Contains(resume, "sales associate") || strings.Contains(resume, "customer service") {
		return "Strong relevant experience with direct customer service and retail background."
	}
	if sig.Years >= 3 {
		return fmt.Sprintf("Solid experience with %d years in relevant roles.", sig.Years)
	}
	return fmt.Sprintf("Junior-level candidate with %d years of experience, showing potential for growth.", sig.Years)
}

// SkillsReasoning explains the skills sub-score.
func (g *Generator) SkillsReasoning(sig Signals) string {
	switch {
	case sig.Coverage >= 80:
		return "Excellent skills alignment - strong match with most required competencies."
	case sig.Coverage >= 60:
		return "Good skills match with solid foundation in key areas."
	default:
		return "Partial skills alignment with room for development in some areas."
	}
}

// EducationReasoning explains the education sub-score.
func (g *Generator) EducationReasoning(score int) string {
	if score >= 70 {
		return "Strong educational background with relevant qualifications."
	}
	return "Education background could be stronger or more clearly presented."
}

// AchievementsReasoning explains the achievements sub-score.
func (g *Generator) AchievementsReasoning(score int) string {
	if score >= 70 {
		return "Demonstrates strong achievements and impact."
	}
	return "Limited evidence of quantifiable achievements."
}

func containsAnyTerm(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
