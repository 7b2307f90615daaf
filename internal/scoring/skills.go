package scoring

import "strings"

const (
	skillsBase = 25

	// Coverage (matched / required taxonomy categories, as a percentage) is
	// the main factor, scaled down so a perfect match still needs breadth
	// and leadership/technical signals to reach the top of the range.
	coverageWeight = 0.4
	coverageCapPts = 40

	categoryCountWeight = 1.5
	categoryCountCapPts = 15

	leadershipLanguagePts = 10
	technicalLanguagePts  = 10

	// DefaultCoverage is assumed when the job description yields no taxonomy
	// categories at all, so ambiguous postings do not sink the candidate.
	DefaultCoverage = 80.0
)

var leadershipTerms = []string{"management", "leadership", "supervision"}
var technicalTerms = []string{"programming", "software", "technical"}

// SkillsScore rates skill alignment from the pre-computed coverage percentage
// plus the candidate's own category breadth and leadership/technical language.
func (c *Calculator) SkillsScore(resumeText string, coverage float64) int {
	resume := strings.ToLower(resumeText)

	score := float64(skillsBase)

	covPts := coverage * coverageWeight
	if covPts > coverageCapPts {
		covPts = coverageCapPts
	}
	score += covPts

	countPts := float64(len(c.Ex.Skills(resumeText))) * categoryCountWeight
	if countPts > categoryCountCapPts {
		countPts = categoryCountCapPts
	}
	score += countPts

	if containsAny(resume, leadershipTerms) {
		score += leadershipLanguagePts
	}
	if containsAny(resume, technicalTerms) {
		score += technicalLanguagePts
	}

	return clamp100(score)
}
