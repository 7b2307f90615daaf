package scoring

import "strings"

const (
	educationBase  = 30
	degreePts      = 30
	institutionPts = 20
	fieldPts       = 20
)

var degreeTerms = []string{
	"bachelor", "master", "phd", "doctorate", "bsc", "msc", "mba",
	"degree", "diploma", "certification",
}

var institutionTerms = []string{"university", "college", "institute", "school"}

var relevantFieldTerms = []string{
	"computer", "engineering", "science", "technology", "business", "management",
}

// EducationScore rates the résumé's educational signals. It does not consult
// the job description; education relevance is not yet job-aware.
func (c *Calculator) EducationScore(resumeText string) int {
	resume := strings.ToLower(resumeText)

	score := float64(educationBase)
	if containsAny(resume, degreeTerms) {
		score += degreePts
	}
	if containsAny(resume, institutionTerms) {
		score += institutionPts
	}
	if containsAny(resume, relevantFieldTerms) {
		score += fieldPts
	}
	return clamp100(score)
}
