package scoring

import "strings"

const (
	experienceBase      = 30
	industryOverlapPts  = 25
	roleTitlePts        = 10
	managementVerbPts   = 10
	yearsSeniorPts      = 20
	yearsMidPts         = 15
	yearsEstablishedPts = 10
	yearsJuniorPts      = 5
)

var industries = []string{
	"retail", "sales", "customer service", "food service",
	"healthcare", "education", "technology", "finance",
}

var roleTitles = []string{
	"associate", "assistant", "specialist", "coordinator",
	"representative", "manager", "supervisor", "director",
}

// ManagementVerbs signal people-management experience. Shared with the
// narrative generators.
var ManagementVerbs = []string{"managed", "supervised", "led"}

// ExperienceScore rates relevant work history: industry overlap between the
// two texts, role-title presence, the years estimate, and management verbs.
func (c *Calculator) ExperienceScore(resumeText, jobText string, years int) int {
	resume := strings.ToLower(resumeText)
	job := strings.ToLower(jobText)

	score := float64(experienceBase)

	for _, industry := range industries {
		if strings.Contains(resume, industry) && strings.Contains(job, industry) {
			score += industryOverlapPts
			break
		}
	}

	if containsAny(resume, roleTitles) {
		score += roleTitlePts
	}

	switch {
	case years >= 5:
		score += yearsSeniorPts
	case years >= 3:
		score += yearsMidPts
	case years >= 2:
		score += yearsEstablishedPts
	default:
		score += yearsJuniorPts
	}

	if containsAny(resume, ManagementVerbs) {
		score += managementVerbPts
	}

	return clamp100(score)
}
