package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxEstimatedYears caps explicit year mentions; larger values are treated as
// noise (page counts, revenue figures) and ignored.
const MaxEstimatedYears = 20

var explicitYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(in|working\s*in)`),
	regexp.MustCompile(`(?i)experience\s*:?\s*(\d+)\+?\s*years?`),
}

// entryRoleTerms are common entry-level job titles; how many appear is a rough
// proxy for the number of roles held.
var entryRoleTerms = []string{
	"cashier", "sales associate", "tutor", "intern", "assistant", "mentor",
	"marketing", "social media", "customer service", "retail", "food service",
}

var seniorityTerms = []string{"senior", "lead", "manager", "director", "principal", "architect"}

var dateRangePattern = regexp.MustCompile(`\d{4}\s*--\s*\d{4}`)

// recentYears drive the weakest fallback tier; refresh alongside the current
// calendar year.
var recentYears = []string{"2024", "2023"}

// EstimateYears infers years of relevant experience. Explicit "N years"
// mentions win (maximum found, capped); otherwise structural signals tier the
// estimate: seniority keywords, role counts, date ranges, and recent years.
// Any non-empty résumé implies at least one year.
func EstimateYears(text string) int {
	maxYears := 0
	for _, p := range explicitYearPatterns {
		for _, groups := range p.FindAllStringSubmatch(text, -1) {
			years, err := strconv.Atoi(groups[1])
			if err != nil {
				continue
			}
			if years > maxYears && years <= MaxEstimatedYears {
				maxYears = years
			}
		}
	}
	if maxYears > 0 {
		return maxYears
	}

	lowered := strings.ToLower(text)
	roleCount := countContained(lowered, entryRoleTerms)
	hasSeniority := containsAny(lowered, seniorityTerms)
	multipleRanges := len(dateRangePattern.FindAllString(lowered, -1)) > 1
	recentMention := containsAny(lowered, recentYears)

	switch {
	case hasSeniority:
		return 5
	case roleCount >= 3 && multipleRanges:
		return 3
	case roleCount >= 2 || multipleRanges:
		return 2
	case recentMention:
		return 1
	default:
		return 1
	}
}
