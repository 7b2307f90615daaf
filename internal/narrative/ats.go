package narrative

import (
	"math"
	"regexp"
	"strings"
)

// ATS checklist weights. The checklist approximates how applicant tracking
// systems parse a résumé; weights sum to a ceiling above 100 on purpose, the
// final score is capped.
const (
	atsSectionWeight     = 40
	atsBothContactsPts   = 20
	atsOneContactPts     = 10
	atsBulletsPts        = 10
	atsDatesPts          = 10
	atsJobTitlePts       = 10
	atsActionVerbCap     = 10
	atsActionVerbWeight  = 1.5
	atsQuantifiableCap   = 10
	atsQuantifiablePts   = 2
	atsSubstancePts      = 10
	atsSubstanceMinChars = 500

	// Recommendation thresholds: none at or above the high bar, specific
	// section/contact fixes below the mid bar, formatting basics below low.
	atsHighBar = 80
	atsMidBar  = 70
	atsLowBar  = 50
)

var atsSections = []string{"experience", "education", "skills"}

var atsJobTitles = []string{"associate", "tutor", "intern", "assistant"}

var atsActionVerbs = []string{
	"managed", "led", "developed", "created", "implemented", "designed",
	"improved", "increased", "reduced", "assisted", "delivered", "collaborated",
}

var (
	atsPhonePattern = regexp.MustCompile(`\d{3}[-.\s)]*\d{3}[-.\s]*\d{4}`)
	atsYearPattern  = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	atsQuantifiablePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\d+\+`),
		regexp.MustCompile(`(?i)\d+[km]?\s*(customers|clients|users|orders|shifts)`),
	}
)

// ATSScore rates how well the résumé would survive automated scanning.
func (g *Generator) ATSScore(resumeText string) int {
	resume := strings.ToLower(resumeText)

	var score float64

	present := 0
	for _, section := range atsSections {
		if strings.Contains(resume, section) {
			present++
		}
	}
	score += float64(present) / float64(len(atsSections)) * atsSectionWeight

	hasEmail, hasPhone := contactSignals(resume)
	switch {
	case hasEmail && hasPhone:
		score += atsBothContactsPts
	case hasEmail || hasPhone:
		score += atsOneContactPts
	}

	if strings.ContainsAny(resume, "•*-") {
		score += atsBulletsPts
	}
	if atsYearPattern.MatchString(resume) {
		score += atsDatesPts
	}
	if containsAnyTerm(resume, atsJobTitles) {
		score += atsJobTitlePts
	}

	verbPts := float64(countTerms(resume, atsActionVerbs)) * atsActionVerbWeight
	if verbPts > atsActionVerbCap {
		verbPts = atsActionVerbCap
	}
	score += verbPts

	quant := 0
	for _, p := range atsQuantifiablePatterns {
		quant += len(p.FindAllString(resumeText, -1))
	}
	quantPts := float64(quant) * atsQuantifiablePts
	if quantPts > atsQuantifiableCap {
		quantPts = atsQuantifiableCap
	}
	score += quantPts

	if len(resume) > atsSubstanceMinChars {
		score += atsSubstancePts
	}

	rounded := int(math.Round(score))
	if rounded > 100 {
		rounded = 100
	}
	return rounded
}

// ATSRecommendations suggests formatting fixes, escalating in specificity as
// the score drops. A score at or above the high bar needs nothing.
func (g *Generator) ATSRecommendations(resumeText string, score int) []string {
	if score >= atsHighBar {
		return []string{}
	}

	resume := strings.ToLower(resumeText)
	out := make([]string, 0, 6)

	if score < atsMidBar {
		if !strings.Contains(resume, "experience") {
			out = append(out, "Add an Experience section")
		}
		if !strings.Contains(resume, "education") {
			out = append(out, "Add an Education section")
		}
		if !strings.Contains(resume, "skills") {
			out = append(out, "Add a Skills section")
		}
		hasEmail, hasPhone := contactSignals(resume)
		if !hasEmail || !hasPhone {
			out = append(out, "Ensure both email and phone number are clearly visible")
		}
	}

	if score < atsLowBar {
		out = append(out,
			"Use bullet points for better readability",
			"Add more quantifiable achievements with numbers and percentages",
			"Ensure consistent formatting throughout")
	}

	return out
}

func contactSignals(resume string) (hasEmail, hasPhone bool) {
	hasEmail = strings.Contains(resume, "@") || strings.Contains(resume, "email")
	hasPhone = strings.Contains(resume, "phone") || atsPhonePattern.MatchString(resume)
	return hasEmail, hasPhone
}

func countTerms(text string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}
