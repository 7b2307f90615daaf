package scoring

import (
	"regexp"
	"strings"
)

const (
	achievementsBase    = 40
	achievementTermPts  = 3
	achievementTermsCap = 40
	quantifiablePts     = 2
	quantifiableCap     = 20
)

var achievementTerms = []string{
	"award", "recognition", "achievement", "accomplishment", "success",
	"improved", "increased", "decreased", "reduced", "optimized", "enhanced",
	"developed", "created", "built", "launched", "implemented", "delivered",
	"exceeded", "outperformed", "led", "managed", "supervised", "mentored",
	"trained", "published", "patent", "certification", "promotion",
}

// quantifiablePatterns match measurable results: percentages, money amounts,
// user/customer counts, and multiplier phrases.
var quantifiablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`(?i)\$\d+[km]?`),
	regexp.MustCompile(`(?i)\d+[km]?\s*(users|customers|clients)`),
	regexp.MustCompile(`(?i)\d+\s*(times|fold|x)\s*(increase|decrease|improvement)`),
}

// CountQuantifiable sums quantifiable-result pattern hits across the text.
func CountQuantifiable(text string) int {
	n := 0
	for _, p := range quantifiablePatterns {
		n += len(p.FindAllString(text, -1))
	}
	return n
}

// AchievementsScore rates demonstrated impact: achievement verbs/nouns and
// quantifiable results.
func (c *Calculator) AchievementsScore(resumeText string) int {
	resume := strings.ToLower(resumeText)

	score := float64(achievementsBase)

	termPts := float64(countContained(resume, achievementTerms)) * achievementTermPts
	if termPts > achievementTermsCap {
		termPts = achievementTermsCap
	}
	score += termPts

	quantPts := float64(CountQuantifiable(resumeText)) * quantifiablePts
	if quantPts > quantifiableCap {
		quantPts = quantifiableCap
	}
	score += quantPts

	return clamp100(score)
}
