package analyzer

import "resumefit-backend/internal/narrative"

// SubScore is one dimension of the fit assessment.
type SubScore struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// AnalysisResult is the complete assessment for one résumé/job-description
// pair. Field names and nesting are the wire contract. Constructed once per
// request, immutable afterwards, never persisted.
type AnalysisResult struct {
	OverallScore int      `json:"overallScore"`
	Experience   SubScore `json:"experience"`
	Skills       SubScore `json:"skills"`
	Education    SubScore `json:"education"`
	Achievements SubScore `json:"achievements"`

	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	RiskFactors     []string `json:"riskFactors"`
	RewardFactors   []string `json:"rewardFactors"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`

	ResumeImprovements []narrative.Improvement      `json:"resumeImprovements"`
	SkillGaps          []narrative.SkillGap         `json:"skillGaps"`
	ATSScore           int                          `json:"atsScore"`
	ATSRecommendations []string                     `json:"atsRecommendations"`
	KeywordSuggestions narrative.KeywordSuggestions `json:"keywordSuggestions"`
}

// sanitizeResult forces a result into the invariant shape: every score in
// [0,100] and every narrative list non-empty. Heuristic results satisfy the
// invariants by construction; remote-scorer results get coerced here.
func sanitizeResult(r *AnalysisResult) {
	r.OverallScore = clampScore(r.OverallScore)
	r.Experience.Score = clampScore(r.Experience.Score)
	r.Skills.Score = clampScore(r.Skills.Score)
	r.Education.Score = clampScore(r.Education.Score)
	r.Achievements.Score = clampScore(r.Achievements.Score)
	r.ATSScore = clampScore(r.ATSScore)

	r.Strengths = ensureList(r.Strengths, "Shows potential with basic qualifications")
	r.Weaknesses = ensureList(r.Weaknesses, "Overall profile meets basic requirements")
	r.RiskFactors = ensureList(r.RiskFactors, "Standard hiring considerations apply")
	r.RewardFactors = ensureList(r.RewardFactors, "Candidate shows potential for growth")
	r.Recommendations = ensureList(r.Recommendations, "Review the full resume against role requirements")

	if r.ResumeImprovements == nil {
		r.ResumeImprovements = []narrative.Improvement{}
	}
	if r.SkillGaps == nil {
		r.SkillGaps = []narrative.SkillGap{}
	}
	if r.ATSRecommendations == nil {
		r.ATSRecommendations = []string{}
	}
	if r.KeywordSuggestions.Missing == nil {
		r.KeywordSuggestions.Missing = []string{}
	}
	if r.KeywordSuggestions.Weak == nil {
		r.KeywordSuggestions.Weak = []string{}
	}
	if r.KeywordSuggestions.Strong == nil {
		r.KeywordSuggestions.Strong = []string{}
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func ensureList(list []string, fallbackEntry string) []string {
	if len(list) == 0 {
		return []string{fallbackEntry}
	}
	return list
}
