// Package analyzer is the single entry point of the scoring engine: given
// résumé and job-description text it picks a scoring strategy (remote model
// when configured and healthy, heuristic pipeline otherwise) and returns one
// normalized result.
package analyzer

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"resumefit-backend/internal/extract"
	"resumefit-backend/internal/llm"
	"resumefit-backend/internal/match"
	"resumefit-backend/internal/narrative"
	"resumefit-backend/internal/scoring"
	"resumefit-backend/internal/shared/telemetry"
	"resumefit-backend/internal/taxonomy"
)

// Overall-score weights. The 40/40/10/10 split is a contract, not a tuning
// artifact: experience and skills dominate, education and achievements nudge.
const (
	WeightExperience   = 0.4
	WeightSkills       = 0.4
	WeightEducation    = 0.1
	WeightAchievements = 0.1
)

// Strategy sources for Outcome.Source.
const (
	SourceModel     = "model"
	SourceHeuristic = "heuristic"
)

// Input is one analysis request. Both texts must be non-empty plain text;
// document extraction happens upstream.
type Input struct {
	ResumeText         string `json:"resumeText" binding:"required"`
	JobDescriptionText string `json:"jobDescriptionText" binding:"required"`
}

// Outcome is a result plus how it was produced, so callers and tests can tell
// the model path from the heuristic path and whether a fallback happened.
type Outcome struct {
	Result   AnalysisResult
	Source   string
	Fallback bool
}

// Analyzer wires the pipeline components around one taxonomy.
type Analyzer struct {
	ex     *extract.Extractor
	m      *match.Matcher
	calc   *scoring.Calculator
	gen    *narrative.Generator
	remote llm.Client
}

// New constructs an Analyzer. remote may be nil for heuristic-only operation.
func New(tax *taxonomy.Taxonomy, remote llm.Client) *Analyzer {
	ex := extract.NewExtractor(tax)
	m := match.NewMatcher(tax)
	return &Analyzer{
		ex:     ex,
		m:      m,
		calc:   scoring.NewCalculator(ex),
		gen:    narrative.NewGenerator(ex, m),
		remote: remote,
	}
}

// Analyze validates the input, tries the remote strategy when configured, and
// falls back to the heuristic pipeline on any remote failure. The fallback is
// silent to the caller apart from the Outcome flags and a diagnostic log.
func (a *Analyzer) Analyze(ctx context.Context, input Input) (Outcome, error) {
	if strings.TrimSpace(input.ResumeText) == "" || strings.TrimSpace(input.JobDescriptionText) == "" {
		return Outcome{}, ErrInvalidInput
	}

	if a.remote != nil {
		result, err := a.scoreRemote(ctx, input)
		if err == nil {
			return Outcome{Result: result, Source: SourceModel}, nil
		}
		telemetry.Error("analysis.fallback", map[string]any{
			"reason": err.Error(),
		})
	}

	result := a.heuristic(input)
	return Outcome{
		Result:   result,
		Source:   SourceHeuristic,
		Fallback: a.remote != nil,
	}, nil
}

func (a *Analyzer) scoreRemote(ctx context.Context, input Input) (AnalysisResult, error) {
	raw, err := a.remote.Score(ctx, llm.ScoreInput{
		ResumeText:     input.ResumeText,
		JobDescription: input.JobDescriptionText,
	})
	if err != nil {
		return AnalysisResult{}, err
	}

	block, ok := extractJSONBlock(string(raw))
	if !ok {
		return AnalysisResult{}, errNoJSONBlock
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(block), &result); err != nil {
		return AnalysisResult{}, err
	}
	sanitizeResult(&result)
	return result, nil
}

// heuristic runs the full rule-based pipeline. Total for non-empty input.
func (a *Analyzer) heuristic(input Input) AnalysisResult {
	jobSkills := a.ex.Skills(input.JobDescriptionText)
	candidateSkills := a.ex.Skills(input.ResumeText)

	matched := make([]string, 0, len(jobSkills))
	for _, want := range jobSkills {
		for _, have := range candidateSkills {
			if a.m.SkillMatch(want, have) {
				matched = append(matched, want)
				break
			}
		}
	}

	coverage := scoring.DefaultCoverage
	if len(jobSkills) > 0 {
		coverage = float64(len(matched)) / float64(len(jobSkills)) * 100
	}

	years := scoring.EstimateYears(input.ResumeText)

	expScore := a.calc.ExperienceScore(input.ResumeText, input.JobDescriptionText, years)
	skillsScore := a.calc.SkillsScore(input.ResumeText, coverage)
	eduScore := a.calc.EducationScore(input.ResumeText)
	achScore := a.calc.AchievementsScore(input.ResumeText)

	overall := overallScore(expScore, skillsScore, eduScore, achScore)

	sig := narrative.Signals{
		ResumeText:      input.ResumeText,
		JobText:         input.JobDescriptionText,
		Experience:      expScore,
		Skills:          skillsScore,
		Education:       eduScore,
		Achievements:    achScore,
		Overall:         overall,
		Years:           years,
		Coverage:        coverage,
		JobSkills:       jobSkills,
		CandidateSkills: candidateSkills,
		MatchedSkills:   matched,
	}

	atsScore := a.gen.ATSScore(input.ResumeText)

	result := AnalysisResult{
		OverallScore: overall,
		Experience:   SubScore{Score: expScore, Reasoning: a.gen.ExperienceReasoning(sig)},
		Skills:       SubScore{Score: skillsScore, Reasoning: a.gen.SkillsReasoning(sig)},
		Education:    SubScore{Score: eduScore, Reasoning: a.gen.EducationReasoning(eduScore)},
		Achievements: SubScore{Score: achScore, Reasoning: a.gen.AchievementsReasoning(achScore)},

		Strengths:       a.gen.Strengths(sig),
		Weaknesses:      a.gen.Weaknesses(sig),
		RiskFactors:     a.gen.RiskFactors(sig),
		RewardFactors:   a.gen.RewardFactors(sig),
		Recommendations: a.gen.Recommendations(sig),
		Summary:         a.gen.Summary(sig),

		ResumeImprovements: a.gen.Improvements(input.ResumeText),
		SkillGaps:          a.gen.SkillGaps(sig),
		ATSScore:           atsScore,
		ATSRecommendations: a.gen.ATSRecommendations(input.ResumeText, atsScore),
		KeywordSuggestions: a.gen.Keywords(sig),
	}
	sanitizeResult(&result)
	return result
}

// overallScore applies the fixed linear weighting and rounds.
func overallScore(experience, skills, education, achievements int) int {
	return int(math.Round(
		float64(experience)*WeightExperience +
			float64(skills)*WeightSkills +
			float64(education)*WeightEducation +
			float64(achievements)*WeightAchievements))
}
