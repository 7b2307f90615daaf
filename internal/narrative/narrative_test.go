package narrative

import (
	"strings"
	"testing"

	"resumefit-backend/internal/extract"
	"resumefit-backend/internal/match"
	"resumefit-backend/internal/taxonomy"
)

func newGenerator() *Generator {
	tax := taxonomy.Default()
	return NewGenerator(extract.NewExtractor(tax), match.NewMatcher(tax))
}

func TestStrengthsFallback(t *testing.T) {
	g := newGenerator()

	got := g.Strengths(Signals{ResumeText: "nothing remarkable here"})
	if len(got) != 1 || got[0] != "Shows potential with basic qualifications" {
		t.Fatalf("expected fallback strength, got %v", got)
	}
}

func TestStrengthsHighScores(t *testing.T) {
	g := newGenerator()

	sig := Signals{
		ResumeText:   "customer service and team collaboration",
		Experience:   75,
		Skills:       75,
		Education:    85,
		Achievements: 75,
	}
	got := g.Strengths(sig)
	if len(got) < 4 {
		t.Fatalf("expected several strengths, got %v", got)
	}
	for _, s := range got {
		if s == "Shows potential with basic qualifications" {
			t.Fatalf("fallback entry should not appear alongside real strengths: %v", got)
		}
	}
}

func TestWeaknessesFallback(t *testing.T) {
	g := newGenerator()

	sig := Signals{
		ResumeText:   "managed a certified team",
		Experience:   90,
		Skills:       90,
		Achievements: 90,
		Years:        5,
	}
	got := g.Weaknesses(sig)
	if len(got) != 1 || got[0] != "Overall profile meets basic requirements" {
		t.Fatalf("expected fallback weakness, got %v", got)
	}
}

func TestRiskAndRewardFallbacks(t *testing.T) {
	g := newGenerator()

	risks := g.RiskFactors(Signals{Coverage: 80, Overall: 70})
	if len(risks) != 1 || risks[0] != "Standard hiring considerations apply" {
		t.Fatalf("expected fallback risk, got %v", risks)
	}

	rewards := g.RewardFactors(Signals{ResumeText: "plain history", Coverage: 10, Overall: 40})
	if len(rewards) != 1 || rewards[0] != "Candidate shows potential for growth" {
		t.Fatalf("expected fallback reward, got %v", rewards)
	}
}

func TestRecommendationsAlwaysPresent(t *testing.T) {
	g := newGenerator()

	for _, overall := range []int{30, 65, 90} {
		got := g.Recommendations(Signals{Overall: overall})
		if len(got) < 3 {
			t.Fatalf("expected at least three recommendations for overall %d, got %v", overall, got)
		}
	}
}

func TestSummary(t *testing.T) {
	g := newGenerator()

	sig := Signals{Overall: 72, Years: 5, Coverage: 66.7}
	got := g.Summary(sig)

	for _, fragment := range []string{"senior", "good", "72/100", "67% of required skills", "5 years"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("summary missing %q: %s", fragment, got)
		}
	}
	if !strings.Contains(got, "well-suited") {
		t.Fatalf("expected positive closing for overall 72: %s", got)
	}
}

func TestReasonings(t *testing.T) {
	g := newGenerator()

	if got := g.ExperienceReasoning(Signals{ResumeText: "retail cashier", Years: 1}); !strings.Contains(got, "retail") {
		t.Fatalf("expected retail-specific reasoning, got %q", got)
	}
	if got := g.ExperienceReasoning(Signals{ResumeText: "wrote software", Years: 4}); !strings.Contains(got, "4 years") {
		t.Fatalf("expected years in reasoning, got %q", got)
	}
	if got := g.SkillsReasoning(Signals{Coverage: 85}); !strings.Contains(got, "Excellent") {
		t.Fatalf("expected excellent wording for high coverage, got %q", got)
	}
	if got := g.SkillsReasoning(Signals{Coverage: 30}); !strings.Contains(got, "Partial") {
		t.Fatalf("expected partial wording for low coverage, got %q", got)
	}
	if got := g.EducationReasoning(50); !strings.Contains(got, "could be stronger") {
		t.Fatalf("unexpected education reasoning: %q", got)
	}
	if got := g.AchievementsReasoning(80); !strings.Contains(got, "strong achievements") {
		t.Fatalf("unexpected achievements reasoning: %q", got)
	}
}

func TestImprovementsBriefResume(t *testing.T) {
	g := newGenerator()

	got := g.Improvements("professional summary: increased sales and managed the team")
	if len(got) != 1 {
		t.Fatalf("expected only the brevity improvement, got %v", got)
	}
	if got[0].Category != "Content" {
		t.Fatalf("expected Content category, got %q", got[0].Category)
	}
}

func TestImprovementsAllFlags(t *testing.T) {
	g := newGenerator()

	got := g.Improvements("short text")
	if len(got) != 4 {
		t.Fatalf("expected all four improvements for a bare resume, got %d", len(got))
	}
}

func TestSkillGaps(t *testing.T) {
	g := newGenerator()

	sig := Signals{
		JobSkills:       []string{"programming", "healthcare"},
		CandidateSkills: []string{"programming"},
	}
	got := g.SkillGaps(sig)
	if len(got) != 1 {
		t.Fatalf("expected one gap entry, got %v", got)
	}
	if got[0].Status != "partial" || !strings.Contains(got[0].Suggestion, "healthcare") {
		t.Fatalf("unexpected gap entry: %+v", got[0])
	}

	covered := Signals{
		JobSkills:       []string{"programming"},
		CandidateSkills: []string{"programming"},
	}
	if got := g.SkillGaps(covered); len(got) != 0 {
		t.Fatalf("expected no gaps when fully covered, got %v", got)
	}
}

func TestKeywordBuckets(t *testing.T) {
	g := newGenerator()

	sig := Signals{
		ResumeText:      "I wrote javascript programs",
		JobText:         "Looking for javascript programming and healthcare experience",
		JobSkills:       []string{"programming", "healthcare"},
		CandidateSkills: []string{"programming"},
	}
	got := g.Keywords(sig)

	if len(got.Missing) != 1 || got.Missing[0] != "healthcare" {
		t.Fatalf("unexpected missing bucket: %v", got.Missing)
	}
	if len(got.Strong) != 1 || got.Strong[0] != "programming" {
		t.Fatalf("unexpected strong bucket: %v", got.Strong)
	}
}

func TestATSScoreStrongResume(t *testing.T) {
	g := newGenerator()

	resume := `John Doe
john.doe@mail.com | 555-123-4567

Experience
- Sales Associate, Shop Co, 2021 to 2023
- Managed inventory and led a small crew
- Improved restock time and assisted 40 customers per shift

Education
- High school diploma, 2020

Skills
- Customer service, cash handling, teamwork
` + strings.Repeat("Additional detail about responsibilities and results. ", 10)

	score := g.ATSScore(resume)
	if score < 80 {
		t.Fatalf("expected strong resume to score at least 80, got %d", score)
	}
	if recs := g.ATSRecommendations(resume, score); len(recs) != 0 {
		t.Fatalf("expected no recommendations at %d, got %v", score, recs)
	}
}

func TestATSScoreBareResume(t *testing.T) {
	g := newGenerator()

	resume := "i worked at a shop"
	score := g.ATSScore(resume)
	if score >= 50 {
		t.Fatalf("expected bare resume to score low, got %d", score)
	}

	recs := g.ATSRecommendations(resume, score)
	if len(recs) == 0 {
		t.Fatalf("expected recommendations for low score")
	}
	found := false
	for _, r := range recs {
		if r == "Add an Experience section" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected experience-section recommendation, got %v", recs)
	}
}
