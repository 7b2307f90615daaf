package scoring

import (
	"testing"

	"resumefit-backend/internal/extract"
	"resumefit-backend/internal/taxonomy"
)

func newCalculator() *Calculator {
	return NewCalculator(extract.NewExtractor(taxonomy.Default()))
}

func TestEstimateYearsExplicit(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"plain mention", "5 years of experience in retail", 5},
		{"plus sign", "7+ years experience building services", 7},
		{"label form", "Experience: 3 years", 3},
		{"maximum wins", "2 years of experience early on, then 6 years of experience", 6},
		{"implausible ignored", "30 years of experience", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateYears(tc.text); got != tc.want {
				t.Fatalf("EstimateYears(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestEstimateYearsStructural(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"seniority keyword", "Senior Software Engineer at Acme", 5},
		{"many roles with ranges", "cashier 2018 -- 2020, sales associate 2020 -- 2022, tutor on weekends", 3},
		{"two roles", "cashier and tutor", 2},
		{"single role", "worked as an intern", 1},
		{"recent year only", "volunteered in 2024", 1},
		{"no signals", "hello world", 1},
		{"empty", "", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateYears(tc.text); got != tc.want {
				t.Fatalf("EstimateYears(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestExperienceScore(t *testing.T) {
	calc := newCalculator()

	cases := []struct {
		name   string
		resume string
		job    string
		years  int
		want   int
	}{
		{
			name:   "strong overlap",
			resume: "Retail sales associate, managed a team of five",
			job:    "retail store staff wanted",
			years:  5,
			want:   95, // base 30 + industry 25 + title 10 + years 20 + management 10
		},
		{
			name:   "weak profile",
			resume: "volunteer work",
			job:    "office clerk",
			years:  1,
			want:   35, // base 30 + junior years 5
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := calc.ExperienceScore(tc.resume, tc.job, tc.years); got != tc.want {
				t.Fatalf("ExperienceScore = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExperienceScoreYearsTiers(t *testing.T) {
	calc := newCalculator()
	resume := "volunteer work"
	job := "office clerk"

	prev := -1
	for _, years := range []int{1, 2, 3, 5} {
		got := calc.ExperienceScore(resume, job, years)
		if got <= prev {
			t.Fatalf("expected score to rise with years, got %d after %d", got, prev)
		}
		prev = got
	}
}

func TestSkillsScore(t *testing.T) {
	calc := newCalculator()

	// "programming" hits one taxonomy category and the technical-language
	// bonus: 25 + coverage*0.4 + 1.5 + 10.
	if got := calc.SkillsScore("programming", 0); got != 36 {
		t.Fatalf("expected 36 with zero coverage, got %d", got)
	}
	if got := calc.SkillsScore("programming", 100); got != 76 {
		t.Fatalf("expected 76 with full coverage, got %d", got)
	}
}

func TestSkillsScoreBounds(t *testing.T) {
	calc := newCalculator()

	rich := "programming software technical leadership management teamwork collaboration " +
		"customer service sales marketing project management communication problem solving"
	got := calc.SkillsScore(rich, 100)
	if got < 0 || got > 100 {
		t.Fatalf("score out of range: %d", got)
	}
}

func TestEducationScore(t *testing.T) {
	calc := newCalculator()

	cases := []struct {
		name   string
		resume string
		want   int
	}{
		{"full signals", "Bachelor of Science from State University", 100},
		{"degree only", "holds a diploma", 60},
		{"no signals", "worked at a shop", 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := calc.EducationScore(tc.resume); got != tc.want {
				t.Fatalf("EducationScore(%q) = %d, want %d", tc.resume, got, tc.want)
			}
		})
	}
}

func TestAchievementsScore(t *testing.T) {
	calc := newCalculator()

	if got := calc.AchievementsScore("plain text with nothing special"); got != 40 {
		t.Fatalf("expected base score 40, got %d", got)
	}

	// Two achievement terms (improved, increased) and two quantifiable hits
	// (20%, $5k): 40 + 6 + 4.
	got := calc.AchievementsScore("improved checkout flow by 20%, increased revenue $5k")
	if got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestCountQuantifiable(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"none", "did some work", 0},
		{"percentage", "grew sales 15%", 1},
		{"money", "saved $20k annually", 1},
		{"user count", "supported 300 customers daily", 1},
		{"multiplier", "3x improvement in throughput", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountQuantifiable(tc.text); got != tc.want {
				t.Fatalf("CountQuantifiable(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}
