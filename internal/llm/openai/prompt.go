package openai

import "fmt"

// promptTemplate mirrors the analysis-result JSON shape so a compliant model
// answers in the exact wire contract. Scores are illustrative.
const promptTemplate = `Analyze this resume against the job description and provide a comprehensive assessment.

RESUME:
%s

JOB DESCRIPTION:
%s

Respond with a single JSON object in exactly this format:
{
  "overallScore": 85,
  "experience": {"score": 90, "reasoning": "Strong relevant experience with 5+ years in similar roles"},
  "skills": {"score": 80, "reasoning": "Good alignment with required skills, some gaps in specific technologies"},
  "education": {"score": 85, "reasoning": "Strong educational background with relevant qualifications"},
  "achievements": {"score": 75, "reasoning": "Demonstrates solid achievements and impact"},
  "strengths": ["Strong technical background"],
  "weaknesses": ["Limited experience with cloud platforms"],
  "riskFactors": ["May require additional training"],
  "rewardFactors": ["Could bring innovative solutions"],
  "recommendations": ["Consider for interview"],
  "summary": "One-paragraph overall assessment.",
  "resumeImprovements": [{"category": "Format", "issue": "Missing quantifiable metrics", "suggestion": "Add specific numbers to achievements"}],
  "skillGaps": [{"skill": "Cloud Computing", "status": "missing", "suggestion": "Consider adding AWS or Azure certification"}],
  "atsScore": 75,
  "atsRecommendations": ["Use standard section headers"],
  "keywordSuggestions": {"missing": ["cloud computing"], "weak": ["project management"], "strong": ["customer service"]}
}`

func buildPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(promptTemplate, resumeText, jobDescription)
}
