// Package llm abstracts the optional remote scorer. A provider returns raw
// model output that should contain an analysis-result JSON object, possibly
// wrapped in prose; the orchestrator extracts and validates it. Provider
// failures are recoverable by design: the heuristic pipeline takes over.
package llm

import "context"

// Client abstracts remote scoring providers.
type Client interface {
	// Score runs one remote scoring attempt. No retries; callers treat any
	// error as a signal to fall back.
	Score(ctx context.Context, input ScoreInput) ([]byte, error)
}

// ScoreInput carries the two texts to score.
type ScoreInput struct {
	ResumeText     string
	JobDescription string
}
