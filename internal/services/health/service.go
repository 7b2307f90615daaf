// Package health exposes liveness information for the API.
package health

// Service encapsulates health-related checks.
type Service struct {
	scorer string
}

// NewService constructs a health service reporting the active scorer source.
func NewService(scorer string) *Service {
	if scorer == "" {
		scorer = "heuristic"
	}
	return &Service{scorer: scorer}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":     true,
		"scorer": s.scorer,
	}
}
