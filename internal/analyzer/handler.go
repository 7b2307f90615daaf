package analyzer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resumefit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyzer.
type Handler struct {
	Svc *Analyzer
}

// NewHandler constructs a Handler.
func NewHandler(svc *Analyzer) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
}

func (h *Handler) createAnalysis(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resumeText and jobDescriptionText are required", nil)
		return
	}

	analysisID := uuid.NewString()
	c.Set("analysisId", analysisID)

	outcome, err := h.Svc.Analyze(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to analyze resume", nil)
		}
		return
	}

	c.Header("X-Analysis-Id", analysisID)
	c.Header("X-Analysis-Source", outcome.Source)
	if outcome.Fallback {
		c.Header("X-Analysis-Fallback", "true")
	}
	respond.OK(c, outcome.Result)
}
