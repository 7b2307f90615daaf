// Package server wires middleware and routes into a gin engine.
package server

import (
	"github.com/gin-gonic/gin"

	"resumefit-backend/internal/analyzer"
	"resumefit-backend/internal/config"
	"resumefit-backend/internal/services/health"
	"resumefit-backend/internal/shared/server/middleware"
)

// NewEngine builds the gin engine with middleware and routes registered.
func NewEngine(cfg config.Config, healthSvc *health.Service, analysisHandler *analyzer.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	registerRoutes(r, healthSvc, analysisHandler)
	return r
}

// Addr normalizes the listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
