package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumefit-backend/internal/analyzer"
	"resumefit-backend/internal/services/health"
	"resumefit-backend/internal/shared/server/respond"
)

func registerRoutes(r *gin.Engine, healthSvc *health.Service, analysisHandler *analyzer.Handler) {
	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})

	analysisHandler.RegisterRoutes(api)
}
