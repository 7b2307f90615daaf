package main

import (
	"log"

	"resumefit-backend/internal/analyzer"
	"resumefit-backend/internal/bootstrap"
	"resumefit-backend/internal/config"
	"resumefit-backend/internal/server"
	"resumefit-backend/internal/services/health"
	"resumefit-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	scorer := "heuristic"
	if cfg.LLMProvider != "" {
		scorer = cfg.LLMProvider
	}
	healthSvc := health.NewService(scorer)

	r := server.NewEngine(cfg, healthSvc, analyzer.NewHandler(app.Analyzer))

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr":   addr,
		"env":    cfg.Env,
		"scorer": scorer,
	})

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
