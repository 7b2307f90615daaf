// Package bootstrap assembles the analyzer and its dependencies from config.
// It is shared by the API server and the CLI.
package bootstrap

import (
	"fmt"

	"resumefit-backend/internal/analyzer"
	"resumefit-backend/internal/config"
	"resumefit-backend/internal/llm"
	openai "resumefit-backend/internal/llm/openai"
	"resumefit-backend/internal/shared/telemetry"
	"resumefit-backend/internal/taxonomy"
)

// App holds the assembled dependencies.
type App struct {
	Config   config.Config
	Taxonomy *taxonomy.Taxonomy
	Analyzer *analyzer.Analyzer
}

// Build loads the taxonomy and the optional remote scorer, then constructs
// the analyzer. A missing remote provider is not an error; the analyzer runs
// heuristic-only.
func Build(cfg config.Config) (*App, error) {
	tax, err := buildTaxonomy(cfg)
	if err != nil {
		return nil, err
	}

	remote, err := buildRemote(cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Taxonomy: tax,
		Analyzer: analyzer.New(tax, remote),
	}, nil
}

func buildTaxonomy(cfg config.Config) (*taxonomy.Taxonomy, error) {
	if cfg.TaxonomyFile == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.LoadFile(cfg.TaxonomyFile)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	telemetry.Info("taxonomy.loaded", map[string]any{
		"file":       cfg.TaxonomyFile,
		"categories": len(tax.Categories),
	})
	return tax, nil
}

func buildRemote(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.OpenAITimeout)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		return client, nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("bootstrap: unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
