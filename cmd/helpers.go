package main

import (
	"context"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/advisor-cli/internal/engine"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/orchestrator"
	"github.com/sells-group/advisor-cli/internal/store"
	"github.com/sells-group/advisor-cli/pkg/anthropic"
	"github.com/sells-group/advisor-cli/pkg/perplexity"
)

// buildRegistry constructs the engine registry from configuration. Remote
// engines are always registered; missing credentials make them unavailable
// rather than absent, so `engines` can show what a key would unlock.
func buildRegistry() *engine.Registry {
	reg := engine.NewRegistry()
	reg.Register(engine.NewLocalEngine())

	claude := engine.NewClaudeEngine(
		anthropic.NewClient(cfg.Anthropic.Key),
		cfg.Anthropic.Model,
		cfg.Anthropic.Key != "",
	)
	reg.Register(claude)

	reg.Register(engine.NewSonarEngine(
		perplexity.NewClient(cfg.Perplexity.Key,
			perplexity.WithBaseURL(cfg.Perplexity.BaseURL),
			perplexity.WithModel(cfg.Perplexity.Model),
		),
		cfg.Perplexity.Key != "",
	))

	reg.Register(engine.NewHybridEngine(claude))
	return reg
}

func buildOrchestrator() *orchestrator.Orchestrator {
	return orchestrator.New(buildRegistry(),
		orchestrator.WithEngineTimeout(time.Duration(cfg.Engines.TimeoutSecs)*time.Second),
	)
}

// loadSubmission reads a buyer submission from a YAML file.
func loadSubmission(path string) (*model.Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read submission %s", path)
	}

	var sub model.Submission
	if err := yaml.Unmarshal(data, &sub); err != nil {
		return nil, eris.Wrapf(err, "parse submission %s", path)
	}
	return &sub, nil
}

// initStore opens the configured run-history backend.
func initStore(ctx context.Context) (store.Store, error) {
	if err := cfg.Validate("store"); err != nil {
		return nil, err
	}

	switch cfg.Store.Driver {
	case "sqlite":
		return store.NewSQLite(cfg.Store.DatabaseURL)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}
