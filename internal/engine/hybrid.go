package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/model"
)

// HybridID identifies the hybrid engine.
const HybridID = "hybrid"

// HybridEngine combines deterministic local scoring with remote narrative
// generation: archetype, industries, financial parameters, and confidence
// come from the heuristic pipeline, while the thesis and buybox prose come
// from a remote completion. If the remote side is unavailable or fails, the
// fully local result is returned marked degraded.
type HybridEngine struct {
	remote *completionEngine
}

// NewHybridEngine builds the hybrid engine on top of a remote completion
// engine. The remote engine's availability gates the narrative half only.
func NewHybridEngine(remote Engine) *HybridEngine {
	ce, _ := remote.(*completionEngine)
	return &HybridEngine{remote: ce}
}

func (e *HybridEngine) ID() string   { return HybridID }
func (e *HybridEngine) Name() string { return "Hybrid Scoring + AI Narrative" }
func (e *HybridEngine) Remote() bool { return true }

// Available is always true: the hybrid engine degrades to fully local
// output when its remote half is not configured.
func (e *HybridEngine) Available() bool { return true }

func (e *HybridEngine) Validate(sub *model.Submission) error {
	return ValidateSubmission(sub)
}

func (e *HybridEngine) Process(ctx context.Context, sub *model.Submission) (*model.AnalysisResult, error) {
	if err := e.Validate(sub); err != nil {
		return nil, err
	}

	result, err := localAnalysis(sub)
	if err != nil {
		return nil, &AnalysisError{Engine: e.ID(), Err: err}
	}
	result.Engine = e.ID()

	if e.remote == nil || !e.remote.Available() {
		result.Degraded = true
		return result, nil
	}

	completion, err := e.remote.complete(ctx, systemPrompt, BuildPrompt(sub))
	if err != nil {
		zap.L().Warn("engine: hybrid narrative completion failed, keeping local narrative",
			zap.String("engine", e.ID()),
			zap.Error(err),
		)
		result.Degraded = true
		return result, nil
	}

	parsed, err := ParseCompletion(completion)
	if err != nil {
		zap.L().Warn("engine: hybrid completion parse failed, keeping local narrative",
			zap.String("engine", e.ID()),
			zap.Error(err),
		)
		result.Degraded = true
		return result, nil
	}

	result.NarrativeThesis = parsed.Thesis
	result.Buybox = parsed.Buybox
	return result, nil
}
