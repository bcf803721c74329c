package engine

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/archetype"
	"github.com/sells-group/advisor-cli/internal/finance"
	"github.com/sells-group/advisor-cli/internal/model"
)

// completeFunc performs one text completion across the trust boundary.
type completeFunc func(ctx context.Context, system, prompt string) (string, error)

// completionEngine is the shared remote-engine implementation: prompt
// construction, one completion call, response parsing, and the mandatory
// low-confidence fallback when parsing fails.
type completionEngine struct {
	id        string
	name      string
	available func() bool
	complete  completeFunc
}

func (e *completionEngine) ID() string      { return e.id }
func (e *completionEngine) Name() string    { return e.name }
func (e *completionEngine) Remote() bool    { return true }
func (e *completionEngine) Available() bool { return e.available() }

func (e *completionEngine) Validate(sub *model.Submission) error {
	return ValidateSubmission(sub)
}

func (e *completionEngine) Process(ctx context.Context, sub *model.Submission) (*model.AnalysisResult, error) {
	if !e.Available() {
		return nil, &EngineUnavailableError{Engine: e.id}
	}
	if err := e.Validate(sub); err != nil {
		return nil, err
	}

	completion, err := e.complete(ctx, systemPrompt, BuildPrompt(sub))
	if err != nil {
		return nil, &AnalysisError{Engine: e.id, Err: err}
	}

	parsed, err := ParseCompletion(completion)
	if err != nil {
		// Degrade gracefully: a completion we cannot parse must never fail
		// the request.
		zap.L().Warn("engine: completion parse failed, using fallback",
			zap.String("engine", e.id),
			zap.Error(err),
		)
		return FallbackResult(e.id, sub)
	}

	result, err := buildRemoteResult(e.id, sub, parsed)
	if err != nil {
		return nil, &AnalysisError{Engine: e.id, Err: err}
	}
	return result, nil
}

// buildRemoteResult assembles an AnalysisResult from a parsed completion.
// Financial parameters are always recomputed locally from the submission and
// the parsed industry list; models are not trusted with arithmetic.
func buildRemoteResult(engineID string, sub *model.Submission, parsed *parsedCompletion) (*model.AnalysisResult, error) {
	arch, ok := archetype.Lookup(parsed.Archetype)
	if !ok {
		return nil, eris.Errorf("engine: no archetype for competency %q", parsed.Archetype)
	}

	fin := finance.Compute(sub.CapitalAvailable, sub.LoanAmount, sub.MinAnnualIncome, parsed.Industries)

	return &model.AnalysisResult{
		Archetype:       arch,
		IndustryMatches: parsed.Industries,
		Financial:       fin,
		Confidence:      parsed.Confidence,
		NarrativeThesis: parsed.Thesis,
		Buybox:          parsed.Buybox,
		Engine:          engineID,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

// fallbackConfidence is the fixed low-confidence block attached to degraded
// results.
var fallbackConfidence = model.ConfidenceScores{
	Overall:     0.25,
	Archetype:   0.25,
	Industry:    0.2,
	DataQuality: 0.3,
}

// FallbackResult is the documented degraded result substituted when a
// remote completion cannot be parsed: the deterministic local pipeline
// provides the structure, with confidence pinned low and the result marked
// degraded.
func FallbackResult(engineID string, sub *model.Submission) (*model.AnalysisResult, error) {
	result, err := localAnalysis(sub)
	if err != nil {
		return nil, &AnalysisError{Engine: engineID, Err: err}
	}
	result.Engine = engineID
	result.Confidence = fallbackConfidence
	result.Degraded = true
	return result, nil
}
