package engine

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/archetype"
	"github.com/sells-group/advisor-cli/internal/finance"
	"github.com/sells-group/advisor-cli/internal/industry"
	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/report"
)

// TraditionalID identifies the local heuristic engine.
const TraditionalID = "traditional"

// LocalEngine runs the full analysis with the deterministic heuristic
// pipeline: archetype scoring, industry classification, financial modeling,
// and report composition. It needs no credentials and is always available.
type LocalEngine struct{}

// NewLocalEngine creates the local heuristic engine.
func NewLocalEngine() *LocalEngine {
	return &LocalEngine{}
}

func (e *LocalEngine) ID() string   { return TraditionalID }
func (e *LocalEngine) Name() string { return "Traditional Heuristic Analysis" }
func (e *LocalEngine) Remote() bool { return false }

func (e *LocalEngine) Available() bool { return true }

func (e *LocalEngine) Validate(sub *model.Submission) error {
	return ValidateSubmission(sub)
}

func (e *LocalEngine) Process(ctx context.Context, sub *model.Submission) (*model.AnalysisResult, error) {
	if err := e.Validate(sub); err != nil {
		return nil, err
	}

	result, err := localAnalysis(sub)
	if err != nil {
		return nil, &AnalysisError{Engine: e.ID(), Err: err}
	}
	result.Engine = e.ID()

	zap.L().Info("engine: local analysis complete",
		zap.String("archetype", string(result.Archetype.Competency)),
		zap.Float64("overall_confidence", result.Confidence.Overall),
	)

	return result, nil
}

// localAnalysis is the deterministic pipeline shared by the local engine,
// the hybrid engine, and the remote parse-failure fallback. The caller is
// responsible for prior validation and for setting the Engine field.
func localAnalysis(sub *model.Submission) (*model.AnalysisResult, error) {
	sel, err := archetype.Score(sub.Evidence)
	if err != nil {
		return nil, err
	}

	matches := industry.Classify(sub.FreeText())
	fin := finance.Compute(sub.CapitalAvailable, sub.LoanAmount, sub.MinAnnualIncome, matches)
	narrative, buybox := report.Compose(sel.Archetype, matches, fin, sub)

	return &model.AnalysisResult{
		Archetype:        sel.Archetype,
		CompetencyScores: sel.Scores,
		IndustryMatches:  matches,
		Financial:        fin,
		Confidence:       localConfidence(sel, matches, sub),
		NarrativeThesis:  narrative,
		Buybox:           buybox,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}

// localConfidence derives the confidence block from scoring spread, industry
// signal strength, and evidence volume.
func localConfidence(sel *archetype.Selection, matches []model.IndustryMatch, sub *model.Submission) model.ConfidenceScores {
	// Archetype confidence grows with the gap between winner and runner-up.
	var top, second float64
	for _, cs := range sel.Scores {
		if cs.CompositeScore > top {
			second = top
			top = cs.CompositeScore
		} else if cs.CompositeScore > second {
			second = cs.CompositeScore
		}
	}
	archConf := clamp01(0.5 + (top-second)/2)

	indConf := 0.0
	if len(matches) > 0 {
		indConf = matches[0].Confidence
	}

	// Data quality reflects evidence volume relative to a 1000-char target.
	var totalLen int
	for _, ev := range sub.Evidence {
		totalLen += len(ev.Evidence)
	}
	avgLen := float64(totalLen) / float64(len(model.Competencies))
	dataConf := clamp01(avgLen / 1000)

	return model.ConfidenceScores{
		Overall:     round2((archConf + indConf + dataConf) / 3),
		Archetype:   round2(archConf),
		Industry:    round2(indConf),
		DataQuality: round2(dataConf),
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
