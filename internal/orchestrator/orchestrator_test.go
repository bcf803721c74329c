package orchestrator

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/engine"
	"github.com/sells-group/advisor-cli/internal/model"
)

type stubEngine struct {
	id     string
	result *model.AnalysisResult
	err    error
}

func (s *stubEngine) ID() string                                { return s.id }
func (s *stubEngine) Name() string                              { return "Stub " + s.id }
func (s *stubEngine) Remote() bool                              { return false }
func (s *stubEngine) Available() bool                           { return true }
func (s *stubEngine) Validate(_ *model.Submission) error        { return nil }
func (s *stubEngine) Process(_ context.Context, _ *model.Submission) (*model.AnalysisResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	r := *s.result
	r.Engine = s.id
	return &r, nil
}

func stubResult(arch model.Competency, overall float64, industries ...string) *model.AnalysisResult {
	matches := make([]model.IndustryMatch, 0, len(industries))
	for _, ind := range industries {
		matches = append(matches, model.IndustryMatch{Industry: ind, Score: 5, Confidence: 0.5})
	}
	return &model.AnalysisResult{
		Archetype:       model.Archetype{Competency: arch, Title: "Stub"},
		IndustryMatches: matches,
		Confidence:      model.ConfidenceScores{Overall: overall},
	}
}

func newTestOrchestrator(engines ...engine.Engine) *Orchestrator {
	reg := engine.NewRegistry()
	for _, e := range engines {
		reg.Register(e)
	}
	return New(reg)
}

func TestListEnginesSorted(t *testing.T) {
	o := newTestOrchestrator(
		&stubEngine{id: "beta"},
		&stubEngine{id: "alpha"},
	)

	descs := o.ListEngines()
	require.Len(t, descs, 2)
	assert.Equal(t, "alpha", descs[0].ID)
	assert.Equal(t, "beta", descs[1].ID)
}

func TestRunOneUnknownEngine(t *testing.T) {
	o := newTestOrchestrator()

	_, err := o.RunOne(context.Background(), "nope", &model.Submission{})
	var oerr *OrchestrationError
	require.ErrorAs(t, err, &oerr)
	assert.Contains(t, oerr.Error(), "nope")
}

func TestRunOne(t *testing.T) {
	o := newTestOrchestrator(&stubEngine{
		id:     "alpha",
		result: stubResult(model.CompetencySalesMarketing, 0.8, "software"),
	})

	result, err := o.RunOne(context.Background(), "alpha", &model.Submission{})
	require.NoError(t, err)
	assert.Equal(t, "alpha", result.Engine)
}

func TestRunManyAllSettled(t *testing.T) {
	o := newTestOrchestrator(
		&stubEngine{id: "a", result: stubResult(model.CompetencySalesMarketing, 0.8, "software")},
		&stubEngine{id: "b", err: eris.New("credentials rejected")},
		&stubEngine{id: "c", result: stubResult(model.CompetencySalesMarketing, 0.7, "software")},
	)

	results, errs := o.RunMany(context.Background(), []string{"a", "b", "c"}, &model.Submission{})

	require.Len(t, results, 2)
	require.Len(t, errs, 1)
	assert.Equal(t, "a", results["a"].Engine)
	assert.Equal(t, "c", results["c"].Engine)
	assert.ErrorContains(t, errs["b"], "credentials rejected")
}

func TestRunManyDefaultsToAllEngines(t *testing.T) {
	o := newTestOrchestrator(
		&stubEngine{id: "a", result: stubResult(model.CompetencyTeamCulture, 0.6, "fitness and wellness")},
		&stubEngine{id: "b", result: stubResult(model.CompetencyTeamCulture, 0.6, "fitness and wellness")},
	)

	results, errs := o.RunMany(context.Background(), nil, &model.Submission{})
	assert.Empty(t, errs)
	assert.Len(t, results, 2)
}

func TestRunManyUnknownEngineLandsInErrors(t *testing.T) {
	o := newTestOrchestrator(
		&stubEngine{id: "a", result: stubResult(model.CompetencySalesMarketing, 0.8, "software")},
	)

	results, errs := o.RunMany(context.Background(), []string{"a", "ghost"}, &model.Submission{})
	assert.Len(t, results, 1)
	var oerr *OrchestrationError
	require.ErrorAs(t, errs["ghost"], &oerr)
}
