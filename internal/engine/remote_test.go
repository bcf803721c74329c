package engine

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/pkg/anthropic"
)

type fakePerplexity struct {
	response string
	err      error
	prompts  []string
}

func (f *fakePerplexity) Complete(_ context.Context, _, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeAnthropic struct {
	response *anthropic.MessageResponse
	err      error
	requests []anthropic.MessageRequest
}

func (f *fakeAnthropic) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func TestSonarUnavailable(t *testing.T) {
	e := NewSonarEngine(&fakePerplexity{}, false)

	_, err := e.Process(context.Background(), validSubmission())
	var uerr *EngineUnavailableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, SonarID, uerr.Engine)
}

func TestSonarRejectsInvalidSubmission(t *testing.T) {
	fake := &fakePerplexity{response: sampleCompletion}
	e := NewSonarEngine(fake, true)

	sub := validSubmission()
	sub.CapitalAvailable = 0

	_, err := e.Process(context.Background(), sub)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, fake.prompts, "no completion call for invalid input")
}

func TestSonarCompletionError(t *testing.T) {
	e := NewSonarEngine(&fakePerplexity{err: eris.New("boom")}, true)

	_, err := e.Process(context.Background(), validSubmission())
	var aerr *AnalysisError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, SonarID, aerr.Engine)
}

func TestSonarProcessParsedCompletion(t *testing.T) {
	fake := &fakePerplexity{response: sampleCompletion}
	e := NewSonarEngine(fake, true)

	result, err := e.Process(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, SonarID, result.Engine)
	assert.False(t, result.Degraded)
	assert.Equal(t, model.CompetencyOperationsSystems, result.Archetype.Competency)
	assert.Equal(t, "The Systems Builder", result.Archetype.Title)
	assert.Contains(t, result.NarrativeThesis, "messy back-office processes")
	require.Len(t, result.IndustryMatches, 3)

	// Financial parameters come from the local model, not the completion.
	assert.InDelta(t, 1000000, result.Financial.MaxPurchasePrice, 1e-9)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "Capital available: $100000")
}

func TestSonarFallsBackOnUnparseableCompletion(t *testing.T) {
	e := NewSonarEngine(&fakePerplexity{response: "I cannot answer in that format."}, true)

	result, err := e.Process(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, SonarID, result.Engine)
	assert.Equal(t, fallbackConfidence, result.Confidence)
	assert.NotEmpty(t, result.NarrativeThesis, "fallback carries the local narrative")
	assert.NotEmpty(t, result.Buybox)
}

func TestClaudeUnavailableWithoutKey(t *testing.T) {
	e := NewClaudeEngine(&fakeAnthropic{}, "claude-sonnet-4-5-20250929", false)
	assert.False(t, e.Available())

	_, err := e.Process(context.Background(), validSubmission())
	var uerr *EngineUnavailableError
	require.ErrorAs(t, err, &uerr)
}

func TestClaudeProcessSendsConfiguredModel(t *testing.T) {
	fake := &fakeAnthropic{response: &anthropic.MessageResponse{
		Model: "claude-sonnet-4-5-20250929",
		Text:  sampleCompletion,
		Usage: anthropic.TokenUsage{InputTokens: 900, OutputTokens: 400},
	}}
	e := NewClaudeEngine(fake, "claude-sonnet-4-5-20250929", true)

	result, err := e.Process(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, ClaudeID, result.Engine)
	assert.Equal(t, model.CompetencyOperationsSystems, result.Archetype.Competency)

	require.Len(t, fake.requests, 1)
	assert.Equal(t, "claude-sonnet-4-5-20250929", fake.requests[0].Model)
	assert.Equal(t, systemPrompt, fake.requests[0].System)
	require.Len(t, fake.requests[0].Messages, 1)
	assert.Equal(t, "user", fake.requests[0].Messages[0].Role)
}
