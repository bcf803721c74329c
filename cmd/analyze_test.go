package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Archetype: model.Archetype{
			Competency:     model.CompetencyOperationsSystems,
			Title:          "The Systems Builder",
			LeverageThesis: "You standardize what others run by memory.",
		},
		IndustryMatches: []model.IndustryMatch{
			{Industry: "software", Score: 8, Confidence: 0.8},
		},
		Financial: model.FinancialParameters{
			MaxPurchasePrice: 1000000,
			SDEMin:           200000,
			SDEMax:           333333.33,
			IndustryMultiple: 3,
		},
		Confidence:      model.ConfidenceScores{Overall: 0.74},
		NarrativeThesis: "Buy a business with messy back-office processes.",
		Buybox: []model.BuyboxRow{
			{Criterion: "Industries", Target: "software", Rationale: "strong fit"},
		},
		Engine:      "traditional",
		GeneratedAt: time.Now().UTC(),
	}
}

func TestWriteResultText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, sampleResult(), "run-123", false))

	out := buf.String()
	assert.Contains(t, out, "Run: run-123")
	assert.Contains(t, out, "# The Systems Builder")
	assert.Contains(t, out, "Engine: traditional")
	assert.Contains(t, out, "messy back-office processes")
	assert.Contains(t, out, "software (score 8.0, confidence 0.80)")
	assert.Contains(t, out, "Max purchase price: $1000000")
	assert.Contains(t, out, "| Industries | software | strong fit |")
	assert.NotContains(t, out, "degraded")
	assert.NotContains(t, out, "WARNING")
}

func TestWriteResultDegradedAndInverted(t *testing.T) {
	result := sampleResult()
	result.Degraded = true
	result.Financial.RangeInverted = true

	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, result, "", false))

	out := buf.String()
	assert.NotContains(t, out, "Run:")
	assert.Contains(t, out, "(degraded)")
	assert.Contains(t, out, "income target exceeds the affordable SDE range")
}

func TestWriteResultJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, sampleResult(), "run-123", true))

	var decoded model.AnalysisResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "The Systems Builder", decoded.Archetype.Title)
	assert.Equal(t, "traditional", decoded.Engine)
}
