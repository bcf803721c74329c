package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

const sampleCompletion = `ARCHETYPE: Operations Systems
CONFIDENCE: overall=0.82 archetype=0.9 industry=0.7 data_quality=0.75
INDUSTRIES: software (0.8), logistics (0.5), professional services (0.4)
THESIS:
You are best positioned to acquire a business with messy back-office processes.

Your operational background lets you standardize and scale what the seller ran by memory.
BUYBOX:
| Criterion | Target | Rationale |
|---|---|---|
| Industries | software, logistics | strongest keyword alignment |
| Size/SDE | $200k-$333k | affordable range |
`

func TestParseCompletionFull(t *testing.T) {
	parsed, err := ParseCompletion(sampleCompletion)
	require.NoError(t, err)

	assert.Equal(t, model.CompetencyOperationsSystems, parsed.Archetype)
	assert.InDelta(t, 0.82, parsed.Confidence.Overall, 1e-9)
	assert.InDelta(t, 0.9, parsed.Confidence.Archetype, 1e-9)
	assert.InDelta(t, 0.75, parsed.Confidence.DataQuality, 1e-9)

	require.Len(t, parsed.Industries, 3)
	assert.Equal(t, "software", parsed.Industries[0].Industry)
	assert.InDelta(t, 0.8, parsed.Industries[0].Confidence, 1e-9)
	assert.InDelta(t, 8.0, parsed.Industries[0].Score, 1e-9)
	assert.Equal(t, "professional services", parsed.Industries[2].Industry)

	assert.Contains(t, parsed.Thesis, "messy back-office processes")
	assert.Contains(t, parsed.Thesis, "standardize and scale")

	require.Len(t, parsed.Buybox, 2)
	assert.Equal(t, "Industries", parsed.Buybox[0].Criterion)
	assert.Equal(t, "affordable range", parsed.Buybox[1].Rationale)
}

func TestParseCompletionMissingArchetype(t *testing.T) {
	_, err := ParseCompletion(`CONFIDENCE: overall=0.5
INDUSTRIES: software (0.8)
THESIS:
Some thesis.
BUYBOX:
| Industries | software | fit |
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archetype")
}

func TestParseCompletionUnknownArchetype(t *testing.T) {
	_, err := ParseCompletion(`ARCHETYPE: wizardry
INDUSTRIES: software (0.8)
THESIS:
Some thesis.
BUYBOX:
| Industries | software | fit |
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archetype")
}

func TestParseCompletionMissingThesis(t *testing.T) {
	_, err := ParseCompletion(`ARCHETYPE: sales_marketing
INDUSTRIES: software (0.8)
BUYBOX:
| Industries | software | fit |
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thesis")
}

func TestParseCompletionMissingIndustries(t *testing.T) {
	_, err := ParseCompletion(`ARCHETYPE: sales_marketing
THESIS:
Some thesis.
BUYBOX:
| Industries | software | fit |
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "industries")
}

func TestParseCompletionMalformedBuybox(t *testing.T) {
	_, err := ParseCompletion(`ARCHETYPE: sales_marketing
INDUSTRIES: software (0.8)
THESIS:
Some thesis.
BUYBOX:
| only | two |
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buybox")
}

func TestParseConfidenceDefaults(t *testing.T) {
	scores := parseConfidence("overall=0.9")
	assert.InDelta(t, 0.9, scores.Overall, 1e-9)
	assert.InDelta(t, 0.5, scores.Archetype, 1e-9)
	assert.InDelta(t, 0.5, scores.Industry, 1e-9)
	assert.InDelta(t, 0.5, scores.DataQuality, 1e-9)
}

func TestParseConfidenceClamps(t *testing.T) {
	scores := parseConfidence("overall=7.5 archetype=0.3")
	assert.InDelta(t, 1.0, scores.Overall, 1e-9)
	assert.InDelta(t, 0.3, scores.Archetype, 1e-9)
}

func TestParseIndustriesCapsAtFive(t *testing.T) {
	matches := parseIndustries("a (0.9), b (0.8), c (0.7), d (0.6), e (0.5), f (0.4)")
	require.Len(t, matches, 5)
	assert.Equal(t, "e", matches[4].Industry)
}

func TestParseIndustriesSkipsMalformedEntries(t *testing.T) {
	matches := parseIndustries("software (0.8), no-confidence-entry, retail (0.2)")
	require.Len(t, matches, 2)
	assert.Equal(t, "software", matches[0].Industry)
	assert.Equal(t, "retail", matches[1].Industry)
}
