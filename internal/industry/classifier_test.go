package industry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

func TestClassify_EmptyTextReturnsFallback(t *testing.T) {
	got := Classify("")
	require.Len(t, got, 1)
	assert.Equal(t, model.IndustryMatch{
		Industry:   "service",
		Score:      3.0,
		Confidence: 0.3,
	}, got[0])
}

func TestClassify_NoSignalReturnsFallback(t *testing.T) {
	got := Classify("lorem ipsum dolor sit amet")
	require.Len(t, got, 1)
	assert.Equal(t, "service", got[0].Industry)
	assert.Equal(t, 0.3, got[0].Confidence)
}

func TestClassify_PrimaryTermsOutweighContext(t *testing.T) {
	// "hvac" (primary, 3) should rank home services over an industry matched
	// only through context terms.
	got := Classify("I want an hvac business")
	require.NotEmpty(t, got)
	assert.Equal(t, "home services", got[0].Industry)
	assert.GreaterOrEqual(t, got[0].Score, 3.0)
}

func TestClassify_RankedAndCapped(t *testing.T) {
	text := "I love saas software platforms, ecommerce brands on amazon and shopify, " +
		"healthcare clinics, restaurant and catering groups, trucking and freight " +
		"logistics, manufacturing plants, and construction builders"
	got := Classify(text)

	assert.LessOrEqual(t, len(got), 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score, "results must be sorted")
	}
	for _, m := range got {
		assert.GreaterOrEqual(t, m.Confidence, 0.0)
		assert.LessOrEqual(t, m.Confidence, 1.0)
		assert.InDelta(t, min(1.0, m.Score/10), m.Confidence, 0.0001)
	}
}

func TestClassify_ConfidenceCappedAtOne(t *testing.T) {
	// Hit every tier of software heavily.
	text := "saas software application platform subscription cloud automation " +
		"development digital tech startup data"
	got := Classify(text)
	require.NotEmpty(t, got)
	assert.Equal(t, "software", got[0].Industry)
	assert.Equal(t, 1.0, got[0].Confidence)
	assert.Greater(t, got[0].Score, 10.0)
}

func TestClassify_Deterministic(t *testing.T) {
	text := "fitness studio with personal training and gym memberships"
	first := Classify(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify(text))
	}
}

func TestNames_SortedAndStable(t *testing.T) {
	names := Names()
	assert.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}
