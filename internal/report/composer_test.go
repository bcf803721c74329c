package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

func sampleInputs() (model.Archetype, []model.IndustryMatch, model.FinancialParameters, *model.Submission) {
	arch := model.Archetype{
		Competency:     model.CompetencyOperationsSystems,
		Title:          "The Systems Builder",
		LeverageThesis: "Target businesses with strong demand but messy operations.",
	}
	matches := []model.IndustryMatch{
		{Industry: "home services", Score: 8, Confidence: 0.8},
		{Industry: "logistics", Score: 5, Confidence: 0.5},
	}
	fin := model.FinancialParameters{
		MaxPurchasePrice: 1000000,
		SDEMin:           200000,
		SDEMax:           333333,
		IndustryMultiple: 3.0,
	}
	sub := &model.Submission{
		RiskTolerance:  model.RiskModerate,
		TimeCommitment: model.TimeFullTime,
		Location:       "denver",
	}
	return arch, matches, fin, sub
}

func TestCompose_RowOrderFixed(t *testing.T) {
	arch, matches, fin, sub := sampleInputs()
	_, rows := Compose(arch, matches, fin, sub)

	want := []string{
		RowIndustries, RowBusinessModel, RowSizeSDE, RowProfitMargin,
		RowGeography, RowOwnerRole, RowTeamStructure, RowYourLeverage, RowRedFlags,
	}
	require.Len(t, rows, len(want))
	for i, w := range want {
		assert.Equal(t, w, rows[i].Criterion)
	}
}

func TestCompose_LeverageRowCarriesArchetype(t *testing.T) {
	arch, matches, fin, sub := sampleInputs()
	_, rows := Compose(arch, matches, fin, sub)

	leverage := rows[7]
	assert.Equal(t, RowYourLeverage, leverage.Criterion)
	assert.Equal(t, arch.Title, leverage.Target)
	assert.Equal(t, arch.LeverageThesis, leverage.Rationale)
}

func TestCompose_NarrativeInterpolation(t *testing.T) {
	arch, matches, fin, sub := sampleInputs()
	narrative, _ := Compose(arch, matches, fin, sub)

	assert.Contains(t, narrative, "The Systems Builder")
	assert.Contains(t, narrative, "$1,000,000")
	assert.Contains(t, narrative, "$200,000")
	assert.Contains(t, narrative, "Home Services, Logistics")
	assert.NotContains(t, narrative, "income requirement exceeds")
}

func TestCompose_InvertedRangeSurfaced(t *testing.T) {
	arch, matches, fin, sub := sampleInputs()
	fin.RangeInverted = true

	narrative, rows := Compose(arch, matches, fin, sub)
	assert.Contains(t, narrative, "income requirement exceeds")
	assert.Contains(t, rows[8].Rationale, "income target exceeds affordable SDE range")
}

func TestCompose_PreferenceTargets(t *testing.T) {
	arch, matches, fin, _ := sampleInputs()

	t.Run("absentee owner", func(t *testing.T) {
		sub := &model.Submission{TimeCommitment: model.TimeAbsentee}
		_, rows := Compose(arch, matches, fin, sub)
		assert.Contains(t, rows[5].Target, "Manager-run")
	})

	t.Run("no location", func(t *testing.T) {
		sub := &model.Submission{}
		_, rows := Compose(arch, matches, fin, sub)
		assert.Contains(t, rows[4].Target, "Flexible")
	})

	t.Run("conservative risk", func(t *testing.T) {
		sub := &model.Submission{RiskTolerance: model.RiskConservative}
		_, rows := Compose(arch, matches, fin, sub)
		assert.Contains(t, rows[1].Target, "Recurring revenue")
	})
}

func TestBuybox_RoundTrip(t *testing.T) {
	arch, matches, fin, sub := sampleInputs()
	_, rows := Compose(arch, matches, fin, sub)

	rendered := RenderBuybox(rows)
	parsed, err := ParseBuybox(rendered)
	require.NoError(t, err)
	assert.Equal(t, rows, parsed)
}

func TestParseBuybox_SkipsHeaderAndProse(t *testing.T) {
	text := strings.Join([]string{
		"Here is your buybox:",
		"",
		"| Criterion | Target | Rationale |",
		"|---|---|---|",
		"| Industries | Home Services | Strong fit |",
		"| Size/SDE | $200,000 to $333,333 SDE | Capital ceiling |",
		"",
		"Good luck with the search.",
	}, "\n")

	rows, err := ParseBuybox(text)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Industries", rows[0].Criterion)
	assert.Equal(t, "$200,000 to $333,333 SDE", rows[1].Target)
}

func TestParseBuybox_RejectsMalformedRows(t *testing.T) {
	_, err := ParseBuybox("| only | two |")
	assert.Error(t, err)

	_, err = ParseBuybox("no table here at all")
	assert.Error(t, err)
}
