package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/advisor-cli/internal/model"
)

func TestValidateSubmissionAccepts(t *testing.T) {
	assert.NoError(t, ValidateSubmission(validSubmission()))
}

func TestValidateSubmissionNil(t *testing.T) {
	err := ValidateSubmission(nil)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateSubmissionCollectsAllProblems(t *testing.T) {
	sub := validSubmission()
	delete(sub.Evidence, model.CompetencyTeamCulture)
	ev := sub.Evidence[model.CompetencySalesMarketing]
	ev.SelfRating = 6
	sub.Evidence[model.CompetencySalesMarketing] = ev
	sub.CapitalAvailable = 0
	sub.LoanAmount = -1

	err := ValidateSubmission(sub)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 4)
}

func TestValidateSubmissionShortEvidence(t *testing.T) {
	sub := validSubmission()
	ev := sub.Evidence[model.CompetencyFinanceAnalytics]
	ev.Evidence = "too short"
	sub.Evidence[model.CompetencyFinanceAnalytics] = ev

	err := ValidateSubmission(sub)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Problems, 1)
	assert.Contains(t, verr.Problems[0], "finance_analytics")
}

func TestValidateSubmissionNegativeIncome(t *testing.T) {
	sub := validSubmission()
	sub.MinAnnualIncome = -500

	err := ValidateSubmission(sub)
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Problems[0], "min_annual_income")
}
