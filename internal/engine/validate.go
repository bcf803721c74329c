package engine

import (
	"fmt"

	"github.com/sells-group/advisor-cli/internal/model"
)

// ValidateSubmission is the single set of intake validation rules, shared by
// every engine so the rules cannot drift between implementations.
func ValidateSubmission(sub *model.Submission) error {
	if sub == nil {
		return model.NewValidationError("submission is nil")
	}

	var problems []string

	for _, c := range model.Competencies {
		ev, ok := sub.Evidence[c]
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: evidence missing", c))
			continue
		}
		if ev.SelfRating < 1 || ev.SelfRating > 5 {
			problems = append(problems, fmt.Sprintf("%s: rating %d outside 1-5", c, ev.SelfRating))
		}
		if len(ev.Evidence) < model.MinEvidenceLength {
			problems = append(problems, fmt.Sprintf("%s: evidence %d chars, need %d",
				c, len(ev.Evidence), model.MinEvidenceLength))
		}
	}

	if sub.CapitalAvailable <= 0 {
		problems = append(problems, "capital_available must be positive")
	}
	if sub.LoanAmount < 0 {
		problems = append(problems, "loan_amount cannot be negative")
	}
	if sub.MinAnnualIncome < 0 {
		problems = append(problems, "min_annual_income cannot be negative")
	}

	if len(problems) > 0 {
		return model.NewValidationError(problems...)
	}
	return nil
}
