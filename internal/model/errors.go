package model

import "strings"

// ValidationError reports missing or malformed submission input. It is
// always surfaced to the caller and never retried.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + strings.Join(e.Problems, "; ")
}

// NewValidationError builds a ValidationError from individual problems.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}
