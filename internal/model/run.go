package model

import "time"

// RunStatus represents the current state of a stored analysis run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run records one (submission, engine) analysis for later inspection
// and export.
type Run struct {
	ID         string          `json:"id"`
	Engine     string          `json:"engine"`
	Submission *Submission     `json:"submission,omitempty"`
	Status     RunStatus       `json:"status"`
	Result     *AnalysisResult `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
