package engine

import "fmt"

// EngineUnavailableError indicates missing credentials or a disabled
// feature. Surfaced per engine; it never fails a multi-engine batch.
type EngineUnavailableError struct {
	Engine string
}

func (e *EngineUnavailableError) Error() string {
	return fmt.Sprintf("engine %s is not available (missing credentials or disabled)", e.Engine)
}

// AnalysisError wraps any failure inside a single engine's processing.
type AnalysisError struct {
	Engine string
	Err    error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("engine %s: analysis failed: %v", e.Engine, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
