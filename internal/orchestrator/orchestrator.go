// Package orchestrator coordinates analysis runs across one or more engines
// and computes cross-engine agreement.
package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/advisor-cli/internal/engine"
	"github.com/sells-group/advisor-cli/internal/model"
)

// DefaultEngineTimeout bounds a single engine's processing time during
// multi-engine runs.
const DefaultEngineTimeout = 120 * time.Second

// OrchestrationError indicates a dispatch problem, as opposed to a failure
// inside an engine.
type OrchestrationError struct {
	Reason string
}

func (e *OrchestrationError) Error() string {
	return fmt.Sprintf("orchestrator: %s", e.Reason)
}

// Orchestrator dispatches submissions to registered engines.
type Orchestrator struct {
	registry      *engine.Registry
	engineTimeout time.Duration
}

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithEngineTimeout overrides the per-engine processing deadline.
func WithEngineTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.engineTimeout = d
	}
}

// New creates an orchestrator over a registry.
func New(registry *engine.Registry, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry:      registry,
		engineTimeout: DefaultEngineTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ListEngines describes all registered engines, sorted by id.
func (o *Orchestrator) ListEngines() []model.EngineDescriptor {
	return o.registry.Describe()
}

// RunOne processes a submission with a single engine.
func (o *Orchestrator) RunOne(ctx context.Context, engineID string, sub *model.Submission) (*model.AnalysisResult, error) {
	e := o.registry.Get(engineID)
	if e == nil {
		return nil, &OrchestrationError{Reason: fmt.Sprintf("unknown engine %q", engineID)}
	}

	ctx, cancel := context.WithTimeout(ctx, o.engineTimeout)
	defer cancel()

	return e.Process(ctx, sub)
}

// RunMany processes a submission with each named engine concurrently. All
// engines are attempted: per-engine failures land in the errors map and never
// abort the batch. Every requested id appears in exactly one of the two maps.
func (o *Orchestrator) RunMany(ctx context.Context, engineIDs []string, sub *model.Submission) (map[string]*model.AnalysisResult, map[string]error) {
	if len(engineIDs) == 0 {
		engineIDs = o.registry.IDs()
	}

	var (
		mu      sync.Mutex
		results = make(map[string]*model.AnalysisResult)
		errs    = make(map[string]error)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, id := range engineIDs {
		g.Go(func() error {
			result, err := o.RunOne(ctx, id, sub)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[id] = err
				zap.L().Warn("orchestrator: engine run failed",
					zap.String("engine", id),
					zap.Error(err),
				)
				return nil
			}
			results[id] = result
			return nil
		})
	}
	_ = g.Wait()

	zap.L().Info("orchestrator: batch complete",
		zap.Int("requested", len(engineIDs)),
		zap.Int("succeeded", len(results)),
		zap.Int("failed", len(errs)),
	)

	return results, errs
}
