// Package engine defines the analysis engine contract and its
// implementations. Every engine — local heuristic or remote completion —
// exposes the same validate→process surface and produces the same
// structured AnalysisResult.
package engine

import (
	"context"
	"sort"
	"sync"

	"github.com/sells-group/advisor-cli/internal/model"
)

// Engine is the uniform capability contract for one analysis strategy.
type Engine interface {
	// ID returns the engine identifier used in configuration and dispatch.
	ID() string
	// Name returns the human-readable engine name.
	Name() string
	// Remote reports whether processing crosses a network boundary.
	Remote() bool
	// Available checks configuration and credential presence. No network call.
	Available() bool
	// Validate checks the submission against the shared validation rules.
	Validate(sub *model.Submission) error
	// Process runs the full analysis. Fails with *EngineUnavailableError when
	// not available and *AnalysisError for any processing failure.
	Process(ctx context.Context, sub *model.Submission) (*model.AnalysisResult, error)
}

// Registry holds the available engines, keyed by id. It is constructed
// explicitly and injected; nothing in this package maintains global state.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]Engine
}

// NewRegistry creates an empty engine registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Engine)}
}

// Register adds an engine to the registry, replacing any previous engine
// with the same id.
func (r *Registry) Register(e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[e.ID()] = e
}

// Get returns an engine by id, or nil if not registered.
func (r *Registry) Get(id string) Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.engines[id]
}

// IDs returns all registered engine ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.engines))
	for id := range r.engines {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Describe returns descriptors for all registered engines, sorted by id.
func (r *Registry) Describe() []model.EngineDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.EngineDescriptor, 0, len(r.engines))
	for _, e := range r.engines {
		out = append(out, model.EngineDescriptor{
			ID:        e.ID(),
			Name:      e.Name(),
			Remote:    e.Remote(),
			Available: e.Available(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
