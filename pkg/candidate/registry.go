package candidate

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a fresh candidate instance for one benchmark run.
type Factory func() (Candidate, error)

// Registry maps candidate names to factories. Runs resolve in-process
// candidates by name through a registry; the default registry backs the CLI.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds a named factory. Registering a name twice is an error.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("candidate name is required")
	}
	if factory == nil {
		return fmt.Errorf("candidate factory for %q is nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("candidate %q already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// New instantiates the named candidate.
func (r *Registry) New(name string) (Candidate, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown candidate %q (registered: %v)", name, r.Names())
	}
	return factory()
}

// Names returns the registered candidate names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the process-wide registry used by the CLI.
var Default = NewRegistry()

// Register adds a factory to the default registry.
func Register(name string, factory Factory) error {
	return Default.Register(name, factory)
}
