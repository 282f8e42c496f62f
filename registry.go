package validkit

import (
	"fmt"
	"sync"
)

// Factory builds a checker from the extra parameters of a rule declared with
// a Type alias. Factories should fail on malformed parameters rather than
// silently ignore them.
type Factory func(params map[string]any) (Checker, error)

// Registry maps validator type aliases to factories. The zero value is not
// usable; create one with NewRegistry. A Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for an alias.
func (r *Registry) Register(alias string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[alias] = f
}

// Aliases returns the registered alias names, unordered.
func (r *Registry) Aliases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for alias := range r.factories {
		out = append(out, alias)
	}
	return out
}

// build resolves an alias and constructs its checker. Unknown aliases are a
// configuration fault surfaced at materialization time, before any check runs.
func (r *Registry) build(alias string, params map[string]any) (Checker, error) {
	r.mu.RLock()
	f, ok := r.factories[alias]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleType, alias)
	}
	c, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("building %q validator: %w", alias, err)
	}
	return c, nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used by engines that were
// not given one explicitly. The rules package registers the builtin aliases
// here on import.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
