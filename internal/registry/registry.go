package registry

import "context"

// Tool is the interface every external collaborator must implement to be
// registered. Preflight verifies the tool is usable before any step runs.
type Tool interface {
	Name() string
	Preflight(ctx context.Context) error
}

// Registry holds the external tools wired into a single application instance.
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{byName: make(map[string]Tool)}
}

// Add registers a tool. Registering the same name twice replaces the earlier
// entry; the last registration wins.
func (r *Registry) Add(t Tool) {
	if _, exists := r.byName[t.Name()]; exists {
		for i, existing := range r.tools {
			if existing.Name() == t.Name() {
				r.tools[i] = t
				break
			}
		}
	} else {
		r.tools = append(r.tools, t)
	}
	r.byName[t.Name()] = t
}

// Lookup returns the tool registered under name, if any.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Len reports how many tools are registered.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Preflight runs every registered tool's preflight check in registration
// order, failing fast on the first problem.
func (r *Registry) Preflight(ctx context.Context) error {
	for _, t := range r.tools {
		if err := t.Preflight(ctx); err != nil {
			return err
		}
	}
	return nil
}
