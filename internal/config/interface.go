package config

import "context"

// Loader is the interface for a format-specific plan loader.
type Loader interface {
	// Load reads a plan from the given path and translates it into the
	// format-agnostic model. An empty path selects the loader's built-in
	// default plan.
	Load(ctx context.Context, path string) (*Model, error)
}
