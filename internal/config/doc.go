// Package config defines the format-agnostic pipeline plan model and the
// Loader interface implemented by format-specific loaders (currently HCL).
// The rest of the application only ever sees these types.
package config
