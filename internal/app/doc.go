// Package app wires the pipeline together: it owns the logger, the loaded
// plan, the tool registry, and the run lifecycle from preflight through the
// final report.
package app
