// Package registry tracks the external command-line tools an application
// instance depends on and runs their preflight checks before execution.
package registry
