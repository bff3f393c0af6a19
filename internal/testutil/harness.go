// Package testutil provides fake command runners for exercising the pipeline
// without real external binaries.
package testutil

import (
	"context"
	"fmt"
)

// Call records one external invocation observed by a fake runner.
type Call struct {
	Bin  string
	Args []string
}

// FakeNlm is a scripted stand-in for the nlm binary. Outputs and Errs are
// keyed by subcommand (the first argument). Unknown subcommands succeed with
// a deterministic placeholder payload.
type FakeNlm struct {
	Calls   []Call
	Outputs map[string]string
	Errs    map[string]error
}

// Run implements the nlm.RunFunc signature.
func (f *FakeNlm) Run(ctx context.Context, bin string, args ...string) (string, error) {
	f.Calls = append(f.Calls, Call{Bin: bin, Args: args})

	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}
	if err, ok := f.Errs[sub]; ok {
		return "", err
	}
	if out, ok := f.Outputs[sub]; ok {
		return out, nil
	}
	return fmt.Sprintf("generated content for %s", sub), nil
}

// CommandLine reconstructs the i-th recorded invocation for assertions.
func (f *FakeNlm) CommandLine(i int) []string {
	return append([]string{f.Calls[i].Bin}, f.Calls[i].Args...)
}

// FakeRenderer is a scripted stand-in for the paper2any executable.
type FakeRenderer struct {
	Calls []Call
	Dirs  []string
	Err   error
}

// Run implements the paper2any.RunFunc signature.
func (f *FakeRenderer) Run(ctx context.Context, dir, bin string, args ...string) error {
	f.Calls = append(f.Calls, Call{Bin: bin, Args: args})
	f.Dirs = append(f.Dirs, dir)
	return f.Err
}
