// Package nlm wraps the NotebookLM command-line tool. Every operation is one
// blocking invocation of the nlm binary with stdout captured and trimmed.
package nlm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/vk/infographgo/internal/ctxlog"
)

// DefaultBin is the executable name resolved on PATH.
const DefaultBin = "nlm"

// RunFunc executes one nlm invocation and returns its trimmed stdout. It is
// injectable so tests can observe invocations without a real binary.
type RunFunc func(ctx context.Context, bin string, args ...string) (string, error)

// Tool is the client for the primary content-extraction CLI.
type Tool struct {
	bin string
	run RunFunc
}

// New returns a Tool that invokes the nlm binary found on PATH.
func New() *Tool {
	return &Tool{bin: DefaultBin, run: runCommand}
}

// NewWithRunner returns a Tool whose invocations go through run instead of a
// real subprocess. Used by tests.
func NewWithRunner(run RunFunc) *Tool {
	return &Tool{bin: DefaultBin, run: run}
}

// Name implements registry.Tool.
func (t *Tool) Name() string { return "nlm" }

// Preflight verifies the nlm binary is available on the search path.
func (t *Tool) Preflight(ctx context.Context) error {
	if _, err := exec.LookPath(t.bin); err != nil {
		return fmt.Errorf("%s is not installed (install with: go install github.com/tmc/nlm/cmd/nlm@latest): %w", t.bin, err)
	}
	ctxlog.FromContext(ctx).Debug("nlm preflight passed.", "bin", t.bin)
	return nil
}

// Create creates a new notebook and returns its opaque identifier.
func (t *Tool) Create(ctx context.Context, title string) (string, error) {
	return t.run(ctx, t.bin, "create", title)
}

// AddSource ingests the document at path into the notebook and returns the
// opaque source identifier.
func (t *Tool) AddSource(ctx context.Context, notebookID, path string) (string, error) {
	return t.run(ctx, t.bin, "add", notebookID, path)
}

// Generate runs one content-generation subcommand and returns the produced
// markdown. Commands flagged withSource also receive the source id.
func (t *Tool) Generate(ctx context.Context, command, notebookID, sourceID string, withSource bool) (string, error) {
	args := []string{command, notebookID}
	if withSource {
		args = append(args, sourceID)
	}
	return t.run(ctx, t.bin, args...)
}

// AudioCreate kicks off asynchronous audio-overview generation. The result is
// fetched later with `nlm audio-get`, outside this pipeline.
func (t *Tool) AudioCreate(ctx context.Context, notebookID, instructions string) error {
	_, err := t.run(ctx, t.bin, "audio-create", notebookID, instructions)
	return err
}

// runCommand is the real RunFunc: it executes the binary, waits for it, and
// folds a non-zero exit into an error carrying the trimmed stderr.
func runCommand(ctx context.Context, bin string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%s %s failed: %s", bin, strings.Join(args, " "), detail)
	}
	return strings.TrimSpace(stdout.String()), nil
}
