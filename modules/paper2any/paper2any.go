// Package paper2any wraps the optional diagram and slide renderer. The tool
// lives in its own directory (configured via --paper2any-dir or the
// PAPER2ANY_DIR environment variable) and reads its LLM credentials from
// PAPER2ANY_API_KEY and PAPER2ANY_BASE_URL, which this wrapper passes through
// the child environment untouched.
package paper2any

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vk/infographgo/internal/ctxlog"
)

// EnvDir is the environment variable consulted when --paper2any-dir is unset.
const EnvDir = "PAPER2ANY_DIR"

// binName is the renderer executable expected inside the tool directory.
const binName = "paper2any"

// Job describes one render invocation: turn the markdown file at Input into
// a visual asset under OutDir.
type Job struct {
	Input    string
	Mode     string
	Style    string
	Aspect   string
	Language string
	OutDir   string
}

// RunFunc executes one renderer invocation from inside dir. Injectable for
// tests.
type RunFunc func(ctx context.Context, dir, bin string, args ...string) error

// Renderer is the client for the secondary rendering CLI.
type Renderer struct {
	dir string
	run RunFunc
}

// New returns a Renderer rooted at the given tool directory.
func New(dir string) *Renderer {
	return &Renderer{dir: dir, run: runCommand}
}

// NewWithRunner returns a Renderer whose invocations go through run instead
// of a real subprocess. Used by tests.
func NewWithRunner(dir string, run RunFunc) *Renderer {
	return &Renderer{dir: dir, run: run}
}

// Name implements registry.Tool.
func (r *Renderer) Name() string { return "paper2any" }

// Preflight verifies the tool directory is configured and contains the
// renderer executable.
func (r *Renderer) Preflight(ctx context.Context) error {
	if r.dir == "" {
		return fmt.Errorf("paper2any directory is not configured: set --paper2any-dir or the %s environment variable", EnvDir)
	}
	info, err := os.Stat(r.dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("paper2any directory %s is not usable: set --paper2any-dir or the %s environment variable to the tool's checkout", r.dir, EnvDir)
	}
	if _, err := os.Stat(filepath.Join(r.dir, binName)); err != nil {
		return fmt.Errorf("renderer executable %s not found in %s: %w", binName, r.dir, err)
	}
	ctxlog.FromContext(ctx).Debug("paper2any preflight passed.", "dir", r.dir)
	return nil
}

// Render executes one render job. The input path must already be absolute;
// the renderer runs with the tool directory as its working directory.
func (r *Renderer) Render(ctx context.Context, job Job) error {
	args := []string{
		"--input", job.Input,
		"--mode", job.Mode,
		"--output-dir", job.OutDir,
	}
	if job.Style != "" {
		args = append(args, "--style", job.Style)
	}
	if job.Aspect != "" {
		args = append(args, "--aspect-ratio", job.Aspect)
	}
	if job.Language != "" {
		args = append(args, "--language", job.Language)
	}
	return r.run(ctx, r.dir, filepath.Join(r.dir, binName), args...)
}

// runCommand is the real RunFunc. The renderer chats with an LLM backend, so
// the full parent environment is inherited by the child process.
func runCommand(ctx context.Context, dir, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return fmt.Errorf("%s %s failed: %s", filepath.Base(bin), strings.Join(args, " "), detail)
	}
	return nil
}
