package testutil

import (
	"context"
	"fmt"

	"github.com/vk/infographgo/modules/paper2any"
)

// StubNotebook implements the app.NotebookTool contract with canned results.
type StubNotebook struct {
	NotebookID string
	SourceID   string

	PreflightErr error
	CreateErr    error
	AddSourceErr error
	AudioErr     error

	// GenerateOutputs and GenerateErrs are keyed by subcommand. Commands
	// absent from both succeed with a deterministic placeholder payload.
	GenerateOutputs map[string]string
	GenerateErrs    map[string]error

	GenerateCalls []string
	AudioCalls    int
}

func (s *StubNotebook) Name() string { return "nlm" }

func (s *StubNotebook) Preflight(ctx context.Context) error { return s.PreflightErr }

func (s *StubNotebook) Create(ctx context.Context, title string) (string, error) {
	if s.CreateErr != nil {
		return "", s.CreateErr
	}
	return s.NotebookID, nil
}

func (s *StubNotebook) AddSource(ctx context.Context, notebookID, path string) (string, error) {
	if s.AddSourceErr != nil {
		return "", s.AddSourceErr
	}
	return s.SourceID, nil
}

func (s *StubNotebook) Generate(ctx context.Context, command, notebookID, sourceID string, withSource bool) (string, error) {
	s.GenerateCalls = append(s.GenerateCalls, command)
	if err, ok := s.GenerateErrs[command]; ok {
		return "", err
	}
	if out, ok := s.GenerateOutputs[command]; ok {
		return out, nil
	}
	return fmt.Sprintf("generated content for %s", command), nil
}

func (s *StubNotebook) AudioCreate(ctx context.Context, notebookID, instructions string) error {
	s.AudioCalls++
	return s.AudioErr
}

// StubRenderer implements the app.RenderTool contract with canned results.
type StubRenderer struct {
	PreflightErr error
	RenderErr    error
	Jobs         []paper2any.Job
}

func (s *StubRenderer) Name() string { return "paper2any" }

func (s *StubRenderer) Preflight(ctx context.Context) error { return s.PreflightErr }

func (s *StubRenderer) Render(ctx context.Context, job paper2any.Job) error {
	s.Jobs = append(s.Jobs, job)
	return s.RenderErr
}
