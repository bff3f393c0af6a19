package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/vk/infographgo/internal/config"
	"github.com/vk/infographgo/internal/executor"
	"github.com/vk/infographgo/internal/fsutil"
	"github.com/vk/infographgo/internal/source"
	"github.com/vk/infographgo/modules/paper2any"
)

// Files the hard-fail steps persist their identifiers to, so a later manual
// session (chat, cleanup) can pick them up.
const (
	notebookIDFile = "notebook-id.txt"
	sourceIDFile   = "source-id.txt"
)

// buildSteps assembles the ordered step list for one run. The first two
// steps are hard-fail; everything after them is soft-fail.
func (a *App) buildSteps(doc *source.Document, state *runState) []executor.Step {
	steps := []executor.Step{
		{
			ID:          "create-notebook",
			Description: "Creating notebook",
			Mode:        executor.HardFail,
			Run: func(ctx context.Context) error {
				id, err := a.notebook.Create(ctx, a.plan.Notebook.Title)
				if err != nil {
					return err
				}
				state.NotebookID = id
				return fsutil.WriteText(filepath.Join(a.config.OutputDir, notebookIDFile), id)
			},
		},
		{
			ID:          "add-source",
			Description: "Adding source document",
			Mode:        executor.HardFail,
			Run: func(ctx context.Context) error {
				id, err := a.notebook.AddSource(ctx, state.NotebookID, doc.Path)
				if err != nil {
					return err
				}
				state.SourceID = id
				return fsutil.WriteText(filepath.Join(a.config.OutputDir, sourceIDFile), id)
			},
		},
		{
			ID:          "wait-processing",
			Description: "Waiting for source processing",
			Mode:        executor.SoftFail,
			Run: func(ctx context.Context) error {
				return sleep(ctx, a.config.WaitForProcessing)
			},
		},
	}

	for _, artifact := range a.plan.Artifacts {
		steps = append(steps, a.artifactStep(artifact, state))
	}

	if a.plan.Audio != nil && !a.config.SkipAudio {
		steps = append(steps, executor.Step{
			ID:          "audio-overview",
			Description: "Creating audio overview",
			Mode:        executor.SoftFail,
			Run: func(ctx context.Context) error {
				return a.notebook.AudioCreate(ctx, state.NotebookID, a.plan.Audio.Instructions)
			},
		})
	}

	if a.config.WithPaper2Any {
		for _, render := range a.plan.Renders {
			steps = append(steps, a.renderStep(render))
		}
	}

	return steps
}

// artifactStep produces the soft-fail step generating one markdown artifact.
func (a *App) artifactStep(artifact *config.Artifact, state *runState) executor.Step {
	return executor.Step{
		ID:          "generate-" + artifact.Name,
		Description: "Generating " + artifact.Description,
		Mode:        executor.SoftFail,
		Run: func(ctx context.Context) error {
			output, err := a.notebook.Generate(ctx, artifact.Command, state.NotebookID, state.SourceID, artifact.WithSource)
			if err != nil {
				return err
			}
			return fsutil.WriteText(filepath.Join(a.config.OutputDir, artifact.File), output)
		},
	}
}

// renderStep produces the soft-fail step rendering one visual asset. The
// step records a skip when the upstream artifact is missing or empty.
func (a *App) renderStep(render *config.Render) executor.Step {
	return executor.Step{
		ID:          "render-" + render.Name,
		Description: "Rendering " + render.Name + " (" + render.Mode + ")",
		Mode:        executor.SoftFail,
		Run: func(ctx context.Context) error {
			inputPath := filepath.Join(a.config.OutputDir, render.Input)
			if !source.NonEmpty(inputPath) {
				return fmt.Errorf("%w: upstream artifact %s is empty or missing", executor.ErrSkip, render.Input)
			}

			absInput, err := filepath.Abs(inputPath)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", inputPath, err)
			}
			outDir, err := filepath.Abs(filepath.Join(a.config.OutputDir, render.OutDir))
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", render.OutDir, err)
			}
			if err := fsutil.EnsureDir(outDir); err != nil {
				return err
			}

			return a.renderer.Render(ctx, paper2any.Job{
				Input:    absInput,
				Mode:     render.Mode,
				Style:    render.Style,
				Aspect:   render.Aspect,
				Language: render.Language,
				OutDir:   outDir,
			})
		},
	}
}

// sleep blocks for d or until the context is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
