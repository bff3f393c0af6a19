package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vk/infographgo/internal/ctxlog"
	"github.com/vk/infographgo/internal/executor"
	"github.com/vk/infographgo/internal/fsutil"
	"github.com/vk/infographgo/internal/report"
	"github.com/vk/infographgo/internal/source"
)

// runState carries the identifiers captured by the hard-fail steps and read
// by everything downstream.
type runState struct {
	NotebookID string
	SourceID   string
}

// Run executes the full pipeline: preflight, ordered steps, report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	// Preflight: source document first, then every registered tool. All of
	// these are fatal and happen before anything is written to disk.
	doc, err := source.Load(a.config.SourcePath)
	if err != nil {
		return err
	}
	a.logger.Debug("Source document loaded.", "path", doc.Path, "title", doc.Title)

	if err := a.registry.Preflight(ctx); err != nil {
		return err
	}
	a.logger.Debug("Tool preflight passed.", "tools", a.registry.Len())

	if err := fsutil.EnsureDir(a.config.OutputDir); err != nil {
		return err
	}
	a.logger.Info("📂 Output directory ready", "dir", a.config.OutputDir)

	state := &runState{}
	steps := a.buildSteps(doc, state)

	a.logger.Info("🚀 Starting pipeline", "steps", len(steps), "source", doc.Path)
	outcomes, err := executor.Run(ctx, steps)
	if err != nil {
		if state.NotebookID != "" {
			a.logger.Error("Notebook ID for manual cleanup", "notebook_id", state.NotebookID)
		}
		return fmt.Errorf("pipeline failed: %w", err)
	}
	a.logger.Info("🏁 Pipeline finished.", "steps", len(outcomes))

	data := report.Data{
		Title:       doc.Title,
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		NotebookID:  state.NotebookID,
		SourceName:  filepath.Base(doc.Path),
		Artifacts:   a.plan.Artifacts,
		Outcomes:    outcomes,
	}
	if a.config.WithPaper2Any {
		data.Renders = a.plan.Renders
	}
	if err := report.WriteIndex(a.config.OutputDir, data); err != nil {
		return err
	}
	a.logger.Info("🧾 Index saved", "file", filepath.Join(a.config.OutputDir, report.IndexFile))

	entries, err := fsutil.MarkdownFiles(a.config.OutputDir)
	if err != nil {
		return err
	}
	report.PrintSummary(a.outW, a.config.OutputDir, state.NotebookID, entries)

	a.logger.Debug("App.Run method finished.")
	return nil
}
