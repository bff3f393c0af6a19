package app

import (
	"context"

	"github.com/vk/infographgo/internal/registry"
	"github.com/vk/infographgo/modules/paper2any"
)

// NotebookTool is the contract the pipeline needs from the primary
// content-extraction CLI. *nlm.Tool is the production implementation.
type NotebookTool interface {
	registry.Tool
	Create(ctx context.Context, title string) (string, error)
	AddSource(ctx context.Context, notebookID, path string) (string, error)
	Generate(ctx context.Context, command, notebookID, sourceID string, withSource bool) (string, error)
	AudioCreate(ctx context.Context, notebookID, instructions string) error
}

// RenderTool is the contract the render stage needs from the secondary
// rendering CLI. *paper2any.Renderer is the production implementation.
type RenderTool interface {
	registry.Tool
	Render(ctx context.Context, job paper2any.Job) error
}
