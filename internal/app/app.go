package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/infographgo/internal/config"
	"github.com/vk/infographgo/internal/ctxlog"
	"github.com/vk/infographgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	plan     *config.Model

	notebook NotebookTool
	renderer RenderTool
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, loaded plan, and
// registered tools. Passing no tools selects the defaults built from the
// config; tests pass stubbed tools instead.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, tools ...registry.Tool) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the pipeline plan into the format-agnostic model.
	plan, err := loader.Load(ctx, appConfig.PlanPath)
	if err != nil {
		// A failure to load the plan is a fatal startup error.
		panic(fmt.Errorf("failed to load pipeline plan: %w", err))
	}
	logger.Debug("Pipeline plan loaded.", "artifacts", len(plan.Artifacts), "renders", len(plan.Renders))

	if len(tools) == 0 {
		tools = defaultTools(appConfig)
	}

	app := &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		plan:   plan,
	}

	reg := registry.New()
	for _, t := range tools {
		reg.Add(t)
		switch tool := t.(type) {
		case NotebookTool:
			app.notebook = tool
		case RenderTool:
			app.renderer = tool
		}
	}
	app.registry = reg
	logger.Debug("All tools registered.", "count", reg.Len())

	if app.notebook == nil {
		// Mismatch between code and wiring, not user input.
		panic("app: nlm tool was not registered")
	}
	if appConfig.WithPaper2Any && app.renderer == nil {
		panic("app: paper2any renderer enabled but not registered")
	}

	return app
}

// Registry returns the application's tool registry. Primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Plan returns the loaded pipeline plan. Primarily for testing.
func (a *App) Plan() *config.Model {
	return a.plan
}
