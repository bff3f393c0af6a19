package hcl

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/infographgo/internal/config"
	"github.com/vk/infographgo/internal/ctxlog"
)

//go:embed default.hcl
var defaultPlan []byte

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// planSchema lists the top-level blocks a plan file may contain.
var planSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "variables"},
		{Type: "notebook"},
		{Type: "audio"},
		{Type: "artifact", LabelNames: []string{"name"}},
		{Type: "render", LabelNames: []string{"name"}},
	},
}

type notebookBlock struct {
	Title string `hcl:"title"`
}

type audioBlock struct {
	Instructions string `hcl:"instructions"`
}

type artifactBlock struct {
	File        string `hcl:"file"`
	Command     string `hcl:"command"`
	Description string `hcl:"description,optional"`
	Use         string `hcl:"use,optional"`
	WithSource  bool   `hcl:"with_source,optional"`
}

type renderBlock struct {
	Input    string `hcl:"input"`
	Mode     string `hcl:"mode"`
	Style    string `hcl:"style,optional"`
	Aspect   string `hcl:"aspect,optional"`
	Language string `hcl:"language,optional"`
	Out      string `hcl:"out"`
}

// Load reads a plan file and translates it into the format-agnostic model.
// An empty path selects the embedded default plan, which reproduces the
// original investment-infographic recipe.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	src := defaultPlan
	name := "default.hcl"
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
		}
		src = data
		name = path
	}
	logger.Debug("HCL plan loader started.", "file", name)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan %s: %w", name, diags)
	}

	content, diags := file.Body.Content(planSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plan %s: %w", name, diags)
	}

	// First pass: evaluate the variables block so later blocks can reference
	// its attributes as var.<name>.
	evalCtx, err := l.buildEvalContext(content)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}
	for _, block := range content.Blocks {
		switch block.Type {
		case "variables":
			// already handled
		case "notebook":
			var nb notebookBlock
			if diags := gohcl.DecodeBody(block.Body, evalCtx, &nb); diags.HasErrors() {
				return nil, fmt.Errorf("invalid notebook block: %w", diags)
			}
			model.Notebook = config.Notebook{Title: nb.Title}
		case "audio":
			var au audioBlock
			if diags := gohcl.DecodeBody(block.Body, evalCtx, &au); diags.HasErrors() {
				return nil, fmt.Errorf("invalid audio block: %w", diags)
			}
			model.Audio = &config.Audio{Instructions: au.Instructions}
		case "artifact":
			var art artifactBlock
			if diags := gohcl.DecodeBody(block.Body, evalCtx, &art); diags.HasErrors() {
				return nil, fmt.Errorf("invalid artifact block %q: %w", block.Labels[0], diags)
			}
			model.Artifacts = append(model.Artifacts, &config.Artifact{
				Name:        block.Labels[0],
				File:        art.File,
				Command:     art.Command,
				Description: art.Description,
				Use:         art.Use,
				WithSource:  art.WithSource,
			})
		case "render":
			var r renderBlock
			if diags := gohcl.DecodeBody(block.Body, evalCtx, &r); diags.HasErrors() {
				return nil, fmt.Errorf("invalid render block %q: %w", block.Labels[0], diags)
			}
			model.Renders = append(model.Renders, &config.Render{
				Name:     block.Labels[0],
				Input:    r.Input,
				Mode:     r.Mode,
				Style:    r.Style,
				Aspect:   r.Aspect,
				Language: r.Language,
				OutDir:   r.Out,
			})
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL plan loading complete.",
		"artifacts", len(model.Artifacts),
		"renders", len(model.Renders),
		"audio", model.Audio != nil,
	)
	return model, nil
}

// buildEvalContext evaluates the optional variables block into an
// hcl.EvalContext exposing them under the var object.
func (l *Loader) buildEvalContext(content *hcl.BodyContent) (*hcl.EvalContext, error) {
	vars := make(map[string]cty.Value)
	for _, block := range content.Blocks {
		if block.Type != "variables" {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid variables block: %w", diags)
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid variable %q: %w", name, diags)
			}
			vars[name] = val
		}
	}
	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	if len(vars) > 0 {
		evalCtx.Variables["var"] = cty.ObjectVal(vars)
	}
	return evalCtx, nil
}
