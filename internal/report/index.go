package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	"github.com/yuin/goldmark"

	"github.com/vk/infographgo/internal/config"
	"github.com/vk/infographgo/internal/executor"
	"github.com/vk/infographgo/internal/fsutil"
)

// IndexFile is the name of the consolidated markdown report.
const IndexFile = "00-index.md"

// IndexHTMLFile is the rendered HTML preview of the report.
const IndexHTMLFile = "00-index.html"

// Data carries everything the index template interpolates.
type Data struct {
	Title       string
	RunID       string
	GeneratedAt time.Time
	NotebookID  string
	SourceName  string
	Artifacts   []*config.Artifact
	Renders     []*config.Render
	Outcomes    []executor.Outcome
}

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"round": func(d time.Duration) time.Duration { return d.Round(time.Millisecond) },
}).Parse(`# {{.Title}} - Generated Content

Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
Run ID: {{.RunID}}
Notebook ID: {{.NotebookID}}
Source: {{.SourceName}}

## Generated Files

| File | Description | Infographic Use |
|------|-------------|-----------------|
{{- range .Artifacts}}
| [{{.File}}]({{.File}}) | {{.Description}} | {{.Use}} |
{{- end}}
{{- if .Renders}}

## Visual Assets

| Directory | Mode | Rendered From |
|-----------|------|---------------|
{{- range .Renders}}
| {{.OutDir}}/ | {{.Mode}} | [{{.Input}}]({{.Input}}) |
{{- end}}
{{- end}}

## Run Log

| Step | Status | Duration |
|------|--------|----------|
{{- range .Outcomes}}
| {{.ID}} | {{.Status}} | {{round .Duration}} |
{{- end}}

## Infographic Design Guide

### Timeline Layout
` + "```" + `
Week 1        Weeks 2-3     Week 4        Week 5        Ongoing
  |              |             |             |             |
  v              v             v             v             v
[Goals] --> [Research] --> [Allocate] --> [Execute] --> [Monitor]
                                                          |
                                                    [Rebalance]
` + "```" + `

### Radial Mindmap Layout
- Center: "Investment Process"
- Ring 1: Six phases (Goals, Research, Allocate, Execute, Monitor, Rebalance)
- Ring 2: Key activities per phase
- Ring 3: Metrics and deliverables

### Dashboard Layout
Use the briefing document to build a single-page layout:
- Top: Process flow diagram
- Middle: Key metrics table (by portfolio type)
- Bottom: Allocation charts and rebalancing triggers

## Interactive Exploration

` + "```bash" + `
# Chat interactively about the source document
nlm chat {{.NotebookID}}

# Ask specific questions
nlm generate-chat {{.NotebookID}} "Compare risk profiles across portfolio types"
` + "```" + `

## Cleanup

` + "```bash" + `
nlm rm {{.NotebookID}}
` + "```" + `
`))

// RenderIndex produces the markdown report content.
func RenderIndex(data Data) (string, error) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render index template: %w", err)
	}
	return buf.String(), nil
}

// WriteIndex renders the report and writes both the markdown file and its
// HTML preview into dir.
func WriteIndex(dir string, data Data) error {
	md, err := RenderIndex(data)
	if err != nil {
		return err
	}
	if err := fsutil.WriteText(filepath.Join(dir, IndexFile), md); err != nil {
		return err
	}

	var html bytes.Buffer
	html.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>" + data.Title + "</title></head>\n<body>\n")
	if err := goldmark.Convert([]byte(md), &html); err != nil {
		return fmt.Errorf("failed to render index HTML: %w", err)
	}
	html.WriteString("</body>\n</html>\n")
	return fsutil.WriteText(filepath.Join(dir, IndexHTMLFile), html.String())
}
