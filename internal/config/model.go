package config

// Model is the unified, format-agnostic representation of a pipeline plan:
// which artifacts to generate, the optional audio overview, and the optional
// render jobs that turn markdown artifacts into visual assets.
type Model struct {
	Notebook  Notebook
	Artifacts []*Artifact
	Audio     *Audio
	Renders   []*Render
}

// Notebook describes the workspace created in the primary tool.
type Notebook struct {
	Title string
}

// Artifact is a single content-generation step: one subcommand of the primary
// tool whose stdout is written to File inside the output directory.
type Artifact struct {
	Name        string
	File        string
	Command     string
	Description string

	// Use is the suggested role of this artifact in the final infographic,
	// shown in the generated index.
	Use string

	// WithSource marks commands that take the source id as a second argument
	// in addition to the notebook id.
	WithSource bool
}

// Audio holds the prompt passed to the primary tool's audio-overview command.
type Audio struct {
	Instructions string
}

// Render is a single secondary-stage job: feed an already-generated markdown
// artifact to the renderer and collect its visual output under OutDir.
type Render struct {
	Name     string
	Input    string
	Mode     string
	Style    string
	Aspect   string
	Language string
	OutDir   string
}
