package config

import "fmt"

// knownRenderModes are the mode selectors the renderer CLI accepts.
var knownRenderModes = map[string]bool{
	"roadmap":      true,
	"architecture": true,
	"mindmap":      true,
	"ppt":          true,
}

// Validate checks the integrity of a loaded plan. It is called once at
// startup so that plan mistakes fail before any external call is made.
func (m *Model) Validate() error {
	if m.Notebook.Title == "" {
		return fmt.Errorf("plan: notebook title must not be empty")
	}
	if len(m.Artifacts) == 0 {
		return fmt.Errorf("plan: at least one artifact block is required")
	}

	seenFiles := make(map[string]string, len(m.Artifacts))
	for _, a := range m.Artifacts {
		if a.File == "" {
			return fmt.Errorf("plan: artifact %q has no file attribute", a.Name)
		}
		if a.Command == "" {
			return fmt.Errorf("plan: artifact %q has no command attribute", a.Name)
		}
		if prev, dup := seenFiles[a.File]; dup {
			return fmt.Errorf("plan: artifacts %q and %q both write to %s", prev, a.Name, a.File)
		}
		seenFiles[a.File] = a.Name
	}

	if m.Audio != nil && m.Audio.Instructions == "" {
		return fmt.Errorf("plan: audio block present but instructions are empty")
	}

	for _, r := range m.Renders {
		if r.Input == "" {
			return fmt.Errorf("plan: render %q has no input attribute", r.Name)
		}
		if !knownRenderModes[r.Mode] {
			return fmt.Errorf("plan: render %q uses unknown mode %q", r.Name, r.Mode)
		}
		if r.OutDir == "" {
			return fmt.Errorf("plan: render %q has no out attribute", r.Name)
		}
	}
	return nil
}
