// Package source reads the input markdown document and its optional YAML
// frontmatter.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Document is the loaded source file plus the metadata derived from it.
type Document struct {
	Path  string
	Title string
	Body  []byte
}

type matter struct {
	Title string `yaml:"title"`
}

// Load reads the document at path. A missing file is reported with a
// diagnostic naming the path. The title comes from a frontmatter `title`
// field when present, otherwise it is derived from the file name.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer f.Close()

	var meta matter
	body, err := frontmatter.Parse(f, &meta)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter of %s: %w", path, err)
	}

	title := meta.Title
	if title == "" {
		title = titleFromFilename(path)
	}

	return &Document{Path: path, Title: title, Body: body}, nil
}

// NonEmpty reports whether the file at path exists and contains anything
// beyond whitespace. The render stage uses this to decide whether an upstream
// artifact is worth feeding to the renderer.
func NonEmpty(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(data))) > 0
}

// titleFromFilename turns "investment-process.md" into "Investment Process".
func titleFromFilename(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
