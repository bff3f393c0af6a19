// Package fsutil holds small filesystem helpers shared by the pipeline and
// the report writer.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Entry is one produced file, as listed in the final console summary.
type Entry struct {
	Name string
	Size int64
}

// MarkdownFiles returns the markdown files directly inside dir, sorted by
// name, with their sizes.
func MarkdownFiles(dir string) ([]Entry, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to list markdown files in %s: %w", dir, err)
	}
	sort.Strings(matches)

	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", m, err)
		}
		entries = append(entries, Entry{Name: filepath.Base(m), Size: info.Size()})
	}
	return entries, nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteText writes content to path, replacing any existing file.
func WriteText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
