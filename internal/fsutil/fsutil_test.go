package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkdownFiles_SortedWithSizes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02-timeline.md"), []byte("12345"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00-index.md"), []byte("abc"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notebook-id.txt"), []byte("nb-123"), 0o600))

	// --- Act ---
	entries, err := MarkdownFiles(dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Name: "00-index.md", Size: 3},
		{Name: "02-timeline.md", Size: 5},
	}, entries, "only markdown files, sorted by name")
}

func TestEnsureDir_CreatesNestedDirectories(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "visuals", "roadmap")

	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Idempotent.
	require.NoError(t, EnsureDir(dir))
}

func TestWriteText_ReplacesExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notebook-id.txt")

	require.NoError(t, WriteText(path, "nb-old"))
	require.NoError(t, WriteText(path, "nb-123"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "nb-123", string(data))
}
