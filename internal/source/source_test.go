package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_TitleFromFrontmatter(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, "investment-process.md", `---
title: "Our Investment Process"
---

# Overview

Six phases from goals to rebalancing.
`)

	// --- Act ---
	doc, err := Load(path)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Our Investment Process", doc.Title)
	require.Contains(t, string(doc.Body), "# Overview")
	require.NotContains(t, string(doc.Body), "title:", "frontmatter must be stripped from the body")
}

func TestLoad_TitleDerivedFromFilename(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "investment-process.md", "# Overview\n")

	doc, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "Investment Process", doc.Title)
}

func TestLoad_MissingFileNamesPath(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.md")

	_, err := Load(missing)

	require.Error(t, err)
	require.Contains(t, err.Error(), "source file not found")
	require.Contains(t, err.Error(), missing)
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	full := writeFile(t, "full.md", "# Timeline\n")
	blank := writeFile(t, "blank.md", "  \n\t\n")

	require.True(t, NonEmpty(full))
	require.False(t, NonEmpty(blank), "whitespace-only files count as empty")
	require.False(t, NonEmpty(filepath.Join(t.TempDir(), "missing.md")))
}
