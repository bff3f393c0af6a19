package nlm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/infographgo/internal/testutil"
)

func TestCreate_ReturnsNotebookID(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	fake := &testutil.FakeNlm{Outputs: map[string]string{"create": "nb-123"}}
	tool := NewWithRunner(fake.Run)

	// --- Act ---
	id, err := tool.Create(context.Background(), "Investment Process Infographic")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "nb-123", id)
	require.Equal(t, []string{"nlm", "create", "Investment Process Infographic"}, fake.CommandLine(0))
}

func TestAddSource_PassesNotebookIDAndPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	fake := &testutil.FakeNlm{Outputs: map[string]string{"add": "src-456"}}
	tool := NewWithRunner(fake.Run)

	// --- Act ---
	id, err := tool.AddSource(context.Background(), "nb-123", "docs/process.md")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "src-456", id)
	require.Equal(t, []string{"nlm", "add", "nb-123", "docs/process.md"}, fake.CommandLine(0))
}

func TestGenerate_ArgumentShape(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	fake := &testutil.FakeNlm{}
	tool := NewWithRunner(fake.Run)

	// --- Act ---
	_, err := tool.Generate(context.Background(), "generate-guide", "nb-123", "src-456", false)
	require.NoError(t, err)
	_, err = tool.Generate(context.Background(), "timeline", "nb-123", "src-456", true)
	require.NoError(t, err)

	// --- Assert ---
	require.Equal(t, []string{"nlm", "generate-guide", "nb-123"}, fake.CommandLine(0),
		"commands without with_source must not receive the source id")
	require.Equal(t, []string{"nlm", "timeline", "nb-123", "src-456"}, fake.CommandLine(1))
}

func TestAudioCreate_PassesInstructions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	fake := &testutil.FakeNlm{}
	tool := NewWithRunner(fake.Run)

	// --- Act ---
	err := tool.AudioCreate(context.Background(), "nb-123", "Walk through each phase.")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"nlm", "audio-create", "nb-123", "Walk through each phase."}, fake.CommandLine(0))
}

func TestGenerate_PropagatesFailures(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	boom := errors.New("nlm timeline failed: quota exceeded")
	fake := &testutil.FakeNlm{Errs: map[string]error{"timeline": boom}}
	tool := NewWithRunner(fake.Run)

	// --- Act ---
	_, err := tool.Generate(context.Background(), "timeline", "nb-123", "src-456", true)

	// --- Assert ---
	require.ErrorIs(t, err, boom)
}

func TestPreflight_FailsWhenBinaryMissing(t *testing.T) {
	// Not parallel: manipulates PATH via t.Setenv.

	// --- Arrange ---
	// An empty directory on PATH guarantees the lookup fails.
	t.Setenv("PATH", t.TempDir())
	tool := New()

	// --- Act ---
	err := tool.Preflight(context.Background())

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "nlm is not installed")
	require.Contains(t, err.Error(), "go install github.com/tmc/nlm/cmd/nlm@latest")
}
