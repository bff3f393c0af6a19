package executor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func okStep(id string, ran *[]string) Step {
	return Step{
		ID:          id,
		Description: "test step " + id,
		Mode:        SoftFail,
		Run: func(ctx context.Context) error {
			*ran = append(*ran, id)
			return nil
		},
	}
}

func TestRun_HardFailAbortsRemainingSteps(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var ran []string
	boom := errors.New("boom")
	steps := []Step{
		okStep("first", &ran),
		{
			ID:          "fatal",
			Description: "fails hard",
			Mode:        HardFail,
			Run:         func(ctx context.Context) error { return boom },
		},
		okStep("never", &ran),
	}

	// --- Act ---
	outcomes, err := Run(context.Background(), steps)

	// --- Assert ---
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "step fatal failed")
	require.Equal(t, []string{"first"}, ran, "steps after the hard failure must not run")
	require.Len(t, outcomes, 2)
	require.Equal(t, StatusOK, outcomes[0].Status)
	require.Equal(t, StatusFailed, outcomes[1].Status)
}

func TestRun_SoftFailContinues(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var ran []string
	steps := []Step{
		{
			ID:          "flaky",
			Description: "fails soft",
			Mode:        SoftFail,
			Run:         func(ctx context.Context) error { return errors.New("backend hiccup") },
		},
		okStep("after", &ran),
	}

	// --- Act ---
	outcomes, err := Run(context.Background(), steps)

	// --- Assert ---
	require.NoError(t, err, "a soft failure must not abort the run")
	require.Equal(t, []string{"after"}, ran)
	require.Len(t, outcomes, 2)
	require.Equal(t, StatusFailed, outcomes[0].Status)
	require.EqualError(t, outcomes[0].Err, "backend hiccup")
	require.Equal(t, StatusOK, outcomes[1].Status)
}

func TestRun_SkipIsRecorded(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	steps := []Step{
		{
			ID:          "render",
			Description: "skips itself",
			Mode:        SoftFail,
			Run: func(ctx context.Context) error {
				return fmt.Errorf("%w: upstream artifact is empty", ErrSkip)
			},
		},
	}

	// --- Act ---
	outcomes, err := Run(context.Background(), steps)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, StatusSkipped, outcomes[0].Status)
	require.ErrorIs(t, outcomes[0].Err, ErrSkip)
}

func TestRun_OutcomesPreserveOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var ran []string
	steps := []Step{okStep("a", &ran), okStep("b", &ran), okStep("c", &ran)}

	// --- Act ---
	outcomes, err := Run(context.Background(), steps)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for i, id := range []string{"a", "b", "c"} {
		require.Equal(t, id, outcomes[i].ID)
		require.Equal(t, StatusOK, outcomes[i].Status)
	}
}

func TestRun_CanceledContextStopsRun(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var ran []string
	steps := []Step{okStep("a", &ran)}

	// --- Act ---
	outcomes, err := Run(ctx, steps)

	// --- Assert ---
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, outcomes)
	require.Empty(t, ran)
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ok", StatusOK.String())
	require.Equal(t, "failed", StatusFailed.String())
	require.Equal(t, "skipped", StatusSkipped.String())
}
