package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/infographgo/internal/ctxlog"
)

// ErrSkip is returned by a step's Run function to record that the step was
// deliberately not executed (for example, its upstream artifact is empty).
var ErrSkip = errors.New("step skipped")

// Mode controls how a step failure affects the rest of the run.
type Mode int

const (
	// HardFail aborts the whole run on error.
	HardFail Mode = iota
	// SoftFail logs the error as a warning and continues with the next step.
	SoftFail
)

// Status is the recorded result of a single step.
type Status int

const (
	StatusOK Status = iota
	StatusFailed
	StatusSkipped
)

// String returns the human-readable form used in reports.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Step is a single unit of work in the pipeline: one blocking call to an
// external tool, or a local filesystem action.
type Step struct {
	ID          string
	Description string
	Mode        Mode
	Run         func(ctx context.Context) error
}

// Outcome records how one step ended. Outcomes are collected in execution
// order and feed the final report.
type Outcome struct {
	ID          string
	Description string
	Status      Status
	Err         error
	Duration    time.Duration
}

// Run executes the steps strictly in order, one at a time. A HardFail step
// error aborts the run and is returned together with the outcomes collected
// so far. SoftFail errors are logged and recorded, and execution continues.
func Run(ctx context.Context, steps []Step) ([]Outcome, error) {
	logger := ctxlog.FromContext(ctx)
	outcomes := make([]Outcome, 0, len(steps))
	total := len(steps)

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		stepLogger := logger.With("step", step.ID, "progress", fmt.Sprintf("%d/%d", i+1, total))
		stepLogger.Info("▶️ " + step.Description)

		start := time.Now()
		err := step.Run(ctx)
		elapsed := time.Since(start)

		outcome := Outcome{
			ID:          step.ID,
			Description: step.Description,
			Duration:    elapsed,
		}

		switch {
		case err == nil:
			outcome.Status = StatusOK
			stepLogger.Info("✅ Finished step", "duration", elapsed.Round(time.Millisecond))
		case errors.Is(err, ErrSkip):
			outcome.Status = StatusSkipped
			outcome.Err = err
			stepLogger.Warn("⏭️ Step skipped", "reason", err)
		case step.Mode == SoftFail:
			outcome.Status = StatusFailed
			outcome.Err = err
			stepLogger.Warn("⚠️ Step failed, continuing", "error", err)
		default:
			outcome.Status = StatusFailed
			outcome.Err = err
			outcomes = append(outcomes, outcome)
			stepLogger.Error("Step failed", "error", err)
			return outcomes, fmt.Errorf("step %s failed: %w", step.ID, err)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}
