package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/infographgo/internal/app"
	"github.com/vk/infographgo/modules/paper2any"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("infographgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
infographgo - Turn a markdown document into infographic-ready artifacts.

Chains the nlm CLI (notebook creation, content generation) and, optionally,
the paper2any renderer (SVG diagrams, slide decks) into one sequential run.

Usage:
  infographgo [options] [SOURCE_PATH]

Arguments:
  SOURCE_PATH
    Path to the source markdown document (default: investment-process.md).

Options:
`)
		flagSet.PrintDefaults()
	}

	sourceFlag := flagSet.String("source", "", "Path to the source markdown document.")
	outputDirFlag := flagSet.String("output-dir", "./investment-infographic-output", "Directory for generated artifacts.")
	planFlag := flagSet.String("plan", "", "Path to a custom pipeline plan (.hcl). Empty uses the built-in plan.")
	skipAudioFlag := flagSet.Bool("skip-audio", false, "Skip the audio overview step.")
	withPaper2AnyFlag := flagSet.Bool("with-paper2any", false, "Enable the secondary rendering stage (SVG diagrams, slides).")
	paper2AnyDirFlag := flagSet.String("paper2any-dir", "", "Directory containing the paper2any tool. Defaults to $"+paper2any.EnvDir+".")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	sourcePath := "investment-process.md"
	if *sourceFlag != "" {
		sourcePath = *sourceFlag
	} else if flagSet.NArg() > 0 {
		// First positional argument is the source; anything after it is
		// ignored, matching the original script's lenient parsing.
		sourcePath = flagSet.Arg(0)
	}
	slog.Debug("Source path determined.", "path", sourcePath)

	paper2AnyDir := *paper2AnyDirFlag
	if paper2AnyDir == "" {
		paper2AnyDir = os.Getenv(paper2any.EnvDir)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SourcePath:    sourcePath,
		OutputDir:     *outputDirFlag,
		PlanPath:      *planFlag,
		SkipAudio:     *skipAudioFlag,
		WithPaper2Any: *withPaper2AnyFlag,
		Paper2AnyDir:  paper2AnyDir,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
