package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/vk/infographgo/modules/paper2any"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SourcePath string
	OutputDir  string
	PlanPath   string

	SkipAudio     bool
	WithPaper2Any bool
	Paper2AnyDir  string

	LogFormat string
	LogLevel  string

	// WaitForProcessing is the fixed pause between source ingestion and the
	// first generation step, giving the backend time to index the source.
	WaitForProcessing time.Duration
}

// NewConfig validates a Config and applies the defaults that do not come
// from flag defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SourcePath == "" {
		return nil, errors.New("SourcePath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OutputDir is a required configuration field and cannot be empty")
	}
	if cfg.WithPaper2Any && cfg.Paper2AnyDir == "" {
		return nil, fmt.Errorf("--with-paper2any requires the renderer location: set --paper2any-dir or the %s environment variable", paper2any.EnvDir)
	}
	if cfg.WaitForProcessing == 0 {
		cfg.WaitForProcessing = 5 * time.Second
	}
	return &cfg, nil
}
