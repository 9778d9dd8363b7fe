package app

import (
	"fmt"
	"os"

	"github.com/mkljngd/RoadNetOptimizer/internal/config"
	"github.com/mkljngd/RoadNetOptimizer/internal/logger"
)

// Bootstrap loads configuration, layers command-line overrides on top,
// sets up logging, and wires an App on stdin/stdout.
func Bootstrap(o config.Overrides) (*App, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Apply(o)

	if err := logger.Init(cfg.LogLevel); err != nil {
		return nil, err
	}

	style, err := config.LoadStyle(cfg.StyleFile)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.StyleFile).Msg("failed to load style file, using defaults")
	}

	return New(cfg, style, os.Stdin, os.Stdout), nil
}
