package app

import (
	"log/slog"
	"os"

	"mad-life/internal/core"
	"mad-life/internal/engine"
	"mad-life/internal/view"

	"github.com/pkg/errors"
)

// NewLogger returns a text logger on stderr, at debug level when verbose.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewState validates cfg and builds the simulation state it describes.
func NewState(cfg *Config) (*engine.State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	world, err := core.NewWorld(cfg.World, cfg.WorldOptions())
	if err != nil {
		return nil, err
	}
	vp := view.New(cfg.Screen(), cfg.Tile, cfg.Inset)
	return engine.New(world, vp, engine.Options{Rate: cfg.Rate, Seed: cfg.Seed}), nil
}
