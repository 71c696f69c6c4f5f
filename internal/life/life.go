package life

import (
	"strconv"

	"mad-life/internal/core"

	"github.com/pkg/errors"
)

// Config holds construction parameters for the registered worlds.
type Config struct {
	Width   int
	Height  int
	Workers int
}

// DefaultConfig returns the default configuration: an 80x45 torus, which is a
// 1600x900 window at 20px tiles.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 45, Workers: 1}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, errors.Errorf("invalid width %q", v)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, errors.Errorf("invalid height %q", v)
		}
		c.Height = parsed
	}
	if v, ok := cfg["workers"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "invalid workers %q", v)
		}
		if parsed > 0 {
			c.Workers = parsed
		}
	}
	return c, nil
}

func init() {
	core.Register("torus", func(cfg map[string]string) (core.World, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		t := NewTorus(c.Width, c.Height)
		t.SetWorkers(c.Workers)
		return t, nil
	})
	core.Register("sparse", func(cfg map[string]string) (core.World, error) {
		if _, err := FromMap(cfg); err != nil {
			return nil, err
		}
		return NewSparse(), nil
	})
}
