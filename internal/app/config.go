package app

import (
	"flag"
	"strconv"

	"mad-life/internal/core"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	World   string
	Width   int
	Height  int
	Tile    int
	Inset   int
	Rate    int
	Workers int
	Seed    int64
	Verbose bool
}

// NewConfig returns a Config populated with the default 1600x900 window of
// 20px tiles stepping ten generations per second.
func NewConfig() *Config {
	return &Config{
		World:   "sparse",
		Width:   1600,
		Height:  900,
		Tile:    20,
		Inset:   2,
		Rate:    10,
		Workers: 1,
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.World, "world", c.World, "world representation (torus or sparse)")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Tile, "tile", c.Tile, "tile size in pixels")
	fs.IntVar(&c.Inset, "inset", c.Inset, "gutter between tiles in pixels")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second, must divide 60")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row-band workers for the torus step")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, ok := core.Worlds()[c.World]; !ok {
		return errors.Errorf("unknown world %q (have %v)", c.World, core.Names())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("window %dx%d must be positive", c.Width, c.Height)
	}
	if c.Tile <= 0 {
		return errors.Errorf("tile size %d must be positive", c.Tile)
	}
	if c.Inset < 0 || 2*c.Inset >= c.Tile {
		return errors.Errorf("inset %d leaves no room in a %dpx tile", c.Inset, c.Tile)
	}
	if c.Rate <= 0 || c.Rate > core.FrameCycle || core.FrameCycle%c.Rate != 0 {
		return errors.Errorf("rate %d must divide %d", c.Rate, core.FrameCycle)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers %d must be at least 1", c.Workers)
	}
	return nil
}

// Screen returns the window size.
func (c *Config) Screen() core.Size { return core.Size{W: c.Width, H: c.Height} }

// WorldOptions returns the factory map for the configured world. Bounded
// worlds fill the window exactly.
func (c *Config) WorldOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width / c.Tile),
		"h":       strconv.Itoa(c.Height / c.Tile),
		"workers": strconv.Itoa(c.Workers),
	}
}
