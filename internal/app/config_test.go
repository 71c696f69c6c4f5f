package app

import (
	"flag"
	"testing"

	"mad-life/internal/core"
	_ "mad-life/internal/life"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	opts := cfg.WorldOptions()
	if opts["w"] != "80" || opts["h"] != "45" {
		t.Fatalf("world options = %v, expected 80x45", opts)
	}
}

func TestBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-world", "torus", "-rate", "4", "-workers", "3", "-v"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.World != "torus" || cfg.Rate != 4 || cfg.Workers != 3 || !cfg.Verbose {
		t.Fatalf("flags not bound: %+v", cfg)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown world", func(c *Config) { c.World = "hex" }},
		{"rate not dividing 60", func(c *Config) { c.Rate = 7 }},
		{"rate above frame rate", func(c *Config) { c.Rate = 120 }},
		{"zero rate", func(c *Config) { c.Rate = 0 }},
		{"zero tile", func(c *Config) { c.Tile = 0 }},
		{"inset fills tile", func(c *Config) { c.Inset = 10 }},
		{"negative window", func(c *Config) { c.Height = -1 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
	}
	for _, tt := range tests {
		cfg := NewConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestNewState(t *testing.T) {
	for _, rate := range []int{2, 4, 10} {
		cfg := NewConfig()
		cfg.World = "torus"
		cfg.Rate = rate
		s, err := NewState(cfg)
		if err != nil {
			t.Fatalf("rate %d: %v", rate, err)
		}
		b, ok := s.World().(core.Bounded)
		if !ok || b.Size() != (core.Size{W: 80, H: 45}) {
			t.Fatalf("torus world not sized to the window")
		}
		if s.Stats().Rate != rate {
			t.Fatalf("stats rate = %d, expected %d", s.Stats().Rate, rate)
		}
	}

	cfg := NewConfig()
	cfg.Rate = 7
	if _, err := NewState(cfg); err == nil {
		t.Fatal("invalid config should not build a state")
	}
}
