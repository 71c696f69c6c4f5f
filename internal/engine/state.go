// Package engine owns the per-frame simulation state: the world, the viewport,
// the step clock and the run, drag and paint flags driven by input.
package engine

import (
	"mad-life/internal/core"
	"mad-life/internal/view"
)

// Options configures a State.
type Options struct {
	Rate    int
	Seed    int64
	Density float64
}

// DefaultDensity is the fraction of visible cells seeded by Randomize.
const DefaultDensity = 0.25

// State is the complete mutable state of one simulation loop. It is owned by
// a single goroutine and needs no locking.
type State struct {
	world    core.World
	viewport *view.Viewport
	clock    *core.Clock
	pannable bool

	running   bool
	painting  bool
	paint     bool
	panning   bool
	dragStart Pointer

	rng     *core.RNG
	seed    int64
	density float64
}

// New builds a State around world and viewport. Bounded worlds keep the
// viewport pinned at the origin; only unbounded worlds can be panned.
func New(world core.World, vp *view.Viewport, opts Options) *State {
	if opts.Density <= 0 {
		opts.Density = DefaultDensity
	}
	_, bounded := world.(core.Bounded)
	return &State{
		world:    world,
		viewport: vp,
		clock:    core.NewClock(opts.Rate),
		pannable: !bounded,
		rng:      core.NewRNG(opts.Seed),
		seed:     opts.Seed,
		density:  opts.Density,
	}
}

// World exposes the board for read-only use by renderers.
func (s *State) World() core.World { return s.world }

// Viewport exposes the current view transform.
func (s *State) Viewport() *view.Viewport { return s.viewport }

// Running reports whether generations advance on schedule.
func (s *State) Running() bool { return s.running }

// Frame returns the clock's frame counter.
func (s *State) Frame() int { return s.clock.Frame() }

// Stats summarizes the state for display.
func (s *State) Stats() core.Stats {
	return core.Stats{
		World:      s.world.Name(),
		Generation: s.world.Generation(),
		Population: s.world.Population(),
		Rate:       s.clock.Rate(),
		Running:    s.running,
	}
}

// SetRunning starts or pauses the simulation. Any paint stroke in progress
// ends when the simulation starts.
func (s *State) SetRunning(running bool) {
	if s.running == running {
		return
	}
	s.running = running
	if running {
		s.painting = false
	}
	logger().Debug("run state changed", "running", running, "generation", s.world.Generation())
}

// Reset clears the board, pauses, rewinds the clock and recentres the view.
func (s *State) Reset() {
	s.world.Clear()
	s.running = false
	s.painting = false
	s.panning = false
	s.clock.Reset()
	s.viewport.Reset()
	s.rng = core.NewRNG(s.seed)
	logger().Info("world reset", "world", s.world.Name())
}

// Randomize scatters live cells over the visible part of the world.
func (s *State) Randomize() {
	min, max := s.viewport.Cells()
	if b, ok := s.world.(core.Bounded); ok {
		size := b.Size()
		min = core.Coord{}
		max = core.Coord{X: size.W - 1, Y: size.H - 1}
	}
	placed := core.Scatter(s.world, s.rng, min, max, s.density)
	logger().Info("world seeded", "cells", placed, "population", s.world.Population())
}

// Update runs one frame: edge-triggered events first, then the held-button
// drag actions at the sampled pointer, then the clock. It reports whether the
// loop should terminate and whether a generation was computed.
func (s *State) Update(events []Event, p Pointer) (quit, stepped bool) {
	for _, ev := range events {
		if s.handle(ev) {
			logger().Info("quit requested", "generation", s.world.Generation())
			return true, false
		}
	}
	s.drag(p)
	if s.clock.Tick() && s.running {
		s.world.Step()
		stepped = true
	}
	return false, stepped
}
