package engine

import (
	"testing"

	"mad-life/internal/core"
	"mad-life/internal/life"
	"mad-life/internal/view"
)

func newState(w core.World, rate int) *State {
	vp := view.New(core.Size{W: 200, H: 100}, 20, 2)
	return New(w, vp, Options{Rate: rate, Seed: 1})
}

func TestClickTogglesWhilePaused(t *testing.T) {
	s := newState(life.NewSparse(), 10)
	cell := core.Coord{X: 2, Y: 1}

	s.Update([]Event{MouseDown(ButtonLeft, 45, 25), MouseUp(ButtonLeft)}, Pointer{X: 45, Y: 25})
	if !s.World().Alive(cell) {
		t.Fatal("clicking a dead cell while paused should make it alive")
	}

	s.Update([]Event{MouseDown(ButtonLeft, 50, 30), MouseUp(ButtonLeft)}, Pointer{X: 50, Y: 30})
	if s.World().Alive(cell) {
		t.Fatal("clicking a live cell while paused should kill it")
	}

	s.Update([]Event{KeyDown(KeySpace)}, Pointer{})
	s.Update([]Event{MouseDown(ButtonLeft, 45, 25), MouseUp(ButtonLeft)}, Pointer{X: 45, Y: 25})
	if s.World().Alive(cell) {
		t.Fatal("clicking while running must not edit the board")
	}
}

func TestDragPaintsWithLatchedMode(t *testing.T) {
	s := newState(life.NewTorus(10, 5), 10)

	s.Update([]Event{MouseDown(ButtonLeft, 5, 5)}, Pointer{X: 5, Y: 5})
	for x := 25; x < 100; x += 20 {
		s.Update(nil, Pointer{X: x, Y: 5})
	}
	s.Update([]Event{MouseUp(ButtonLeft)}, Pointer{X: 120, Y: 5})
	s.Update(nil, Pointer{X: 140, Y: 5})

	for x := 0; x < 5; x++ {
		if !s.World().Alive(core.Coord{X: x}) {
			t.Fatalf("cell (%d,0) should have been painted", x)
		}
	}
	if s.World().Population() != 5 {
		t.Fatalf("population = %d, expected painting to stop on release", s.World().Population())
	}

	// Pressing on a live cell latches erase mode for the whole stroke.
	s.Update([]Event{MouseDown(ButtonLeft, 25, 5)}, Pointer{X: 25, Y: 5})
	s.Update(nil, Pointer{X: 45, Y: 5})
	s.Update(nil, Pointer{X: 65, Y: 25})
	s.Update([]Event{MouseUp(ButtonLeft)}, Pointer{X: 65, Y: 25})
	for _, c := range []core.Coord{{X: 1}, {X: 2}} {
		if s.World().Alive(c) {
			t.Fatalf("cell %v should have been erased", c)
		}
	}
	if s.World().Alive(core.Coord{X: 3, Y: 1}) {
		t.Fatal("erase stroke must not add cells")
	}
	if !s.World().Alive(core.Coord{}) || !s.World().Alive(core.Coord{X: 3}) {
		t.Fatal("erase stroke touched cells it never crossed")
	}
}

func TestStepsFollowRate(t *testing.T) {
	s := newState(life.NewSparse(), 10)
	for _, c := range []core.Coord{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}} {
		s.World().Set(c, true)
	}

	for i := 0; i < 60; i++ {
		if _, stepped := s.Update(nil, Pointer{}); stepped {
			t.Fatal("paused simulation must not step")
		}
	}

	s.Update([]Event{KeyDown(KeySpace)}, Pointer{})
	steps := 0
	for i := 0; i < 119; i++ {
		if _, stepped := s.Update(nil, Pointer{}); stepped {
			steps++
		}
	}
	// 120 frames at 10 generations per second: the toggle frame plus 119.
	if steps != 20 {
		t.Fatalf("stepped %d times in 119 frames, expected 20", steps)
	}
	if s.World().Generation() != 20 {
		t.Fatalf("generation = %d, expected 20", s.World().Generation())
	}
}

func TestStepOnceWhilePaused(t *testing.T) {
	s := newState(life.NewSparse(), 10)
	s.World().Set(core.Coord{}, true)
	s.Update([]Event{KeyDown(KeyN)}, Pointer{})
	if s.World().Generation() != 1 || s.World().Population() != 0 {
		t.Fatalf("N should advance one generation, got gen=%d pop=%d", s.World().Generation(), s.World().Population())
	}
	s.Update([]Event{KeyDown(KeySpace), KeyDown(KeyN)}, Pointer{})
	if s.World().Generation() != 1 {
		t.Fatal("N is ignored while running")
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := newState(life.NewSparse(), 10)
	s.Update([]Event{MouseDown(ButtonLeft, 45, 25), MouseUp(ButtonLeft)}, Pointer{})
	s.Update([]Event{MouseDown(ButtonMiddle, 100, 50)}, Pointer{X: 100, Y: 50})
	s.Update(nil, Pointer{X: 60, Y: 10})
	s.Update([]Event{MouseUp(ButtonMiddle), KeyDown(KeySpace)}, Pointer{X: 60, Y: 10})
	for i := 0; i < 7; i++ {
		s.Update(nil, Pointer{})
	}

	s.Update([]Event{KeyDown(KeyR)}, Pointer{})
	if s.World().Population() != 0 {
		t.Fatalf("population = %d after reset", s.World().Population())
	}
	if s.Running() {
		t.Fatal("reset must pause the simulation")
	}
	if s.Viewport().Origin != (core.Coord{}) {
		t.Fatalf("viewport origin = %v after reset", s.Viewport().Origin)
	}
	// The reset frame still ticks the clock once.
	if s.Frame() != 1 {
		t.Fatalf("frame = %d after reset, expected 1", s.Frame())
	}
}

func TestMiddleDragPansIncrementally(t *testing.T) {
	s := newState(life.NewSparse(), 10)
	s.Update([]Event{MouseDown(ButtonMiddle, 100, 50)}, Pointer{X: 100, Y: 50})
	s.Update(nil, Pointer{X: 90, Y: 45})
	s.Update(nil, Pointer{X: 70, Y: 45})
	if got := s.Viewport().Origin; got != (core.Coord{X: 30, Y: 5}) {
		t.Fatalf("origin = %v, expected (30,5)", got)
	}
	s.Update([]Event{MouseUp(ButtonMiddle)}, Pointer{X: 0, Y: 0})
	if got := s.Viewport().Origin; got != (core.Coord{X: 30, Y: 5}) {
		t.Fatalf("origin moved after release: %v", got)
	}

	// Panned 30px right, a click at screen (5,5) lands in world cell (1,0).
	s.Update([]Event{MouseDown(ButtonLeft, 5, 5), MouseUp(ButtonLeft)}, Pointer{X: 5, Y: 5})
	if !s.World().Alive(core.Coord{X: 1, Y: 0}) {
		t.Fatal("click should map through the panned viewport")
	}
}

func TestBoundedWorldDoesNotPan(t *testing.T) {
	s := newState(life.NewTorus(10, 5), 10)
	s.Update([]Event{MouseDown(ButtonMiddle, 100, 50)}, Pointer{X: 100, Y: 50})
	s.Update(nil, Pointer{X: 10, Y: 10})
	if got := s.Viewport().Origin; got != (core.Coord{}) {
		t.Fatalf("torus viewport panned to %v", got)
	}
}

func TestQuit(t *testing.T) {
	s := newState(life.NewSparse(), 10)
	if quit, _ := s.Update([]Event{KeyDown(KeyEscape)}, Pointer{}); !quit {
		t.Fatal("escape should quit")
	}
	if quit, _ := s.Update([]Event{Quit()}, Pointer{}); !quit {
		t.Fatal("quit event should quit")
	}
	if quit, _ := s.Update([]Event{KeyDown(KeyUnknown)}, Pointer{}); quit {
		t.Fatal("unknown keys are ignored")
	}
}

func TestRandomizeIsDeterministic(t *testing.T) {
	a := newState(life.NewSparse(), 10)
	b := newState(life.NewSparse(), 10)
	a.Update([]Event{KeyDown(KeyS)}, Pointer{})
	b.Update([]Event{KeyDown(KeyS)}, Pointer{})
	if a.World().Population() == 0 {
		t.Fatal("randomize placed no cells")
	}
	a.World().ForEachAlive(func(c core.Coord) {
		if !b.World().Alive(c) {
			t.Fatalf("seeded worlds differ at %v", c)
		}
		if c.X < 0 || c.X > 9 || c.Y < 0 || c.Y > 4 {
			t.Fatalf("cell %v seeded outside the visible area", c)
		}
	})
}
