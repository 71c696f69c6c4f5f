package life

import (
	"mad-life/internal/core"

	"golang.org/x/sync/errgroup"
)

// Torus is a bounded, dense Life board whose edges wrap. It keeps two
// generation buffers and swaps them after every step.
type Torus struct {
	w, h       int
	cur        *core.Grid
	nxt        *core.Grid
	workers    int
	generation int
}

// NewTorus returns an empty w x h torus.
func NewTorus(w, h int) *Torus {
	cur := core.NewGrid(w, h)
	return &Torus{w: cur.W, h: cur.H, cur: cur, nxt: core.NewGrid(cur.W, cur.H), workers: 1}
}

// SetWorkers sets how many row bands Step evaluates concurrently.
func (t *Torus) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	t.workers = n
}

// Name returns the world identifier.
func (t *Torus) Name() string { return "torus" }

// Size returns the grid dimensions.
func (t *Torus) Size() core.Size { return core.Size{W: t.w, H: t.h} }

// Alive reports the state of c after wrapping it onto the torus.
func (t *Torus) Alive(c core.Coord) bool { return t.cur.Alive(c) }

// Set overwrites the cell at c after wrapping it onto the torus.
func (t *Torus) Set(c core.Coord, alive bool) { t.cur.Put(c, alive) }

// Clear kills every cell and resets the generation counter.
func (t *Torus) Clear() {
	t.cur.Clear()
	t.generation = 0
}

// Generation returns the number of steps since the last Clear.
func (t *Torus) Generation() int { return t.generation }

// ForEachAlive visits live cells in row-major order.
func (t *Torus) ForEachAlive(fn func(core.Coord)) {
	cells := t.cur.Cells()
	for i, v := range cells {
		if v != 0 {
			fn(core.Coord{X: i % t.w, Y: i / t.w})
		}
	}
}

// Population returns the number of live cells.
func (t *Torus) Population() int {
	n := 0
	for _, v := range t.cur.Cells() {
		if v != 0 {
			n++
		}
	}
	return n
}

// Step evaluates every cell exactly once against the current buffer, writes
// the results into the spare buffer and swaps.
func (t *Torus) Step() {
	if t.workers <= 1 || t.h < 2 {
		t.stepRows(0, t.h)
	} else {
		t.stepParallel()
	}
	t.cur, t.nxt = t.nxt, t.cur
	t.generation++
}

func (t *Torus) stepParallel() {
	var (
		eg      errgroup.Group
		workers = min(t.workers, t.h)
		band    = (t.h + workers - 1) / workers
	)
	for i := range workers {
		start := i * band
		end := min(start+band, t.h)
		if start >= end {
			break
		}
		eg.Go(func() error {
			t.stepRows(start, end)
			return nil
		})
	}
	// stepRows never fails; Wait only joins the bands.
	_ = eg.Wait()
}

func (t *Torus) stepRows(start, end int) {
	out := t.nxt.Cells()
	for y := start; y < end; y++ {
		for x := 0; x < t.w; x++ {
			c := core.Coord{X: x, Y: y}
			var v uint8
			if Next(t.cur.Alive(c), CountAdjacent(t.cur, c)) {
				v = 1
			}
			out[y*t.w+x] = v
		}
	}
}
