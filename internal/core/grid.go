package core

// Grid stores a 2D toroidal grid of byte-sized cell values in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for the wrapped coordinate.
func (g *Grid) Index(c Coord) int {
	c = g.Wrap(c)
	return c.Y*g.W + c.X
}

// Wrap maps any coordinate onto the torus.
func (g *Grid) Wrap(c Coord) Coord {
	return Coord{X: Wrap(c.X, g.W), Y: Wrap(c.Y, g.H)}
}

// Alive reports whether the cell at c is non-zero.
func (g *Grid) Alive(c Coord) bool { return g.data[g.Index(c)] != 0 }

// Put stores alive at c.
func (g *Grid) Put(c Coord, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(c)] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Wrap is the canonical toroidal wrap of v into [0, n).
func Wrap(v, n int) int {
	return ((v % n) + n) % n
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
