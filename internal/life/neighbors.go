package life

import "mad-life/internal/core"

// View is a read-only look at a board. Step implementations hand the neighbor
// counter a view of the generation being replaced, never the buffer being
// written.
type View interface {
	Alive(c core.Coord) bool
}

// offsets lists the eight Chebyshev-distance-1 neighbors.
var offsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountAdjacent counts the live neighbors of c in v. Edge handling is left to
// the view: toroidal views wrap, sparse views treat absent cells as dead.
func CountAdjacent(v View, c core.Coord) int {
	n := 0
	for _, d := range offsets {
		if v.Alive(c.Add(d[0], d[1])) {
			n++
		}
	}
	return n
}
