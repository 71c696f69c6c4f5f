package life

// Next applies the B3/S23 rule to a single cell: a live cell survives with two
// or three live neighbors, a dead cell is born with exactly three.
func Next(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
