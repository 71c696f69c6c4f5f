package life

import "mad-life/internal/core"

// Sparse is an unbounded Life board. Only live cells occupy storage: membership
// in alive is aliveness. counts tracks, for every cell with at least one live
// neighbor, how many it has; its keys together with alive form the frontier.
type Sparse struct {
	alive      map[core.Coord]struct{}
	counts     map[core.Coord]uint8
	births     []core.Coord
	deaths     []core.Coord
	generation int
}

// NewSparse returns an empty unbounded world.
func NewSparse() *Sparse {
	return &Sparse{
		alive:  make(map[core.Coord]struct{}),
		counts: make(map[core.Coord]uint8),
	}
}

// Name returns the world identifier.
func (s *Sparse) Name() string { return "sparse" }

// Alive reports whether c is present in the live set.
func (s *Sparse) Alive(c core.Coord) bool {
	_, ok := s.alive[c]
	return ok
}

// Set inserts c when alive and removes it otherwise. Setting a cell to the
// state it already has is a no-op.
func (s *Sparse) Set(c core.Coord, alive bool) {
	_, present := s.alive[c]
	switch {
	case alive && !present:
		s.alive[c] = struct{}{}
		s.bump(c, 1)
	case !alive && present:
		delete(s.alive, c)
		s.bump(c, -1)
	}
}

func (s *Sparse) bump(c core.Coord, delta int) {
	for _, d := range offsets {
		n := c.Add(d[0], d[1])
		v := int(s.counts[n]) + delta
		if v <= 0 {
			delete(s.counts, n)
			continue
		}
		s.counts[n] = uint8(v)
	}
}

// Neighbors returns the tracked live-neighbor count of c.
func (s *Sparse) Neighbors(c core.Coord) int { return int(s.counts[c]) }

// Clear drops every cell and resets the generation counter.
func (s *Sparse) Clear() {
	s.alive = make(map[core.Coord]struct{})
	s.counts = make(map[core.Coord]uint8)
	s.generation = 0
}

// Generation returns the number of steps since the last Clear.
func (s *Sparse) Generation() int { return s.generation }

// ForEachAlive visits live cells in map order.
func (s *Sparse) ForEachAlive(fn func(core.Coord)) {
	for c := range s.alive {
		fn(c)
	}
}

// Population returns the number of live cells.
func (s *Sparse) Population() int { return len(s.alive) }

// Frontier returns the number of cells Step will evaluate.
func (s *Sparse) Frontier() int {
	n := len(s.counts)
	for c := range s.alive {
		if _, ok := s.counts[c]; !ok {
			n++
		}
	}
	return n
}

// Step evaluates the frontier, every live cell plus every cell with a live
// neighbor, each exactly once. Decisions are collected before any write so the
// live set and counts act as the frozen snapshot for the whole tick.
func (s *Sparse) Step() {
	s.births = s.births[:0]
	s.deaths = s.deaths[:0]
	for c, n := range s.counts {
		if _, ok := s.alive[c]; ok {
			continue
		}
		if Next(false, int(n)) {
			s.births = append(s.births, c)
		}
	}
	for c := range s.alive {
		if !Next(true, int(s.counts[c])) {
			s.deaths = append(s.deaths, c)
		}
	}
	for _, c := range s.deaths {
		s.Set(c, false)
	}
	for _, c := range s.births {
		s.Set(c, true)
	}
	s.generation++
}
