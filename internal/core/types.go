package core

import (
	"sort"

	"github.com/pkg/errors"
)

// Coord identifies a cell in world space by column (X) and row (Y).
type Coord struct {
	X int
	Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// Size describes the dimensions of a grid or screen.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y int
	W, H int
}

// Overlaps reports whether the rectangle intersects [0,size.W) x [0,size.H).
func (r Rect) Overlaps(size Size) bool {
	return r.W > 0 && r.H > 0 &&
		r.X < size.W && r.Y < size.H &&
		r.X+r.W > 0 && r.Y+r.H > 0
}

// World is the board contract shared by every cell representation. A World is
// owned by a single loop; callers never mutate it concurrently.
type World interface {
	Name() string
	Alive(c Coord) bool
	Set(c Coord, alive bool)
	Clear()
	Step()
	// ForEachAlive calls fn once per live cell. Order is unspecified.
	ForEachAlive(fn func(Coord))
	Population() int
	Generation() int
}

// Bounded is implemented by worlds with a fixed toroidal extent.
type Bounded interface {
	Size() Size
}

// Factory constructs a World using an optional configuration map.
type Factory func(cfg map[string]string) (World, error)

var worlds = map[string]Factory{}

// Register adds a world factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	worlds[name] = f
}

// Worlds exposes the registry of available world factories.
func Worlds() map[string]Factory {
	return worlds
}

// Names returns the registered world names in sorted order.
func Names() []string {
	names := make([]string, 0, len(worlds))
	for name := range worlds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewWorld builds the named world.
func NewWorld(name string, cfg map[string]string) (World, error) {
	factory, ok := worlds[name]
	if !ok {
		return nil, errors.Errorf("unknown world %q", name)
	}
	w, err := factory(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "build world %q", name)
	}
	return w, nil
}
