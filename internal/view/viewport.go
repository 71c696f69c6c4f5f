// Package view maps between world cells and screen pixels.
package view

import "mad-life/internal/core"

// Viewport is a pixel-space window onto the world. Origin is the world pixel
// shown at the screen's top-left corner; it is never clamped.
type Viewport struct {
	Origin core.Coord
	Tile   int
	Inset  int
	Screen core.Size
}

// New returns a viewport at the world origin.
func New(screen core.Size, tile, inset int) *Viewport {
	if tile <= 0 {
		tile = 1
	}
	if inset < 0 || 2*inset >= tile {
		inset = 0
	}
	return &Viewport{Tile: tile, Inset: inset, Screen: screen}
}

// Reset moves the viewport back to the world origin.
func (v *Viewport) Reset() { v.Origin = core.Coord{} }

// Pan moves the view by a pointer delta: dragging right reveals cells to the
// left, so the origin moves opposite to the pointer.
func (v *Viewport) Pan(dx, dy int) {
	v.Origin.X -= dx
	v.Origin.Y -= dy
}

// WorldToScreen returns the on-screen rectangle of cell c, shrunk by the inset
// on every side.
func (v *Viewport) WorldToScreen(c core.Coord) core.Rect {
	return core.Rect{
		X: c.X*v.Tile - v.Origin.X + v.Inset,
		Y: c.Y*v.Tile - v.Origin.Y + v.Inset,
		W: v.Tile - 2*v.Inset,
		H: v.Tile - 2*v.Inset,
	}
}

// ScreenToWorld returns the cell under pixel (px, py). Division floors, so
// pixels left of or above world pixel 0 land in negative cells.
func (v *Viewport) ScreenToWorld(px, py int) core.Coord {
	return core.Coord{
		X: core.FloorDiv(px+v.Origin.X, v.Tile),
		Y: core.FloorDiv(py+v.Origin.Y, v.Tile),
	}
}

// Visible reports whether any part of cell c's rectangle is on screen.
func (v *Viewport) Visible(c core.Coord) bool {
	return v.WorldToScreen(c).Overlaps(v.Screen)
}

// Cells returns the inclusive range of cells touching the screen.
func (v *Viewport) Cells() (min, max core.Coord) {
	min = v.ScreenToWorld(0, 0)
	max = v.ScreenToWorld(v.Screen.W-1, v.Screen.H-1)
	return min, max
}
