package render

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/view"
)

var (
	// Background is the colour the screen is cleared to each frame.
	Background = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	// Foreground is the fill colour of live tiles.
	Foreground = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Frame is the draw list for one frame: clear to Background, then fill each
// tile with Foreground.
type Frame struct {
	Background color.RGBA
	Foreground color.RGBA
	Tiles      []core.Rect
}

// Builder turns a world snapshot into a Frame, reusing its tile buffer
// between frames.
type Builder struct {
	tiles []core.Rect
}

// Build collects the on-screen rectangle of every live cell that intersects
// the viewport's screen. The returned Frame is valid until the next call.
func (b *Builder) Build(w core.World, vp *view.Viewport) Frame {
	b.tiles = b.tiles[:0]
	w.ForEachAlive(func(c core.Coord) {
		r := vp.WorldToScreen(c)
		if r.Overlaps(vp.Screen) {
			b.tiles = append(b.tiles, r)
		}
	})
	return Frame{Background: Background, Foreground: Foreground, Tiles: b.tiles}
}
