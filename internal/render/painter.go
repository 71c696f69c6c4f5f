//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Paint clears dst and fills every tile in f.
func Paint(dst *ebiten.Image, f Frame) {
	dst.Fill(f.Background)
	for _, r := range f.Tiles {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), f.Foreground, false)
	}
}
