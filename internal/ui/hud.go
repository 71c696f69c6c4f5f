//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
)

var (
	hudPanel = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	hudText  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// HUD draws a small status panel in the top-left corner of the screen.
type HUD struct {
	visible bool
	lines   [2]string
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD { return &HUD{visible: true} }

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the text from the latest stats.
func (h *HUD) Update(s core.Stats) {
	if h == nil {
		return
	}
	state := "paused"
	if s.Running {
		state = "running"
	}
	h.lines[0] = fmt.Sprintf("%s  %s  %d gen/s", s.World, state, s.Rate)
	h.lines[1] = fmt.Sprintf("gen %d  pop %d", s.Generation, s.Population)
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		width = max(width, len(line)*face.Advance)
	}
	height := len(h.lines)*hudLineHeight + hudPadding
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*hudPadding), float32(height), hudPanel, false)
	for i, line := range h.lines {
		text.Draw(screen, line, face, hudPadding, hudPadding+face.Ascent+i*hudLineHeight, hudText)
	}
}
