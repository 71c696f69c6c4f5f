//go:build ebiten

package app

import (
	"mad-life/internal/engine"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = []struct {
	key ebiten.Key
	to  engine.Key
}{
	{ebiten.KeyEscape, engine.KeyEscape},
	{ebiten.KeySpace, engine.KeySpace},
	{ebiten.KeyR, engine.KeyR},
	{ebiten.KeyN, engine.KeyN},
	{ebiten.KeyS, engine.KeyS},
}

var buttonMap = []struct {
	button ebiten.MouseButton
	to     engine.Button
}{
	{ebiten.MouseButtonLeft, engine.ButtonLeft},
	{ebiten.MouseButtonMiddle, engine.ButtonMiddle},
}

// Game adapts the simulation state to the ebiten.Game interface.
type Game struct {
	state   *engine.State
	builder render.Builder
	hud     *ui.HUD
	events  []engine.Event
}

// New constructs a Game for the provided state.
func New(state *engine.State) *Game {
	return &Game{state: state, hud: ui.NewHUD()}
}

// Update decodes this frame's input and advances the simulation.
func (g *Game) Update() error {
	g.events = g.events[:0]
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.events = append(g.events, engine.Quit())
	}
	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.key) {
			g.events = append(g.events, engine.KeyDown(k.to))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	mx, my := ebiten.CursorPosition()
	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			g.events = append(g.events, engine.MouseDown(b.to, mx, my))
		}
		if inpututil.IsMouseButtonJustReleased(b.button) {
			g.events = append(g.events, engine.MouseUp(b.to))
		}
	}

	if quit, _ := g.state.Update(g.events, engine.Pointer{X: mx, Y: my}); quit {
		return ebiten.Termination
	}
	g.hud.Update(g.state.Stats())
	return nil
}

// Draw renders the live cells and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Paint(screen, g.builder.Build(g.state.World(), g.state.Viewport()))
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.state.Viewport().Screen
	return s.W, s.H
}
