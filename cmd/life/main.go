//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/engine"
	_ "mad-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := app.NewLogger(cfg.Verbose)
	engine.SetLogger(log)

	state, err := app.NewState(cfg)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("Conway's Game of Life — " + cfg.World)
	ebiten.SetTPS(core.FrameCycle)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	log.Info("starting", slog.String("world", cfg.World), slog.Int("rate", cfg.Rate))
	if err := ebiten.RunGame(app.New(state)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
