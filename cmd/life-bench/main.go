package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/core"
	_ "mad-life/internal/life"

	"golang.org/x/sync/errgroup"
)

type result struct {
	world      string
	elapsed    time.Duration
	generation int
	population int
}

func (r result) rate() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.generation) / r.elapsed.Seconds()
}

func main() {
	gens := flag.Int("gens", 500, "generations to run per world")
	width := flag.Int("w", 80, "soup width in cells (also the torus width)")
	height := flag.Int("h", 45, "soup height in cells (also the torus height)")
	density := flag.Float64("density", 0.25, "initial live-cell probability")
	seed := flag.Int64("seed", 42, "soup seed")
	workers := flag.Int("workers", 1, "row-band workers for the torus step")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := app.NewLogger(*verbose)
	opts := map[string]string{
		"w":       strconv.Itoa(*width),
		"h":       strconv.Itoa(*height),
		"workers": strconv.Itoa(*workers),
	}

	names := core.Names()
	log.Info("benchmarking", "worlds", names, "gens", *gens, "size", fmt.Sprintf("%dx%d", *width, *height))

	var (
		mu      sync.Mutex
		results []result
	)
	eg, ctx := errgroup.WithContext(context.Background())
	for _, name := range names {
		eg.Go(func() error {
			res, err := run(ctx, name, opts, *gens, *seed, *density, *width, *height)
			if err != nil {
				return err
			}
			log.Debug("world finished", "world", name, "elapsed", res.elapsed)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Error("benchmark failed", "err", err)
		os.Exit(1)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].rate() > results[j].rate() })
	for _, r := range results {
		log.Info("result",
			slog.String("world", r.world),
			slog.Int("generation", r.generation),
			slog.Int("population", r.population),
			slog.Duration("elapsed", r.elapsed),
			slog.String("gen/s", fmt.Sprintf("%.1f", r.rate())),
		)
	}
}

func run(ctx context.Context, name string, opts map[string]string, gens int, seed int64, density float64, w, h int) (result, error) {
	world, err := core.NewWorld(name, opts)
	if err != nil {
		return result{}, err
	}
	core.Scatter(world, core.NewRNG(seed), core.Coord{}, core.Coord{X: w - 1, Y: h - 1}, density)

	start := time.Now()
	for i := 0; i < gens; i++ {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		world.Step()
	}
	return result{
		world:      name,
		elapsed:    time.Since(start),
		generation: world.Generation(),
		population: world.Population(),
	}, nil
}
