//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	seed := cfg.ResolveSeed()
	sim.Reset(seed)
	log.Printf("%s: %dx%d grid, seed %d", sim.Name(), sim.Size().W, sim.Size().H, seed)

	game := app.New(sim, cfg, seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
