package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/life"
	"torus-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 0, 0
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	// Fit the terminal unless a size was asked for.
	cols, rows := screen.Size()
	if cfg.Width <= 0 {
		cfg.Width = max(cols/2, 1)
	}
	if cfg.Height <= 0 {
		cfg.Height = max(rows, 1)
	}

	sim := factory(cfg.SimOptions())
	seed := cfg.ResolveSeed()
	sim.Reset(seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &term.Runner{
		Screen:   screen,
		Sim:      sim,
		Interval: time.Second / time.Duration(max(cfg.TPS, 1)),
		Seed:     seed,
	}
	err = r.Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s: stopped after seed %d", sim.Name(), r.Seed)
}
