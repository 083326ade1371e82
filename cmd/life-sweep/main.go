package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"torus-life/internal/cellmap"

	"golang.org/x/sync/errgroup"
)

type sweepResult struct {
	seed        int64
	initial     int
	final       int
	peak        int
	births      int
	deaths      int
	stableAfter int
	elapsed     time.Duration
}

func (r sweepResult) String() string {
	stable := "-"
	if r.stableAfter >= 0 {
		stable = fmt.Sprint(r.stableAfter)
	}
	return fmt.Sprintf("seed=%d initial=%d final=%d peak=%d births=%d deaths=%d quiet_from=%s time=%s",
		r.seed, r.initial, r.final, r.peak, r.births, r.deaths, stable, r.elapsed.Round(time.Millisecond))
}

func main() {
	width := flag.Int("w", 200, "grid width in cells")
	height := flag.Int("h", 200, "grid height in cells")
	steps := flag.Int("steps", 500, "generations to simulate per seed")
	seeds := flag.Int("seeds", 16, "number of seeds to run")
	first := flag.Int64("seed", 1, "first seed")
	fullRange := flag.Bool("full-range", false, "seed the last row and column too")
	verify := flag.Bool("verify", false, "recount every neighbourhood after each generation")
	workers := flag.Int("workers", runtime.NumCPU(), "number of simulations run at once")
	flag.Parse()

	cfg := cellmap.Config{Width: *width, Height: *height, FullRange: *fullRange}
	results := make([]sweepResult, *seeds)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	for i := range results {
		seed := *first + int64(i)
		g.Go(func() error {
			res, err := runSeed(ctx, cfg, seed, *steps, *verify)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].final > results[j].final })
	for _, r := range results {
		fmt.Println(r)
	}
}

// runSeed advances one map for the requested number of generations. Each
// map is private to its goroutine.
func runSeed(ctx context.Context, cfg cellmap.Config, seed int64, steps int, verify bool) (sweepResult, error) {
	m, err := cellmap.New(cfg)
	if err != nil {
		return sweepResult{}, err
	}
	m.Init(seed)

	res := sweepResult{seed: seed, initial: m.Population(), peak: m.Population(), stableAfter: -1}
	start := time.Now()
	for gen := 0; gen < steps; gen++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		m.Advance()
		res.births += m.LastBirths()
		res.deaths += m.LastDeaths()
		res.peak = max(res.peak, m.Population())
		if m.LastBirths()+m.LastDeaths() == 0 {
			if res.stableAfter < 0 {
				res.stableAfter = m.Generation()
			}
		} else {
			res.stableAfter = -1
		}
		if verify {
			if err := m.Verify(); err != nil {
				return res, fmt.Errorf("generation %d: %w", m.Generation(), err)
			}
		}
	}
	res.final = m.Population()
	res.elapsed = time.Since(start)
	return res, nil
}
