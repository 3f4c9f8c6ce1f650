// Command life-survey runs many randomly seeded grids side by side and
// reports how each population evolved. Every run owns its own engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/life"
)

type runResult struct {
	seed    int64
	initial int
	stats   life.Stats
	settled int
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 16, "number of seeds to simulate")
	steps := flag.Int("steps", 500, "generations per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	results, err := survey(context.Background(), cfg, *runs, *steps, *workers)
	if err != nil {
		log.Fatalf("survey: %v", err)
	}
	report(results)
}

func survey(ctx context.Context, cfg *app.Config, runs, steps, workers int) ([]runResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]runResult, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < runs; i++ {
		g.Go(func() error {
			res, err := simulate(ctx, cfg.Size, cfg.Density, cfg.Seed+int64(i), steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// simulate seeds one engine and steps it, recording the first generation at
// which the population stopped changing size for stableWindow generations.
func simulate(ctx context.Context, size, density int, seed int64, steps int) (runResult, error) {
	const stableWindow = 30

	e, err := life.New(size, density)
	if err != nil {
		return runResult{}, err
	}
	e.SeedRandom(core.NewRNG(seed))
	res := runResult{seed: seed, initial: e.Len(), settled: -1}

	last, same := e.Len(), 0
	for i := 0; i < steps; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return runResult{}, err
			}
		}
		e.Step()
		if e.Len() == last {
			same++
		} else {
			last, same = e.Len(), 0
		}
		if same == stableWindow && res.settled < 0 {
			res.settled = i + 1 - stableWindow
		}
	}
	res.stats = e.Stats()
	return res, nil
}

func report(results []runResult) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].stats.Population > results[j].stats.Population
	})
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "seed\tinitial\tfinal\tbirths\tdeaths\tsettled\t")
	for _, r := range results {
		settled := "-"
		if r.settled >= 0 {
			settled = fmt.Sprint(r.settled)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\t\n",
			r.seed, r.initial, r.stats.Population, r.stats.Births, r.stats.Deaths, settled)
	}
	tw.Flush()
}
