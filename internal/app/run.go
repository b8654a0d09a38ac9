package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"golang.org/x/sync/errgroup"

	"nd-life/internal/core"
	"nd-life/internal/seed"
)

// Result is the outcome of one scenario.
type Result struct {
	Part        int
	Dims        int
	Generations int
	Active      int
}

func (r Result) String() string {
	return fmt.Sprintf("Part %d (%d dimensions) active cubes after %d cycles: %d",
		r.Part, r.Dims, r.Generations, r.Active)
}

// Run simulates pattern once per entry of cfg.Dims and returns the results in
// the same order. With cfg.Random the pattern is ignored and every scenario
// is reset from cfg.Seed instead. Every scenario owns its own simulation;
// with cfg.Parallel they run concurrently. The context is checked between
// generations.
func Run(ctx context.Context, cfg *Config, pattern *seed.Pattern, logger *log.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if pattern == nil && !cfg.Random {
		return nil, errors.New("no seed pattern given")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	factory := core.Sims()[cfg.Sim]

	results := make([]Result, len(cfg.Dims))
	g, ctx := errgroup.WithContext(ctx)
	if !cfg.Parallel {
		g.SetLimit(1)
	}
	for i, dims := range cfg.Dims {
		g.Go(func() error {
			sim := factory(map[string]string{
				"dims": strconv.Itoa(dims),
				"rule": cfg.Rule,
				"w":    strconv.Itoa(cfg.Width),
				"h":    strconv.Itoa(cfg.Height),
				"seed": strconv.FormatInt(cfg.Seed, 10),
			})
			if cfg.Random {
				sim.Reset(0)
			} else {
				sim.Load(pattern.Cells(dims))
			}
			if cfg.Verbose {
				logger.Printf("%s dims=%d: generation 0 population %d", sim.Name(), dims, sim.Population())
			}
			for gen := 0; gen < cfg.Generations; gen++ {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("dims=%d stopped at generation %d: %w", dims, gen, err)
				}
				sim.Step()
				if cfg.Verbose {
					logger.Printf("%s dims=%d: generation %d population %d", sim.Name(), dims, sim.Generation(), sim.Population())
				}
			}
			results[i] = Result{Part: i + 1, Dims: dims, Generations: sim.Generation(), Active: sim.Population()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
