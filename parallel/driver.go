package parallel

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mwinters-dev/latinsquare/colordomain"
	"github.com/mwinters-dev/latinsquare/internal/rngutil"
	"github.com/mwinters-dev/latinsquare/solution"
	"github.com/mwinters-dev/latinsquare/tabusearch"
)

// Run fans workers independent tabusearch.Engine instances out across an
// errgroup.Group. seedBase seeds one parent stream via rngutil.FromSeed, and
// each worker's own RNG is rngutil.Derive'd from that parent using the
// worker's index as the stream id, so the same (seedBase, workers) pair
// always reproduces the same set of avalanche-decorrelated worker streams
// regardless of scheduling order. Every worker searches against the same
// frozen cd; workers is clamped to runtime.NumCPU() if the caller asks for
// more than that.
//
// The first worker to reach an optimal (zero-conflict) solution cancels the
// shared context, which every other worker's Engine.Run polls at its
// regular deadline check — so Run returns as soon as one worker solves the
// instance, without needing a bespoke atomic "found" flag.
//
// global_best is reduced under a single mutex as each worker finishes; Run
// returns the best solution found across every worker.
func Run(ctx context.Context, cd *colordomain.ColorDomain, cfg tabusearch.Config, seedBase int64, workers int) (*solution.Solution, error) {
	if workers <= 0 {
		return nil, ErrInvalidWorkerCount
	}
	if max := runtime.NumCPU(); workers > max {
		workers = max
	}

	g, gctx := errgroup.WithContext(ctx)
	workCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	var (
		mu   sync.Mutex
		best *solution.Solution
	)

	// Derive every worker's RNG up front from a single parent stream: Derive
	// consumes one draw from the parent per call, so the derivation itself
	// must happen sequentially before the workers, which run concurrently,
	// ever touch their streams.
	parent := rngutil.FromSeed(seedBase)
	workerRNGs := make([]*rand.Rand, workers)
	for w := 0; w < workers; w++ {
		workerRNGs[w] = rngutil.Derive(parent, uint64(w))
	}

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			engine, err := tabusearch.NewEngine(cd, workerRNGs[w], cfg)
			if err != nil {
				return err
			}

			result, err := engine.Run(workCtx)
			if err != nil {
				return err
			}

			mu.Lock()
			if best == nil || result.Less(best) {
				best = result.Clone()
			}
			mu.Unlock()

			if result.IsOptimal() {
				cancel()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return best, nil
}
