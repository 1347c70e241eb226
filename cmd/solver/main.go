// Command solver reads a Latin-square completion instance from stdin,
// propagates and simplifies its color domains, runs tabu search (optionally
// across several parallel workers) until the time budget expires or an
// optimal completion is found, and writes the resulting n x n grid to
// stdout.
//
// Usage:
//
//	solver <time_limit_seconds> <random_seed> [num_threads]
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/mwinters-dev/latinsquare/colordomain"
	"github.com/mwinters-dev/latinsquare/instance"
	"github.com/mwinters-dev/latinsquare/internal/rngutil"
	"github.com/mwinters-dev/latinsquare/parallel"
	"github.com/mwinters-dev/latinsquare/solution"
	"github.com/mwinters-dev/latinsquare/tabusearch"
)

var logger = log.New(os.Stderr, "solver: ", log.LstdFlags)

func main() {
	os.Exit(run())
}

func run() int {
	timeLimit, seed, threads, err := parseArgs(os.Args[1:])
	if err != nil {
		logger.Println(err)
		return 1
	}

	inst, err := instance.Parse(os.Stdin)
	if err != nil {
		logger.Printf("parsing instance: %v", err)
		return 1
	}

	cd, err := colordomain.New(inst.N, colordomain.DefaultConfig())
	if err != nil {
		logger.Printf("building color domain: %v", err)
		return 1
	}
	for _, a := range inst.Assignments {
		if err := cd.SetFixed(a.Row, a.Col, a.Color); err != nil {
			logger.Printf("fixing (%d,%d)=%d: %v", a.Row, a.Col, a.Color, err)
			return 1
		}
	}
	if err := cd.Simplify(); err != nil {
		logger.Printf("propagation: %v", err)
		return 1
	}
	logger.Printf("propagation fixed %d/%d cells, %d total domain size remaining",
		cd.FixedNum(), inst.N*inst.N, cd.TotalDomainSize())

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeLimit)*time.Second)
	defer cancel()

	var best *solution.Solution
	cfg := tabusearch.DefaultConfig()
	if threads <= 1 {
		rng := rngutil.FromSeed(seed)
		engine, err := tabusearch.NewEngine(cd, rng, cfg)
		if err != nil {
			logger.Printf("initializing search: %v", err)
			return 1
		}
		best, err = engine.Run(ctx)
		if err != nil {
			logger.Printf("running search: %v", err)
			return 1
		}
	} else {
		best, err = parallel.Run(ctx, cd, cfg, seed, threads)
		if err != nil {
			logger.Printf("running parallel search: %v", err)
			return 1
		}
	}

	logger.Printf("best solution: total_conflict=%d domain_conflict=%d optimal=%v",
		best.TotalConflict, best.DomainConflict, best.IsOptimal())

	if err := instance.WriteGrid(os.Stdout, best.Grid); err != nil {
		logger.Printf("writing output: %v", err)
		return 1
	}
	return 0
}

func parseArgs(args []string) (timeLimit int, seed int64, threads int, err error) {
	if len(args) < 2 || len(args) > 3 {
		return 0, 0, 0, errors.New("usage: solver <time_limit_seconds> <random_seed> [num_threads]")
	}
	tl, err := strconv.Atoi(args[0])
	if err != nil || tl <= 0 {
		return 0, 0, 0, errors.New("time_limit_seconds must be a positive integer")
	}
	sd, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, 0, errors.New("random_seed must be an integer")
	}
	th := 1
	if len(args) == 3 {
		th, err = strconv.Atoi(args[2])
		if err != nil || th <= 0 {
			return 0, 0, 0, errors.New("num_threads must be a positive integer")
		}
	}
	return tl, sd, th, nil
}
