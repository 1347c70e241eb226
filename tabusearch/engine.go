package tabusearch

import (
	"context"
	"math/rand"

	"github.com/mwinters-dev/latinsquare/colordomain"
	"github.com/mwinters-dev/latinsquare/evaluator"
	"github.com/mwinters-dev/latinsquare/rowindex"
	"github.com/mwinters-dev/latinsquare/solution"
	"github.com/mwinters-dev/latinsquare/tabu"
)

// Engine owns the mutable state of one tabu-search run: the current and
// best solutions found so far, the auxiliary evaluation tables, the tabu
// list, the restart controller, and the RNG stream it draws its initial
// solution, move tie-breaks and tabu jitter from. It is not safe for concurrent use — ParallelDriver gives
// each worker its own Engine over an independently derived RNG stream.
type Engine struct {
	cd  *colordomain.ColorDomain
	cfg Config
	rng *rand.Rand

	current *solution.Solution
	best    *solution.Solution
	eval    *evaluator.Evaluator
	rows    *rowindex.Index
	tabu    *tabu.Table

	iteration uint64
	// rt is the current restart gap threshold; it ratchets up toward
	// cfg.RestartThresholdUpperBound as restarts accumulate.
	rt int
	// restartCount counts restarts since rt was last raised.
	restartCount int

	tabuBucket    []evaluator.Move
	nonTabuBucket []evaluator.Move
}

// NewEngine builds an Engine for cd, drawing its initial row-feasible
// solution via rng.
func NewEngine(cd *colordomain.ColorDomain, rng *rand.Rand, cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	e := &Engine{cd: cd, cfg: cfg, rng: rng}
	if err := e.newStart(); err != nil {
		return nil, err
	}
	return e, nil
}

// Best returns the best solution found so far.
func (e *Engine) Best() *solution.Solution { return e.best }

// Iteration returns the number of moves applied since the engine was created
// or last restarted (a restart resets it to zero).
func (e *Engine) Iteration() uint64 { return e.iteration }

// newStart draws a fresh randomized initial solution from cd and resets all
// search state. It is only ever called once, from NewEngine: it is how the
// engine's first current/best solution comes into existence, not something
// Run falls back to when the search stalls.
func (e *Engine) newStart() error {
	grid, _, err := e.cd.InitialSolution(e.rng)
	if err != nil {
		return ErrNoFeasibleStart
	}
	cur := solution.New(grid, e.cd)
	eval, err := evaluator.New(grid, e.cd)
	if err != nil {
		return err
	}
	rows := rowindex.Build(grid, eval, e.cd)

	e.current = cur
	e.best = cur.Clone()
	e.eval = eval
	e.rows = rows
	e.tabu = tabu.New(e.cd.N())
	e.iteration = 0
	e.rt = e.cfg.RestartThreshold
	e.restartCount = 0
	return nil
}

// restart clears the tabu list, resets the iteration counter, and snaps
// current back to the best solution found so far. It fires whenever current
// has drifted more than rt worse than best, and slowly raises rt toward its
// upper bound as restarts accumulate, so the search widens its tolerance
// for drift the longer a run goes without a better restart strategy
// emerging.
func (e *Engine) restart() {
	e.tabu.Clear()
	e.iteration = 0
	e.current = e.best.Clone()
	eval, err := evaluator.New(e.current.Grid, e.cd)
	if err != nil {
		panic("tabusearch: rebuilding the evaluator for the best solution's own grid failed: " + err.Error())
	}
	e.eval = eval
	e.rows = rowindex.Build(e.current.Grid, eval, e.cd)

	if e.rt < e.cfg.RestartThresholdUpperBound {
		e.restartCount++
		if e.restartCount == e.cfg.RestartsPerThresholdIncrement {
			e.rt++
			e.restartCount = 0
		}
	}
}

func compareKeys(d1, d2, bestD1, bestD2 int) int {
	if d1 != bestD1 {
		if d1 < bestD1 {
			return -1
		}
		return 1
	}
	if d2 != bestD2 {
		if d2 < bestD2 {
			return -1
		}
		return 1
	}
	return 0
}

// isTabuMove reports whether performing move would place a color back into
// a cell it was recently moved out of: tabu is checked against the color
// that would land at each original column after the swap.
func (e *Engine) isTabuMove(move evaluator.Move) bool {
	grid := e.current.Grid
	c1 := grid[move.Row][move.Col1]
	c2 := grid[move.Row][move.Col2]
	return e.tabu.IsTabu(move.Row, move.Col1, c2, e.iteration) ||
		e.tabu.IsTabu(move.Row, move.Col2, c1, e.iteration)
}

const noDelta = 1 << 30

// findMove scans every row's conflicting columns for the best improving
// swap, keeping two pre-allocated candidate buckets (tabu and non-tabu) so
// ties are broken uniformly at random without allocating per iteration.
func (e *Engine) findMove() (evaluator.Move, bool) {
	e.tabuBucket = e.tabuBucket[:0]
	e.nonTabuBucket = e.nonTabuBucket[:0]
	bestTabuD1, bestTabuD2 := noDelta, noDelta
	bestNonTabuD1, bestNonTabuD2 := noDelta, noDelta

	n := e.cd.N()
	grid := e.current.Grid
	for i := 0; i < n; i++ {
		conflictCols := e.rows.Conflict(i)
		if conflictCols.Len() == 0 {
			continue
		}
		nonConflictCols := e.rows.NonConflict(i)

		consider := func(j1, j2 int) {
			if j2 == j1 {
				return
			}
			move := evaluator.Move{Row: i, Col1: j1, Col2: j2}
			d1 := e.eval.Delta1(grid, move)

			// Delta2 is only computed when Delta1 ties or improves on the
			// matching bucket's best.
			if e.isTabuMove(move) {
				if d1 > bestTabuD1 {
					return
				}
				d2 := e.eval.Delta2(grid, move)
				cmp := compareKeys(d1, d2, bestTabuD1, bestTabuD2)
				if cmp < 0 {
					bestTabuD1, bestTabuD2 = d1, d2
					e.tabuBucket = append(e.tabuBucket[:0], move)
				} else if cmp == 0 {
					e.tabuBucket = append(e.tabuBucket, move)
				}
				return
			}
			if d1 > bestNonTabuD1 {
				return
			}
			d2 := e.eval.Delta2(grid, move)
			cmp := compareKeys(d1, d2, bestNonTabuD1, bestNonTabuD2)
			if cmp < 0 {
				bestNonTabuD1, bestNonTabuD2 = d1, d2
				e.nonTabuBucket = append(e.nonTabuBucket[:0], move)
			} else if cmp == 0 {
				e.nonTabuBucket = append(e.nonTabuBucket, move)
			}
		}

		for _, j1 := range conflictCols.Elements() {
			for _, j2 := range conflictCols.Elements() {
				consider(j1, j2)
			}
			for _, j2 := range nonConflictCols.Elements() {
				consider(j1, j2)
			}
		}
	}

	// Aspiration: a tabu move is accepted anyway if it both beats the best
	// solution found so far and improves on the best non-tabu candidate.
	if len(e.tabuBucket) > 0 {
		candidateTotal := e.current.TotalConflict + bestTabuD1
		if candidateTotal < e.best.TotalConflict && bestTabuD1 < bestNonTabuD1 {
			return pickFromBucket(e.tabuBucket, e.rng), true
		}
	}
	if len(e.nonTabuBucket) > 0 {
		return pickFromBucket(e.nonTabuBucket, e.rng), true
	}
	return evaluator.Move{}, false
}

func pickFromBucket(bucket []evaluator.Move, rng *rand.Rand) evaluator.Move {
	return bucket[rng.Intn(len(bucket))]
}

// makeMove marks the tabu list from the pre-move conflict state and a
// tenure computed from the pre-move total conflict, then applies move and
// updates the evaluation tables and conflict counters incrementally.
func (e *Engine) makeMove(move evaluator.Move) {
	grid := e.current.Grid
	oldC1 := grid[move.Row][move.Col1]
	oldC2 := grid[move.Row][move.Col2]
	// j1 is always drawn from the row's conflict set (see findMove), so it
	// is marked unconditionally; j2 is only marked if it was itself
	// conflicting before the move — stronger suppression of immediate
	// reversal on the coordinate that was actually in conflict.
	j2WasConflict := e.rows.Conflict(move.Row).Contains(move.Col2)

	d1 := e.eval.Delta1(grid, move)
	d2 := e.eval.Delta2(grid, move)

	tenure := int(e.cfg.TabuCoefficient*float64(e.current.TotalConflict)) +
		e.cfg.JitterMin + e.rng.Intn(e.cfg.JitterMax-e.cfg.JitterMin+1)
	unlockAt := e.iteration + uint64(tenure)
	e.tabu.Mark(move.Row, move.Col1, oldC1, unlockAt)
	if j2WasConflict {
		e.tabu.Mark(move.Row, move.Col2, oldC2, unlockAt)
	}

	affected := e.eval.Apply(grid, move)
	e.rows.Refresh(e.eval, e.cd, affected)

	// A same-row swap never changes row conflict, so d1 is entirely a change
	// in column conflict.
	e.current.ColumnConflict += d1
	e.current.TotalConflict += d1
	e.current.DomainConflict += d2
	e.iteration++

	if e.cfg.DebugAssertions {
		e.verifyInvariants()
	}
}

// verifyInvariants recomputes the current solution's conflict counters from
// scratch and panics if they disagree with the incrementally maintained
// values — the Go analogue of the original engine's compile-time-gated
// conflict-grid verification. Only called when Config.DebugAssertions is set.
func (e *Engine) verifyInvariants() {
	recomputed := solution.New(e.current.Grid, e.cd)
	if recomputed.TotalConflict != e.current.TotalConflict {
		panic("tabusearch: incremental TotalConflict diverged from recomputed value")
	}
	if recomputed.DomainConflict != e.current.DomainConflict {
		panic("tabusearch: incremental DomainConflict diverged from recomputed value")
	}
}

// Run drives the search until either the current solution becomes optimal
// (zero color and domain conflict) or ctx is done, returning the best
// solution found. Run never returns an error for a timed-out context; it
// only errors if it stalls with no candidate move at all, which signals a
// bug rather than a genuinely infeasible instance, since a row-feasible
// grid always has at least one open swap while conflicts remain.
func (e *Engine) Run(ctx context.Context) (*solution.Solution, error) {
	for {
		if e.current.TotalConflict == 0 && e.current.DomainConflict == 0 {
			return e.best, nil
		}

		if e.iteration&e.cfg.DeadlineCheckMask == 0 {
			select {
			case <-ctx.Done():
				return e.best, nil
			default:
			}
		}

		move, found := e.findMove()
		if !found {
			return e.best, ErrNoMoveAvailable
		}
		e.makeMove(move)

		if e.current.LessOrEqual(e.best) {
			e.best = e.current.Clone()
		}
		if e.current.TotalConflict-e.best.TotalConflict > e.rt {
			e.restart()
		}
	}
}
