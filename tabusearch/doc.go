// Package tabusearch implements Engine, the tabu-search metaheuristic that
// drives a row-feasible initial completion toward zero column conflicts.
//
// Each iteration scans every row's conflicting columns for the best
// improving swap, preferring non-tabu moves but accepting a tabu move when
// it would beat the best solution found so far (the aspiration criterion).
// Ties among equally-good candidates are broken uniformly at random from a
// pre-allocated candidate bucket that is truncated and reused every
// iteration rather than reallocated, keeping the hot loop allocation-free.
//
// When the current solution drifts more than a restart threshold rt worse
// than the best solution found so far, Engine restarts: it clears its tabu
// table and iteration counter and snaps the current solution back to the
// best one. rt grows by one after a configurable number of restarts, up to
// a configurable ceiling.
package tabusearch
