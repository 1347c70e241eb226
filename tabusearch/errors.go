package tabusearch

import "errors"

var (
	// ErrNoFeasibleStart is returned by NewEngine when the ColorDomain cannot produce even a row-feasible initial solution.
	ErrNoFeasibleStart = errors.New("tabusearch: could not draw a feasible initial solution")

	// ErrInvalidConfig is returned when a Config field is outside its valid range.
	ErrInvalidConfig = errors.New("tabusearch: invalid configuration")

	// ErrNoMoveAvailable is returned by Run when findMove finds no candidate
	// swap at all while conflicts remain. A row-feasible grid always has at
	// least one conflicting column with a partner to swap against, so this
	// signals an inconsistency in the row/conflict bookkeeping rather than a
	// genuinely stuck search.
	ErrNoMoveAvailable = errors.New("tabusearch: no candidate move found")
)
