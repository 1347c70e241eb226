package colordomain

import "errors"

// Error priority: structural validation (size, assignment range) is checked
// before propagation ever begins; propagation failures (empty domain) are
// only possible once simplification starts running.
var (
	// ErrInvalidSize is returned when n is not positive or exceeds bitdomain.MaxBits.
	ErrInvalidSize = errors.New("colordomain: invalid size")

	// ErrOutOfRange is returned when a row, column or color index lies outside [0, n).
	ErrOutOfRange = errors.New("colordomain: index out of range")

	// ErrConflictingFix is returned when SetFixed is asked to fix a cell to a
	// color no longer present in its domain (the same cell pre-assigned twice
	// with different colors, or a color Simplify has already pruned). Two
	// conflicting pre-assignments in different cells of one row or column
	// are not caught here; Simplify reports them as ErrEmptyDomain.
	ErrConflictingFix = errors.New("colordomain: conflicting fixed assignment")

	// ErrEmptyDomain is returned by Simplify when propagation forces some
	// cell's domain to empty: the instance has no
	// completion consistent with its pre-assigned cells.
	ErrEmptyDomain = errors.New("colordomain: propagation emptied a domain")

	// ErrNoValuesToFix is returned by InitialSolution when a row cannot be
	// completed because every remaining color collides with the rest of the row.
	ErrNoValuesToFix = errors.New("colordomain: no values left to fix row")

	// ErrPropagationDidNotConverge is returned by Simplify when the fixpoint
	// loop exceeds Config.PropagationIterationCap without stabilizing —
	// it signals a bug in the reduction rules rather than a genuinely
	// infeasible instance, since each application either fixes a cell or
	// does nothing, and there are only n*n cells to fix.
	ErrPropagationDidNotConverge = errors.New("colordomain: propagation did not converge")
)
