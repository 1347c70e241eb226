package evaluator

import "errors"

var (
	// ErrDimensionMismatch is returned when the grid passed to New does not
	// match the ColorDomain it is evaluated against.
	ErrDimensionMismatch = errors.New("evaluator: grid dimension mismatch")
)
