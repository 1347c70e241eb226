package indexset

import "errors"

// Error priority: capacity validity is checked before any per-element
// operation, and universe mismatches are checked before any binary
// set-algebra operation runs.
var (
	// ErrInvalidCapacity is returned when a requested capacity is negative.
	ErrInvalidCapacity = errors.New("indexset: capacity out of range")

	// ErrUniverseMismatch is the value binary operations (Union, Intersect, ...)
	// panic with when the two operands were built over different-sized
	// universes.
	ErrUniverseMismatch = errors.New("indexset: universe size mismatch")
)

// ErrOutOfRange marks an element outside {0, ..., capacity-1}. Methods that
// receive an out-of-range element panic with this error rather than
// returning it: an out-of-range id passed to a dense, fixed-universe set is
// a programmer error, not a condition callers are expected to recover from.
var ErrOutOfRange = errors.New("indexset: element out of range")
