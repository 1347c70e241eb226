package bitdomain

import "errors"

// Error priority: capacity errors are checked before value-range errors,
// since an invalid capacity makes any value-range check meaningless.
var (
	// ErrInvalidCapacity is returned when a requested capacity is outside [0, MaxBits].
	ErrInvalidCapacity = errors.New("bitdomain: capacity out of range")

	// ErrValueOutOfRange is returned when a value passed to Insert/Erase
	// falls outside [0, capacity). Contains reports false for such a value.
	ErrValueOutOfRange = errors.New("bitdomain: value out of range")

	// ErrCapacityMismatch is returned by binary operations (Union, Intersect, ...)
	// when the two operands were built with different capacities.
	ErrCapacityMismatch = errors.New("bitdomain: capacity mismatch")

	// ErrEmptyDomain is returned by First when the domain is empty. NthSet on
	// an empty domain returns ErrIndexOutOfRange.
	ErrEmptyDomain = errors.New("bitdomain: domain is empty")

	// ErrIndexOutOfRange is returned by NthSet when the requested rank exceeds
	// the number of set bits.
	ErrIndexOutOfRange = errors.New("bitdomain: rank out of range")
)
