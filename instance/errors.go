package instance

import "errors"

// Error priority: malformed token errors are surfaced before range errors,
// since a token that fails to parse as an integer has no range to check.
var (
	// ErrMalformedInput is returned when the token stream cannot be parsed
	// as the expected sequence of integers (too few tokens, non-numeric token).
	ErrMalformedInput = errors.New("instance: malformed input")

	// ErrInvalidSize is returned when n is not positive or exceeds the
	// maximum supported size.
	ErrInvalidSize = errors.New("instance: invalid size")

	// ErrOutOfRange is returned when an assignment's row, col or color lies
	// outside [0, n).
	ErrOutOfRange = errors.New("instance: assignment out of range")
)
