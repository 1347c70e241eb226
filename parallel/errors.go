package parallel

import "errors"

var (
	// ErrInvalidWorkerCount is returned when Run is asked for zero or
	// negative workers.
	ErrInvalidWorkerCount = errors.New("parallel: worker count must be positive")
)
