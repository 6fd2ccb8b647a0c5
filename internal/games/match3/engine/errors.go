package engine

import "errors"

// Error classes. Callers match them with errors.Is.
var (
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("engine: coordinate out of bounds")

	// ErrMissingBinding means a cell expected to own a handle has none.
	// It indicates desynchronized forward/backward maps.
	ErrMissingBinding = errors.New("engine: missing handle binding")

	// ErrInvariantViolation marks a broken engine invariant.
	// The current settle is aborted when this is returned.
	ErrInvariantViolation = errors.New("engine: invariant violation")

	// ErrInvalidSwap is wrapped by rejected swap results.
	ErrInvalidSwap = errors.New("engine: invalid swap")

	// ErrInvalidConfig is returned when a board cannot be created.
	ErrInvalidConfig = errors.New("engine: invalid config")
)
