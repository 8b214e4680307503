package bloch

import "errors"

var (
	// ErrInvalidParams reports a parameter set rejected by validation:
	// a negative rate, a non-finite value, or branching rates that
	// exceed the total decay rate.
	ErrInvalidParams = errors.New("bloch: invalid parameters")

	// ErrGuessLength reports an initial guess whose length does not
	// match the residual system.
	ErrGuessLength = errors.New("bloch: initial guess length")
)
