package sweep

import "errors"

var (
	// ErrUnknownParameter reports a sweep parameter name with no solver
	// binding.
	ErrUnknownParameter = errors.New("sweep: unknown parameter")

	// ErrAxis reports an empty, non-finite or non-monotonic value grid.
	ErrAxis = errors.New("sweep: invalid axis")

	// ErrShape reports result arrays whose lengths disagree with the
	// parameter grid.
	ErrShape = errors.New("sweep: shape mismatch")

	// ErrDuplicateAxes reports a 2D sweep whose axes resolve to the
	// same parameter.
	ErrDuplicateAxes = errors.New("sweep: duplicate sweep axes")

	// ErrNoCalculator reports a runner built without a calculator.
	ErrNoCalculator = errors.New("sweep: no calculator")
)
