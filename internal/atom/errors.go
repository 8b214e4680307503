package atom

import "errors"

// Domain errors for atomic structure validation.
var (
	// ErrQuantumNumber indicates an invalid quantum number combination.
	ErrQuantumNumber = errors.New("atom: invalid quantum number")

	// ErrSelectionRule indicates an electric-dipole forbidden transition.
	ErrSelectionRule = errors.New("atom: selection rule violation")

	// ErrLevelOrdering indicates upper/lower level energies out of order.
	ErrLevelOrdering = errors.New("atom: level energy ordering")

	// ErrNegativeRate indicates a negative rate or dipole moment.
	ErrNegativeRate = errors.New("atom: negative rate")

	// ErrBranching indicates a branching ratio outside [0, 1].
	ErrBranching = errors.New("atom: branching ratio out of range")

	// ErrPolarization indicates an unrecognized polarization label.
	ErrPolarization = errors.New("atom: invalid polarization")

	// ErrUnknownIsotope indicates an isotope with no registered builder.
	ErrUnknownIsotope = errors.New("atom: unknown isotope")

	// ErrUnknownLevel indicates a level label with no match in the system.
	ErrUnknownLevel = errors.New("atom: unknown level")

	// ErrUnknownTransition indicates no transition between the given levels.
	ErrUnknownTransition = errors.New("atom: unknown transition")

	// ErrLambdaConfig indicates an invalid double-lambda level choice.
	ErrLambdaConfig = errors.New("atom: invalid double-lambda configuration")
)
