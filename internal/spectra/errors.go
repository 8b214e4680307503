package spectra

import "errors"

var (
	// ErrNonPositive reports a medium, beam or field parameter that must
	// be strictly positive.
	ErrNonPositive = errors.New("spectra: parameter must be positive")

	// ErrNoSystem reports a calculator built without an atomic system.
	ErrNoSystem = errors.New("spectra: no atomic system")
)
