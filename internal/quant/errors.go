package quant

import "errors"

var (
	// ErrDimension indicates mismatched or non-positive matrix dimensions.
	ErrDimension = errors.New("quant: invalid matrix dimension")

	// ErrSingular indicates a singular system in the linear solve.
	ErrSingular = errors.New("quant: singular matrix")

	// ErrEigenConverge indicates the Jacobi sweep hit its iteration cap.
	ErrEigenConverge = errors.New("quant: eigensolver did not converge")
)
