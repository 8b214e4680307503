// Package quant provides the density-matrix toolkit for the steady-state
// solvers: a small complex matrix type, a Hermitian Jacobi eigensolver,
// an LU linear solve, and the physicality repair pipeline.
//
//   - [Matrix]: square complex matrix, transforms return new values
//   - [Matrix.Repair]: Hermitize -> renormalize -> clamp eigenvalues
//   - [Matrix.Validate]: Hermiticity / trace / positivity report
//   - [Matrix.Eigen]: eigendecomposition by cyclic Jacobi rotations
//   - [SolveLinear]: LU with partial pivoting, used for Newton steps
//
// Transforms never mutate the receiver. A density matrix returned by a
// solver is therefore safe to share between goroutines.
package quant
