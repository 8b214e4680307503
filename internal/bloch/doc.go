// Package bloch solves the steady-state optical Bloch equations for a
// three-level double-lambda system driven by a pump and a probe field.
//
// The state basis is {ground 1, ground 2, excited}: the pump couples
// ground 1 to the excited level, the probe couples ground 2 to the
// excited level. The trace constraint eliminates the excited population,
// leaving eight real unknowns (two populations plus the real and
// imaginary parts of the three coherences). [Solver] finds the root of
// the residual system with a damped Newton iteration and returns a
// repaired density matrix; non-convergence is reported through [Report],
// never as an error.
//
// [TwoLevel] carries the closed-form steady state of a single driven
// two-level atom. It is the exact limit of the three-level system when
// the probe coupling and the branching rate into ground 2 are both zero,
// so it doubles as a cross-check for the numerical solver.
//
// # Units
//
// Rabi frequencies, detunings, and all decay and dephasing rates are
// angular frequencies in rad/s. The equations are homogeneous in these
// rates, so any consistent rescaling (for instance working in units of
// the natural linewidth) yields the same density matrix.
package bloch
