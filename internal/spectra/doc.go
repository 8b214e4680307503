// Package spectra converts steady-state density matrices into
// macroscopic optical responses: the linear probe susceptibility, the
// third-order four-wave-mixing susceptibility and the generated signal
// intensity.
//
// The conversion formulas take the standard perturbative form. The probe
// coherence rho2e yields chi^(1) through the prefactor N d^2 / (2 eps0
// hbar), and the ground-state coherence rho12 yields chi^(3) through
// N d^2 / (eps0 hbar) with the probe field and one-photon denominator
// divided out. [Calculator] ties the conversions to a concrete
// double-lambda system and scans them over the probe detuning;
// [AnalyticEIT] provides the closed-form weak-probe reference curve.
//
// # Units
//
// Rates, Rabi frequencies and detunings are angular frequencies in
// rad/s. Densities are atoms/m^3, lengths m, intensities W/m^2.
// Susceptibilities are dimensionless.
package spectra
