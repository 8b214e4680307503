// Package viz renders spectra in the terminal.
//
// Static charts go through [Spectrum] and [SusceptibilityPlot]; the
// interactive explorer is a Bubble Tea program that fills a probe scan
// progressively and recomputes it when a drive parameter changes.
//
// # Key Bindings
//
//	1-4   - Switch observable (absorption, dispersion, |chi3|, intensity)
//	Tab   - Select parameter
//	Up/Dn - Nudge selected parameter
//	E     - Type an exact value for the selected parameter
//	Space - Pause/resume the scan
//	R     - Reset parameters and rescan
//	Q     - Quit
package viz
