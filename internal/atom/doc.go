// Package atom models rubidium hyperfine structure for EIT and
// four-wave-mixing calculations.
//
// The package provides:
//
//   - [Level]: a hyperfine level |n L_J, F> with validated quantum numbers
//   - [Transition]: an electric-dipole transition with selection rules
//   - [DecayChannel]: a spontaneous decay path with branching ratio
//   - [LaserField]: a driving field with Rabi frequency and detuning
//   - [System]: the full level/transition/decay table for one isotope
//   - [DoubleLambda]: two ground states coupled to a common excited state
//
// Systems are built from hyperfine constants ([NewRb87System],
// [NewRb85System]) with transition dipoles from reduced matrix elements
// scaled by approximate Clebsch-Gordan factors, and decay rates
// branching-normalized per excited state.
//
// # Units
//
// Energies are joules, rates and detunings angular frequencies (rad/s),
// dipole moments C*m, intensities W/m^2. Conversions from laboratory MHz
// belong at the caller boundary, not here.
//
// # Example
//
//	dl, _ := atom.NewDoubleLambda("Rb87")
//	dl.SetProbe(2*math.Pi*1e6, 0)
//	gamma := dl.System.TotalDecayRate(dl.Excited)
package atom
