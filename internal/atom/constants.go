package atom

import "math"

// Fundamental constants, SI (CODATA 2018).
const (
	Hbar       = 1.054571817e-34  // reduced Planck constant, J*s
	Planck     = 6.62607015e-34   // Planck constant, J*s
	Epsilon0   = 8.8541878128e-12 // vacuum permittivity, F/m
	LightSpeed = 2.99792458e8     // speed of light, m/s
)

// Rubidium D-line data (Steck compilations). Hyperfine A and B
// coefficients are angular frequencies in rad/s.
const (
	Rb87NuclearSpin = 1.5
	Rb85NuclearSpin = 2.5

	Rb87GroundA = 2 * math.Pi * 3.417341305452145e9
	Rb87P12A    = 2 * math.Pi * 408.328e6
	Rb87P32A    = 2 * math.Pi * 84.7185e6
	Rb87P32B    = 2 * math.Pi * 12.4965e6

	Rb85GroundA = 2 * math.Pi * 1.0119108130e9
	Rb85P12A    = 2 * math.Pi * 120.527e6
	Rb85P32A    = 2 * math.Pi * 25.0020e6
	Rb85P32B    = 2 * math.Pi * 25.790e6

	D1Wavelength = 794.978851e-9 // m
	D2Wavelength = 780.241209e-9 // m

	// Natural linewidth of the D2 line, rad/s. The D1 value differs by
	// a few percent; a single rate is used for both lines here.
	DLineDecayRate = 2 * math.Pi * 6.0666e6

	// Reduced dipole matrix elements <J||er||J'>, C*m.
	D1ReducedDipole = 2.5377e-29
	D2ReducedDipole = 3.58424e-29
)
