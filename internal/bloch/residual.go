package bloch

import "math/cmplx"

// stateDim is the number of real unknowns: the two ground populations
// plus real and imaginary parts of the three coherences. The excited
// population is eliminated through the trace constraint.
const stateDim = 8

// residual evaluates the steady-state optical Bloch equations at x.
//
// Layout of x: [rho11, rho22, Re rho12, Im rho12, Re rho1e, Im rho1e,
// Re rho2e, Im rho2e], with rho_ee = 1 - rho11 - rho22. The returned
// vector holds the time derivatives in the same layout; it vanishes
// exactly at a steady state. Pure function of its arguments.
//
// The equations follow from the rotating-frame Hamiltonian
// H = -delta2|2><2| - Dp|e><e| + (Op/2)(|1><e|+h.c.) + (Oc/2)(|2><e|+h.c.)
// with Lindblad decay at the branching rates and pure dephasing on the
// ground and optical coherences.
func residual(p Params, x []float64) []float64 {
	rho11 := x[0]
	rho22 := x[1]
	rhoEE := 1 - rho11 - rho22

	rho12 := complex(x[2], x[3])
	rho1e := complex(x[4], x[5])
	rho2e := complex(x[6], x[7])

	gammaOpt := p.DecayTotal/2 + p.OpticalDephasing
	pumpDrive := complex(0, p.PumpRabi/2)
	probeDrive := complex(0, p.ProbeRabi/2)

	d11 := p.DecayToG1*rhoEE + p.PumpRabi*imag(rho1e)
	d22 := p.DecayToG2*rhoEE + p.ProbeRabi*imag(rho2e)

	d12 := complex(-p.GroundDephasing, p.TwoPhotonDetuning())*rho12 +
		pumpDrive*cmplx.Conj(rho2e) - probeDrive*rho1e
	d1e := complex(-gammaOpt, p.PumpDetuning)*rho1e +
		pumpDrive*complex(rhoEE-rho11, 0) - probeDrive*rho12
	d2e := complex(-gammaOpt, p.ProbeDetuning)*rho2e +
		probeDrive*complex(rhoEE-rho22, 0) - pumpDrive*cmplx.Conj(rho12)

	return []float64{
		d11,
		d22,
		real(d12), imag(d12),
		real(d1e), imag(d1e),
		real(d2e), imag(d2e),
	}
}
