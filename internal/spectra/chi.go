package spectra

import (
	"fmt"
	"math/cmplx"

	"github.com/san-kum/rbeit/internal/atom"
)

// poleGuard bounds the chi^(3) conversion denominator away from zero.
const poleGuard = 1e-30

// Medium holds the macroscopic properties of the vapor cell.
type Medium struct {
	NumberDensity     float64 // atoms/m^3
	DipoleMoment      float64 // probe transition dipole, C*m
	InteractionLength float64 // m
}

// Validate rejects non-positive medium parameters.
func (m Medium) Validate() error {
	switch {
	case m.NumberDensity <= 0:
		return fmt.Errorf("%w: number density %g", ErrNonPositive, m.NumberDensity)
	case m.DipoleMoment <= 0:
		return fmt.Errorf("%w: dipole moment %g", ErrNonPositive, m.DipoleMoment)
	case m.InteractionLength <= 0:
		return fmt.Errorf("%w: interaction length %g", ErrNonPositive, m.InteractionLength)
	}
	return nil
}

// Beams holds the driving beam intensities in W/m^2.
type Beams struct {
	PumpIntensity  float64
	ProbeIntensity float64
}

// Validate rejects non-positive beam intensities.
func (b Beams) Validate() error {
	switch {
	case b.PumpIntensity <= 0:
		return fmt.Errorf("%w: pump intensity %g", ErrNonPositive, b.PumpIntensity)
	case b.ProbeIntensity <= 0:
		return fmt.Errorf("%w: probe intensity %g", ErrNonPositive, b.ProbeIntensity)
	}
	return nil
}

func chi1Prefactor(m Medium) float64 {
	return m.NumberDensity * m.DipoleMoment * m.DipoleMoment / (2 * atom.Epsilon0 * atom.Hbar)
}

func chi3Prefactor(m Medium) float64 {
	return m.NumberDensity * m.DipoleMoment * m.DipoleMoment / (atom.Epsilon0 * atom.Hbar)
}

// Chi1 converts the steady-state probe coherence rho2e into the linear
// susceptibility. The probe Rabi frequency normalizes the field
// amplitude out of the coherence and must be positive.
func Chi1(rho2e complex128, probeRabi float64, m Medium) (complex128, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if probeRabi <= 0 {
		return 0, fmt.Errorf("%w: probe Rabi frequency %g", ErrNonPositive, probeRabi)
	}
	return complex(chi1Prefactor(m)/probeRabi, 0) * rho2e, nil
}

// Absorption is the absorptive part of a susceptibility, positive for an
// absorbing medium.
func Absorption(chi complex128) float64 { return -2 * imag(chi) }

// Dispersion is the refractive part of a susceptibility.
func Dispersion(chi complex128) float64 { return 2 * real(chi) }

// Chi3 converts the steady-state ground coherence rho12 into the
// third-order four-wave-mixing susceptibility. The one-photon
// denominator (Dc + i Gamma/2) and the probe field are divided out;
// when that denominator collapses below poleGuard the conversion is
// numerically meaningless and zero is returned.
func Chi3(rho12 complex128, probeRabi, probeDetuning, decayRate float64, m Medium) (complex128, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if probeRabi <= 0 {
		return 0, fmt.Errorf("%w: probe Rabi frequency %g", ErrNonPositive, probeRabi)
	}

	den := complex(probeDetuning, decayRate/2) * complex(probeRabi/2, 0)
	if cmplx.Abs(den) < poleGuard {
		return 0, nil
	}
	return complex(chi3Prefactor(m), 0) * rho12 / den, nil
}

// FWMIntensity converts chi^(3) into the generated four-wave-mixing
// signal intensity in W/m^2 for the given beams and interaction length.
func FWMIntensity(chi3 complex128, b Beams, interactionLength float64) float64 {
	mag := cmplx.Abs(chi3)
	return atom.Epsilon0 * atom.LightSpeed * mag * mag *
		b.PumpIntensity * b.PumpIntensity * b.ProbeIntensity *
		interactionLength * interactionLength
}
