package bloch

import (
	"fmt"
	"math/cmplx"

	"github.com/san-kum/rbeit/internal/quant"
)

// TwoLevel is the closed-form steady state of a single two-level atom
// driven by one field. Rates are angular (rad/s). Dephasing is the pure
// dephasing of the optical coherence, on top of the radiative Decay/2.
type TwoLevel struct {
	Rabi      float64
	Detuning  float64
	Decay     float64
	Dephasing float64
}

// Validate rejects unusable two-level parameters. Decay must be
// strictly positive: a lossless driven atom never reaches a steady
// state.
func (t TwoLevel) Validate() error {
	switch {
	case t.Rabi < 0:
		return fmt.Errorf("%w: Rabi frequency %g", ErrInvalidParams, t.Rabi)
	case t.Decay <= 0:
		return fmt.Errorf("%w: decay rate %g must be positive", ErrInvalidParams, t.Decay)
	case t.Dephasing < 0:
		return fmt.Errorf("%w: dephasing %g", ErrInvalidParams, t.Dephasing)
	}
	return nil
}

// SolveSteadyState returns the steady-state 2x2 density matrix in the
// {ground, excited} basis. With gt = Decay/2 + Dephasing:
//
//	denom  = Decay*(Detuning^2 + gt^2) + Rabi^2*gt
//	rho_ee = (Rabi^2/2)*gt / denom
//	rho_ge = (Rabi*Decay/2)*(Detuning - i*gt) / denom
//
// which is the exact probe-off limit of the three-level solver. At zero
// dephasing it reduces to the saturation form
// (Rabi^2/4)/(Detuning^2 + Decay^2/4 + Rabi^2/2).
func (t TwoLevel) SolveSteadyState() (quant.Matrix, error) {
	if err := t.Validate(); err != nil {
		return quant.Matrix{}, err
	}

	gt := t.Decay/2 + t.Dephasing
	denom := t.Decay*(t.Detuning*t.Detuning+gt*gt) + t.Rabi*t.Rabi*gt

	rhoEE := t.Rabi * t.Rabi / 2 * gt / denom
	rhoGE := complex(t.Rabi*t.Decay/2/denom, 0) * complex(t.Detuning, -gt)

	m := quant.New(2)
	m.Set(0, 0, complex(1-rhoEE, 0))
	m.Set(1, 1, complex(rhoEE, 0))
	m.Set(0, 1, rhoGE)
	m.Set(1, 0, cmplx.Conj(rhoGE))
	return m, nil
}
