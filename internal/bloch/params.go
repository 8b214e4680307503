package bloch

import (
	"fmt"
	"math"

	"github.com/san-kum/rbeit/internal/atom"
)

// branchSlack absorbs roundoff when branching rates are computed from
// normalized ratios of the total decay rate.
const branchSlack = 1e-9

// Params collects everything one steady-state solve depends on. All
// fields are angular frequencies in rad/s. DecayToG1 and DecayToG2 are
// the partial decay rates from the excited level into each ground state;
// their sum may fall below DecayTotal when part of the decay leaves the
// lambda manifold, but may never exceed it. GroundDephasing acts on the
// ground-ground coherence, OpticalDephasing on the two optical
// coherences.
type Params struct {
	PumpRabi  float64
	ProbeRabi float64

	PumpDetuning  float64
	ProbeDetuning float64

	DecayTotal float64
	DecayToG1  float64
	DecayToG2  float64

	GroundDephasing  float64
	OpticalDephasing float64
}

// ParamsFromLambda derives solver parameters from a configured
// double-lambda system plus explicit dephasing rates.
func ParamsFromLambda(d *atom.DoubleLambda, groundDephasing, opticalDephasing float64) (Params, error) {
	g1, g2 := d.BranchingRates()
	p := Params{
		PumpRabi:         d.Pump.Rabi,
		ProbeRabi:        d.Probe.Rabi,
		PumpDetuning:     d.Pump.Detuning,
		ProbeDetuning:    d.Probe.Detuning,
		DecayTotal:       d.ExcitedDecayRate(),
		DecayToG1:        g1,
		DecayToG2:        g2,
		GroundDephasing:  groundDephasing,
		OpticalDephasing: opticalDephasing,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate rejects parameter sets outside the model's domain. It never
// rejects zero Rabi frequencies: the degenerate undriven system still
// has a well-defined steady state.
func (p Params) Validate() error {
	for _, v := range []float64{
		p.PumpRabi, p.ProbeRabi, p.PumpDetuning, p.ProbeDetuning,
		p.DecayTotal, p.DecayToG1, p.DecayToG2,
		p.GroundDephasing, p.OpticalDephasing,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value %g", ErrInvalidParams, v)
		}
	}
	switch {
	case p.PumpRabi < 0:
		return fmt.Errorf("%w: pump Rabi %g", ErrInvalidParams, p.PumpRabi)
	case p.ProbeRabi < 0:
		return fmt.Errorf("%w: probe Rabi %g", ErrInvalidParams, p.ProbeRabi)
	case p.DecayTotal < 0:
		return fmt.Errorf("%w: total decay rate %g", ErrInvalidParams, p.DecayTotal)
	case p.DecayToG1 < 0 || p.DecayToG2 < 0:
		return fmt.Errorf("%w: branching rates %g, %g", ErrInvalidParams, p.DecayToG1, p.DecayToG2)
	case p.GroundDephasing < 0:
		return fmt.Errorf("%w: ground dephasing %g", ErrInvalidParams, p.GroundDephasing)
	case p.OpticalDephasing < 0:
		return fmt.Errorf("%w: optical dephasing %g", ErrInvalidParams, p.OpticalDephasing)
	}
	if sum := p.DecayToG1 + p.DecayToG2; sum > p.DecayTotal*(1+branchSlack) {
		return fmt.Errorf("%w: branching rates sum %g exceeds total decay rate %g",
			ErrInvalidParams, sum, p.DecayTotal)
	}
	return nil
}

// TwoPhotonDetuning returns pump detuning minus probe detuning; zero at
// the Raman resonance.
func (p Params) TwoPhotonDetuning() float64 {
	return p.PumpDetuning - p.ProbeDetuning
}

// rateScale is the dominant rate magnitude, with a floor of one. The
// residuals are homogeneous of degree one in the rates, so convergence
// tolerances relative to this scale are unit-independent.
func (p Params) rateScale() float64 {
	s := 1.0
	for _, v := range []float64{
		p.PumpRabi, p.ProbeRabi,
		math.Abs(p.PumpDetuning), math.Abs(p.ProbeDetuning),
		p.DecayTotal, p.GroundDephasing, p.OpticalDephasing,
	} {
		if v > s {
			s = v
		}
	}
	return s
}
