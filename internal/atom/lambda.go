package atom

import (
	"fmt"
	"math"
)

// DoubleLambda is a three-level double-lambda configuration: two ground
// hyperfine levels coupled to a common excited level, pump on
// Ground1 <-> Excited and probe on Ground2 <-> Excited.
type DoubleLambda struct {
	Isotope string
	System  *System

	Ground1 Level
	Ground2 Level
	Excited Level

	PumpTransition  Transition
	ProbeTransition Transition

	Pump  LaserField
	Probe LaserField
}

// Default level triples and field strengths per isotope.
var lambdaDefaults = map[string]struct {
	g1, g2, e string
}{
	"Rb87": {"5S_1/2, F=1", "5S_1/2, F=2", "5P_3/2, F=2"},
	"Rb85": {"5S_1/2, F=2", "5S_1/2, F=3", "5P_3/2, F=3"},
}

const (
	DefaultPumpRabi  = 2 * math.Pi * 10e6
	DefaultProbeRabi = 2 * math.Pi * 1e6
)

// NewDoubleLambda builds the default lambda configuration for an isotope,
// pump at 2pi*10 MHz and probe at 2pi*1 MHz, both on resonance.
func NewDoubleLambda(isotope string) (*DoubleLambda, error) {
	def, ok := lambdaDefaults[isotope]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIsotope, isotope)
	}
	return NewDoubleLambdaLevels(isotope, def.g1, def.g2, def.e)
}

// NewDoubleLambdaLevels builds a lambda configuration with explicit level
// labels.
func NewDoubleLambdaLevels(isotope, g1Label, g2Label, eLabel string) (*DoubleLambda, error) {
	sys, err := NewSystem(isotope)
	if err != nil {
		return nil, err
	}

	d := &DoubleLambda{Isotope: isotope, System: sys}
	if d.Ground1, err = sys.Level(g1Label); err != nil {
		return nil, err
	}
	if d.Ground2, err = sys.Level(g2Label); err != nil {
		return nil, err
	}
	if d.Excited, err = sys.Level(eLabel); err != nil {
		return nil, err
	}
	if d.PumpTransition, err = sys.TransitionBetween(g1Label, eLabel); err != nil {
		return nil, err
	}
	if d.ProbeTransition, err = sys.TransitionBetween(g2Label, eLabel); err != nil {
		return nil, err
	}

	d.Pump = LaserField{
		Rabi:         DefaultPumpRabi,
		Frequency:    d.PumpTransition.Frequency,
		Polarization: Linear,
	}
	d.Probe = LaserField{
		Rabi:         DefaultProbeRabi,
		Frequency:    d.ProbeTransition.Frequency,
		Polarization: Linear,
	}

	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DoubleLambda) validate() error {
	if d.Ground1.Equal(d.Ground2) {
		return fmt.Errorf("%w: ground states must differ", ErrLambdaConfig)
	}
	if d.Ground1.Energy >= d.Excited.Energy || d.Ground2.Energy >= d.Excited.Energy {
		return fmt.Errorf("%w: ground states must lie below the excited state", ErrLambdaConfig)
	}
	if d.Ground1.L != d.Ground2.L {
		return fmt.Errorf("%w: ground states must share L", ErrLambdaConfig)
	}
	if math.Abs(d.Ground1.J-d.Ground2.J) > 0.01 {
		return fmt.Errorf("%w: ground states must share J", ErrLambdaConfig)
	}
	return nil
}

// SetPump updates the pump Rabi frequency and detuning (rad/s).
func (d *DoubleLambda) SetPump(rabi, detuning float64) error {
	if rabi < 0 {
		return fmt.Errorf("%w: pump Rabi %g", ErrNegativeRate, rabi)
	}
	d.Pump.Rabi = rabi
	d.Pump.Detuning = detuning
	return nil
}

// SetProbe updates the probe Rabi frequency and detuning (rad/s).
func (d *DoubleLambda) SetProbe(rabi, detuning float64) error {
	if rabi < 0 {
		return fmt.Errorf("%w: probe Rabi %g", ErrNegativeRate, rabi)
	}
	d.Probe.Rabi = rabi
	d.Probe.Detuning = detuning
	return nil
}

// TwoPhotonDetuning returns pump detuning minus probe detuning; zero at
// the Raman (EIT) resonance.
func (d *DoubleLambda) TwoPhotonDetuning() float64 {
	return d.Pump.Detuning - d.Probe.Detuning
}

// ExcitedDecayRate is the total spontaneous decay rate out of the shared
// excited level.
func (d *DoubleLambda) ExcitedDecayRate() float64 {
	return d.System.TotalDecayRate(d.Excited)
}

// BranchingRates returns the partial decay rates from the excited level
// into Ground1 and Ground2.
func (d *DoubleLambda) BranchingRates() (float64, float64) {
	return d.System.DecayRatesTo(d.Excited, d.Ground1, d.Ground2)
}

func (d *DoubleLambda) String() string {
	return fmt.Sprintf("DoubleLambda(%s, |1>=%s, |2>=%s, |e>=%s)",
		d.Isotope, d.Ground1.Label, d.Ground2.Label, d.Excited.Label)
}
