package atom

import (
	"fmt"
	"math"
)

// Polarization of a laser field.
type Polarization string

const (
	Linear     Polarization = "linear"
	SigmaPlus  Polarization = "sigma_plus"
	SigmaMinus Polarization = "sigma_minus"
	Circular   Polarization = "circular"
)

// LaserField is a CW driving field. Rabi is the on-resonance Rabi
// frequency and Detuning the offset from the addressed transition, both
// angular (rad/s). Frequency is the optical carrier in rad/s.
type LaserField struct {
	Rabi         float64
	Detuning     float64
	Frequency    float64
	Phase        float64
	Polarization Polarization
}

func NewLaserField(rabi, detuning float64) (LaserField, error) {
	f := LaserField{Rabi: rabi, Detuning: detuning, Polarization: Linear}
	if err := f.validate(); err != nil {
		return LaserField{}, err
	}
	return f, nil
}

func (f LaserField) validate() error {
	if f.Rabi < 0 {
		return fmt.Errorf("%w: Rabi frequency %g", ErrNegativeRate, f.Rabi)
	}
	switch f.Polarization {
	case Linear, SigmaPlus, SigmaMinus, Circular:
	default:
		return fmt.Errorf("%w: %q", ErrPolarization, f.Polarization)
	}
	return nil
}

// FieldAmplitude returns the electric field amplitude E = Omega*hbar/d
// in V/m for a transition with dipole moment d.
func (f LaserField) FieldAmplitude(dipole float64) float64 {
	return f.Rabi * Hbar / dipole
}

// Intensity returns the beam intensity I = eps0*c*E^2/2 in W/m^2 implied
// by the Rabi frequency on a transition with dipole moment d.
func (f LaserField) Intensity(dipole float64) float64 {
	e := f.FieldAmplitude(dipole)
	return 0.5 * Epsilon0 * LightSpeed * e * e
}

// SetIntensity fixes the Rabi frequency from a beam intensity in W/m^2,
// Omega = d*sqrt(2I/(eps0*c))/hbar.
func (f *LaserField) SetIntensity(intensity, dipole float64) error {
	if intensity < 0 {
		return fmt.Errorf("%w: intensity %g", ErrNegativeRate, intensity)
	}
	e := math.Sqrt(2 * intensity / (Epsilon0 * LightSpeed))
	f.Rabi = dipole * e / Hbar
	return nil
}

// EffectiveRabi returns the generalized Rabi frequency
// sqrt(Omega^2 + Delta^2).
func (f LaserField) EffectiveRabi() float64 {
	return math.Hypot(f.Rabi, f.Detuning)
}

func (f LaserField) String() string {
	return fmt.Sprintf("LaserField(rabi=%.3e, detuning=%.3e)", f.Rabi, f.Detuning)
}
