package atom

import (
	"fmt"
	"math"
)

// Transition is an electric-dipole transition between two levels.
// Dipole is the transition dipole matrix element in C*m, Frequency the
// angular transition frequency in rad/s.
type Transition struct {
	Lower     Level
	Upper     Level
	Dipole    float64
	Frequency float64
}

// NewTransition validates energy ordering, the E1 selection rules and the
// dipole sign, and derives the transition frequency from the level
// energies when not preset.
func NewTransition(lower, upper Level, dipole float64) (Transition, error) {
	t := Transition{Lower: lower, Upper: upper, Dipole: dipole}
	if err := t.validate(); err != nil {
		return Transition{}, err
	}
	t.Frequency = (upper.Energy - lower.Energy) / Hbar
	return t, nil
}

func (t Transition) validate() error {
	if t.Lower.Energy >= t.Upper.Energy {
		return fmt.Errorf("%w: lower %.3e J >= upper %.3e J",
			ErrLevelOrdering, t.Lower.Energy, t.Upper.Energy)
	}
	if err := checkSelectionRules(t.Lower, t.Upper); err != nil {
		return err
	}
	if t.Dipole < 0 {
		return fmt.Errorf("%w: dipole moment %g", ErrNegativeRate, t.Dipole)
	}
	return nil
}

// checkSelectionRules enforces the E1 rules shared by driven transitions
// and spontaneous decay: delta L = +-1, delta J and delta F and delta mF
// in {0, +-1}, and no F=0 to F=0.
func checkSelectionRules(lower, upper Level) error {
	if dL := upper.L - lower.L; dL != 1 && dL != -1 {
		return fmt.Errorf("%w: delta L must be +-1, got %d", ErrSelectionRule, dL)
	}
	if dJ := math.Abs(upper.J - lower.J); dJ > 1+1e-9 {
		return fmt.Errorf("%w: delta J must be 0 or +-1, got %g", ErrSelectionRule, dJ)
	}
	if upper.J == 0 && lower.J == 0 {
		return fmt.Errorf("%w: J=0 to J=0 forbidden", ErrSelectionRule)
	}
	if dF := math.Abs(upper.F - lower.F); dF > 1+1e-9 {
		return fmt.Errorf("%w: delta F must be 0 or +-1, got %g", ErrSelectionRule, dF)
	}
	if upper.F == 0 && lower.F == 0 {
		return fmt.Errorf("%w: F=0 to F=0 forbidden", ErrSelectionRule)
	}
	if dmF := math.Abs(upper.MF - lower.MF); dmF > 1+1e-9 {
		return fmt.Errorf("%w: delta mF must be 0 or +-1, got %g", ErrSelectionRule, dmF)
	}
	return nil
}

// Wavelength returns the vacuum wavelength in meters.
func (t Transition) Wavelength() float64 {
	if t.Frequency == 0 {
		return 0
	}
	return 2 * math.Pi * LightSpeed / t.Frequency
}

// RabiFrequency returns d*E/hbar for a field amplitude E in V/m.
func (t Transition) RabiFrequency(fieldAmplitude float64) float64 {
	return t.Dipole * fieldAmplitude / Hbar
}

func (t Transition) String() string {
	return fmt.Sprintf("%s -> %s", t.Lower, t.Upper)
}
