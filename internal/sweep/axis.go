package sweep

import (
	"fmt"
	"math"

	"github.com/san-kum/rbeit/internal/bloch"
)

// Canonical sweep parameter names.
const (
	ParamProbeDetuning   = "probe_detuning"
	ParamPumpDetuning    = "pump_detuning"
	ParamPumpRabi        = "pump_rabi"
	ParamProbeRabi       = "probe_rabi"
	ParamGroundDephasing = "ground_dephasing"
)

// Long-standing alternate spellings.
var paramAliases = map[string]string{
	"coupling_detuning":   ParamPumpDetuning,
	"pump_rabi_frequency": ParamPumpRabi,
}

// Parameters lists the canonical sweep parameter names.
func Parameters() []string {
	return []string{
		ParamProbeDetuning,
		ParamPumpDetuning,
		ParamPumpRabi,
		ParamProbeRabi,
		ParamGroundDephasing,
	}
}

// Canonical resolves a parameter name or alias to its canonical form.
func Canonical(name string) (string, error) {
	switch name {
	case ParamProbeDetuning, ParamPumpDetuning, ParamPumpRabi,
		ParamProbeRabi, ParamGroundDephasing:
		return name, nil
	}
	if c, ok := paramAliases[name]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// apply writes a canonical parameter into a solver parameter set.
func apply(p *bloch.Params, canonical string, v float64) {
	switch canonical {
	case ParamProbeDetuning:
		p.ProbeDetuning = v
	case ParamPumpDetuning:
		p.PumpDetuning = v
	case ParamPumpRabi:
		p.PumpRabi = v
	case ParamProbeRabi:
		p.ProbeRabi = v
	case ParamGroundDephasing:
		p.GroundDephasing = v
	}
}

// Axis is one swept parameter with its sample values, all in rad/s.
type Axis struct {
	Name   string
	Values []float64
}

// Validate resolves the parameter name and requires a non-empty, finite
// and monotonic value grid.
func (a Axis) Validate() error {
	if _, err := Canonical(a.Name); err != nil {
		return err
	}
	if len(a.Values) == 0 {
		return fmt.Errorf("%w: %s has no values", ErrAxis, a.Name)
	}

	inc, dec := true, true
	for i, v := range a.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s value %g", ErrAxis, a.Name, v)
		}
		if i == 0 {
			continue
		}
		if v < a.Values[i-1] {
			inc = false
		}
		if v > a.Values[i-1] {
			dec = false
		}
	}
	if !inc && !dec {
		return fmt.Errorf("%w: %s values are not monotonic", ErrAxis, a.Name)
	}
	return nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = lo
		return vals
	}
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	vals[n-1] = hi
	return vals
}
