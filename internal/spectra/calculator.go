package spectra

import (
	"github.com/san-kum/rbeit/internal/atom"
	"github.com/san-kum/rbeit/internal/bloch"
	"github.com/san-kum/rbeit/internal/quant"
)

// Default macroscopic parameters: a 1 cm cell of dilute vapor driven by
// a 1 kW/m^2 pump and a 100 W/m^2 probe.
const (
	DefaultNumberDensity     = 1e17 // atoms/m^3
	DefaultInteractionLength = 0.01 // m
	DefaultPumpIntensity     = 1e3  // W/m^2
	DefaultProbeIntensity    = 1e2  // W/m^2
)

// Point is one evaluated sample of the four-wave-mixing response.
type Point struct {
	Chi3      complex128
	Intensity float64
	Report    bloch.Report
}

// Calculator computes four-wave-mixing spectra for a double-lambda
// system. Pump and probe settings come from the system fields; the
// medium, beams and dephasing rates are calculator state.
type Calculator struct {
	System *atom.DoubleLambda
	Medium Medium
	Beams  Beams

	// Dephasing rates handed to the steady-state solver, rad/s.
	GroundDephasing  float64
	OpticalDephasing float64

	// Solver settings; zero values keep the solver defaults.
	MaxIterations int
	Tolerance     float64

	decayRate float64
}

// NewCalculator builds a calculator with the default medium and beams.
// The dipole moment is taken from the probe transition.
func NewCalculator(sys *atom.DoubleLambda) (*Calculator, error) {
	if sys == nil {
		return nil, ErrNoSystem
	}
	c := &Calculator{
		System: sys,
		Medium: Medium{
			NumberDensity:     DefaultNumberDensity,
			DipoleMoment:      sys.ProbeTransition.Dipole,
			InteractionLength: DefaultInteractionLength,
		},
		Beams: Beams{
			PumpIntensity:  DefaultPumpIntensity,
			ProbeIntensity: DefaultProbeIntensity,
		},
		decayRate: sys.ExcitedDecayRate(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the system handle and the macroscopic parameters.
func (c *Calculator) Validate() error {
	if c.System == nil {
		return ErrNoSystem
	}
	if err := c.Medium.Validate(); err != nil {
		return err
	}
	return c.Beams.Validate()
}

// decay returns the total decay rate of the excited level, computed
// once and cached.
func (c *Calculator) decay() float64 {
	if c.decayRate == 0 {
		c.decayRate = c.System.ExcitedDecayRate()
	}
	return c.decayRate
}

// BaseParams assembles solver parameters from the system fields and the
// calculator dephasing rates. Scans override the probe detuning per
// point.
func (c *Calculator) BaseParams() (bloch.Params, error) {
	if c.System == nil {
		return bloch.Params{}, ErrNoSystem
	}
	return bloch.ParamsFromLambda(c.System, c.GroundDephasing, c.OpticalDephasing)
}

func (c *Calculator) steady(p bloch.Params) (quant.Matrix, bloch.Report, error) {
	s, err := bloch.NewSolver(p)
	if err != nil {
		return quant.Matrix{}, bloch.Report{}, err
	}
	if c.MaxIterations > 0 {
		s.MaxIterations = c.MaxIterations
	}
	if c.Tolerance > 0 {
		s.Tolerance = c.Tolerance
	}
	return s.SolveSteadyState()
}

// At solves the steady state for the given parameters and converts it
// into the four-wave-mixing response. Non-convergence is carried in the
// report, not an error; the repaired matrix still yields a value.
func (c *Calculator) At(p bloch.Params) (Point, error) {
	if err := c.Validate(); err != nil {
		return Point{}, err
	}
	rho, rep, err := c.steady(p)
	if err != nil {
		return Point{}, err
	}
	chi3, err := Chi3(rho.At(0, 1), p.ProbeRabi, p.ProbeDetuning, c.decay(), c.Medium)
	if err != nil {
		return Point{}, err
	}
	return Point{
		Chi3:      chi3,
		Intensity: FWMIntensity(chi3, c.Beams, c.Medium.InteractionLength),
		Report:    rep,
	}, nil
}

// Chi3Spectrum evaluates chi^(3) over a probe detuning scan.
func (c *Calculator) Chi3Spectrum(probeDetunings []float64) ([]complex128, error) {
	base, err := c.BaseParams()
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(probeDetunings))
	for i, det := range probeDetunings {
		p := base
		p.ProbeDetuning = det
		pt, err := c.At(p)
		if err != nil {
			return nil, err
		}
		out[i] = pt.Chi3
	}
	return out, nil
}

// IntensitySpectrum evaluates the four-wave-mixing signal intensity over
// a probe detuning scan.
func (c *Calculator) IntensitySpectrum(probeDetunings []float64) ([]float64, error) {
	base, err := c.BaseParams()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(probeDetunings))
	for i, det := range probeDetunings {
		p := base
		p.ProbeDetuning = det
		pt, err := c.At(p)
		if err != nil {
			return nil, err
		}
		out[i] = pt.Intensity
	}
	return out, nil
}

// Susceptibility scans the probe detuning and returns the absorption
// and dispersion profiles of the linear probe response.
func (c *Calculator) Susceptibility(probeDetunings []float64) (absorption, dispersion []float64, err error) {
	base, err := c.BaseParams()
	if err != nil {
		return nil, nil, err
	}
	absorption = make([]float64, len(probeDetunings))
	dispersion = make([]float64, len(probeDetunings))
	for i, det := range probeDetunings {
		p := base
		p.ProbeDetuning = det
		rho, _, err := c.steady(p)
		if err != nil {
			return nil, nil, err
		}
		chi, err := Chi1(rho.At(1, 2), p.ProbeRabi, c.Medium)
		if err != nil {
			return nil, nil, err
		}
		absorption[i] = Absorption(chi)
		dispersion[i] = Dispersion(chi)
	}
	return absorption, dispersion, nil
}
