package spectra

import "github.com/san-kum/rbeit/internal/atom"

// DefaultRegularization softens the two-photon pole of the analytic EIT
// curve, rad/s.
const DefaultRegularization = 1e-6

// AnalyticEIT is the closed-form weak-probe EIT susceptibility
//
//	chi = Oc^2 / ((Dc + i G/2) + Op^2 / (4 (d2 + i eps)))
//
// with d2 the two-photon detuning Dp - Dc. It serves as a fast reference
// curve next to the full steady-state solve; the pump dressing appears
// as the second denominator term, which opens the transparency window at
// d2 = 0. eps keeps the curve finite exactly on the two-photon
// resonance.
type AnalyticEIT struct {
	PumpRabi     float64
	ProbeRabi    float64
	PumpDetuning float64
	Decay        float64

	// Regularization replaces DefaultRegularization when positive.
	Regularization float64
}

// NewAnalyticEIT captures the pump, probe and decay parameters of a
// lambda system into the analytic curve.
func NewAnalyticEIT(sys *atom.DoubleLambda) AnalyticEIT {
	return AnalyticEIT{
		PumpRabi:     sys.Pump.Rabi,
		ProbeRabi:    sys.Probe.Rabi,
		PumpDetuning: sys.Pump.Detuning,
		Decay:        sys.ExcitedDecayRate(),
	}
}

// At evaluates the curve at one probe detuning.
func (e AnalyticEIT) At(probeDetuning float64) complex128 {
	eps := e.Regularization
	if eps <= 0 {
		eps = DefaultRegularization
	}

	d2 := e.PumpDetuning - probeDetuning
	den := complex(probeDetuning, e.Decay/2) +
		complex(e.PumpRabi*e.PumpRabi, 0)/(4*complex(d2, eps))
	return complex(e.ProbeRabi*e.ProbeRabi, 0) / den
}

// Scan evaluates the curve over a probe detuning scan.
func (e AnalyticEIT) Scan(probeDetunings []float64) []complex128 {
	out := make([]complex128, len(probeDetunings))
	for i, det := range probeDetunings {
		out[i] = e.At(det)
	}
	return out
}
