package spectra

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/rbeit/internal/atom"
)

func TestAnalyticEITTransparencyWindow(t *testing.T) {
	sys, err := atom.NewDoubleLambda("Rb87")
	if err != nil {
		t.Fatalf("lambda: %v", err)
	}
	e := NewAnalyticEIT(sys)

	if e.Decay != atom.DLineDecayRate {
		t.Fatalf("decay = %g, want D-line rate", e.Decay)
	}

	// On the two-photon resonance the pump term dominates the
	// denominator and the response collapses; one linewidth away the
	// medium absorbs normally.
	center := cmplx.Abs(e.At(0))
	side := cmplx.Abs(e.At(e.Decay))
	if center >= 1e-3*side {
		t.Errorf("|chi(0)| = %g vs |chi(G)| = %g, want deep transparency", center, side)
	}
}

func TestAnalyticEITRegularization(t *testing.T) {
	sys, err := atom.NewDoubleLambda("Rb87")
	if err != nil {
		t.Fatalf("lambda: %v", err)
	}

	sharp := NewAnalyticEIT(sys)
	soft := NewAnalyticEIT(sys)
	soft.Regularization = 2 * math.Pi * 10e3

	// A wider regularization leaves more residual response at the
	// center of the window.
	if cmplx.Abs(soft.At(0)) <= cmplx.Abs(sharp.At(0)) {
		t.Errorf("regularization did not soften the window: %g vs %g",
			cmplx.Abs(soft.At(0)), cmplx.Abs(sharp.At(0)))
	}
}

func TestAnalyticEITScan(t *testing.T) {
	e := AnalyticEIT{
		PumpRabi:  2 * math.Pi * 10e6,
		ProbeRabi: 2 * math.Pi * 1e6,
		Decay:     atom.DLineDecayRate,
	}

	dets := []float64{-1e7, -1e6, 0, 1e6, 1e7}
	chis := e.Scan(dets)
	if len(chis) != len(dets) {
		t.Fatalf("scan length = %d, want %d", len(chis), len(dets))
	}
	for i, chi := range chis {
		if chi != e.At(dets[i]) {
			t.Errorf("scan[%d] = %v, want %v", i, chi, e.At(dets[i]))
		}
	}
}
