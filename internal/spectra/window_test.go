package spectra

import (
	"math"
	"testing"

	"github.com/san-kum/rbeit/internal/atom"
)

func eitAbsorptionScan(pumpRabi float64, span float64, points int) ([]float64, []float64) {
	e := AnalyticEIT{
		PumpRabi:  pumpRabi,
		ProbeRabi: 2 * math.Pi * 1e6,
		Decay:     atom.DLineDecayRate,
	}
	dets := make([]float64, points)
	abs := make([]float64, points)
	step := 2 * span / float64(points-1)
	for i := range dets {
		dets[i] = -span + float64(i)*step
		abs[i] = Absorption(e.At(dets[i]))
	}
	return dets, abs
}

func TestFindWindowEIT(t *testing.T) {
	dets, abs := eitAbsorptionScan(2*math.Pi*10e6, 2*math.Pi*30e6, 601)

	w, ok := FindWindow(dets, abs)
	if !ok {
		t.Fatal("no window found in an EIT profile")
	}
	// The dip sits on the two-photon resonance between the dressed-state
	// peaks at +-pump/2.
	if math.Abs(w.Center) > 2*math.Pi*0.5e6 {
		t.Errorf("window center = %g rad/s, want near zero", w.Center)
	}
	if w.Width <= 0 || w.Width >= 2*math.Pi*60e6 {
		t.Errorf("window width = %g rad/s, outside the scan", w.Width)
	}
	if w.Contrast < 0.5 || w.Contrast > 1 {
		t.Errorf("contrast = %g, want deep transparency in [0.5, 1]", w.Contrast)
	}
	if w.Depth <= 0 {
		t.Errorf("depth = %g, want positive", w.Depth)
	}
}

func TestFindWindowStrongerPumpWidensDip(t *testing.T) {
	dets, abs := eitAbsorptionScan(2*math.Pi*5e6, 2*math.Pi*40e6, 801)
	narrow, ok := FindWindow(dets, abs)
	if !ok {
		t.Fatal("no window at 5 MHz pump")
	}

	dets, abs = eitAbsorptionScan(2*math.Pi*20e6, 2*math.Pi*40e6, 801)
	wide, ok := FindWindow(dets, abs)
	if !ok {
		t.Fatal("no window at 20 MHz pump")
	}

	if wide.Width <= narrow.Width {
		t.Errorf("width at 20 MHz pump = %g, at 5 MHz = %g, want wider",
			wide.Width, narrow.Width)
	}
}

func TestFindWindowLorentzianRejected(t *testing.T) {
	// Pump off leaves a plain absorption peak with monotone wings.
	dets, abs := eitAbsorptionScan(0, 2*math.Pi*30e6, 301)
	if _, ok := FindWindow(dets, abs); ok {
		t.Error("window reported for a plain Lorentzian")
	}
}

func TestFindWindowTriangleDip(t *testing.T) {
	dets := []float64{-4, -3, -2, -1, 0, 1, 2, 3, 4}
	abs := []float64{5, 5, 5, 5, 0, 5, 5, 5, 5}

	w, ok := FindWindow(dets, abs)
	if !ok {
		t.Fatal("no window found")
	}
	if math.Abs(w.Center) > 1e-12 {
		t.Errorf("center = %g, want 0", w.Center)
	}
	// The half level 2.5 crosses each wall halfway between the minimum
	// and its neighbor.
	if math.Abs(w.Width-1) > 1e-12 {
		t.Errorf("width = %g, want 1", w.Width)
	}
	if w.Depth != 5 {
		t.Errorf("depth = %g, want 5", w.Depth)
	}
	if w.Contrast != 1 {
		t.Errorf("contrast = %g, want 1", w.Contrast)
	}
}

func TestFindWindowDegenerate(t *testing.T) {
	if _, ok := FindWindow([]float64{0, 1, 2}, []float64{1, 0, 1}); ok {
		t.Error("window found in a three-point scan")
	}
	if _, ok := FindWindow([]float64{0, 1, 2, 3, 4}, []float64{1, 0, 1}); ok {
		t.Error("window found with mismatched lengths")
	}
	flat := []float64{1, 1, 1, 1, 1, 1, 1}
	if _, ok := FindWindow([]float64{0, 1, 2, 3, 4, 5, 6}, flat); ok {
		t.Error("window found in a flat scan")
	}
}
