package viz

import (
	"math"
	"strings"
	"testing"
)

func TestSpectrum(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = math.Sin(float64(i) / 5)
	}

	chart := Spectrum(values, 60, 10, "test spectrum")
	if chart == "" {
		t.Fatal("expected a chart")
	}
	if !strings.Contains(chart, "test spectrum") {
		t.Error("chart missing caption")
	}
}

func TestSpectrumTooFewPoints(t *testing.T) {
	if chart := Spectrum([]float64{1}, 60, 10, ""); chart != "" {
		t.Error("expected empty chart for a single point")
	}
}

func TestSusceptibilityPlot(t *testing.T) {
	absorption := []float64{0.1, 0.5, 0.1}
	dispersion := []float64{-0.2, 0, 0.2}

	chart := SusceptibilityPlot(absorption, dispersion, 40, 8)
	if chart == "" {
		t.Fatal("expected a chart")
	}

	if chart := SusceptibilityPlot(absorption, dispersion[:2], 40, 8); chart != "" {
		t.Error("expected empty chart for mismatched series")
	}
}

func TestDetuningCaption(t *testing.T) {
	caption := DetuningCaption("absorption", -2*math.Pi*10e6, 2*math.Pi*10e6)
	if !strings.Contains(caption, "absorption") {
		t.Errorf("caption %q missing series name", caption)
	}
	if !strings.Contains(caption, "-10.00 to 10.00 MHz") {
		t.Errorf("caption %q missing MHz range", caption)
	}
}
