package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// Spectrum renders one series as a terminal chart. Fewer than two
// points yields "".
func Spectrum(values []float64, width, height int, caption string) string {
	if len(values) < 2 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption))
}

// SusceptibilityPlot overlays the absorption and dispersion profiles of
// one probe scan.
func SusceptibilityPlot(absorption, dispersion []float64, width, height int) string {
	if len(absorption) < 2 || len(dispersion) != len(absorption) {
		return ""
	}
	return asciigraph.PlotMany([][]float64{absorption, dispersion},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption("absorption (red) / dispersion (blue)"))
}

// DetuningCaption labels a scan over an angular frequency axis, shown
// in linear MHz.
func DetuningCaption(name string, lo, hi float64) string {
	return fmt.Sprintf("%s, %.2f to %.2f MHz", name, lo/twoPiMHz, hi/twoPiMHz)
}
