package spectra

// windowFloor is the minimum dip depth, relative to the flanking peak
// absorption, counted as a transparency window rather than ripple.
const windowFloor = 0.01

// Window describes the transparency dip of an EIT absorption profile:
// the interior absorption minimum between the two dressed-state peaks.
// All detuning quantities are rad/s in the units of the scanned axis.
type Window struct {
	Center   float64 // detuning of the absorption minimum
	Depth    float64 // flanking peak absorption minus the minimum
	Width    float64 // full width of the dip at half its depth
	Contrast float64 // Depth over the flanking peak absorption, 0..1
}

// FindWindow locates the transparency window of an absorption scan.
// It reports false when the scan has no interior dip (a plain
// absorption peak, monotone wings) or the dip is below the ripple
// floor. Detunings must be ascending and aligned with absorption.
func FindWindow(detunings, absorption []float64) (Window, bool) {
	n := len(absorption)
	if n < 5 || len(detunings) != n {
		return Window{}, false
	}

	iMin := 1
	for i := 2; i < n-1; i++ {
		if absorption[i] < absorption[iMin] {
			iMin = i
		}
	}

	iLeft, iRight := sideMax(absorption, 0, iMin), sideMax(absorption, iMin+1, n)
	peak := absorption[iLeft]
	if absorption[iRight] < peak {
		peak = absorption[iRight]
	}
	depth := peak - absorption[iMin]
	if peak <= 0 || depth < windowFloor*peak {
		return Window{}, false
	}

	half := absorption[iMin] + depth/2
	lo := crossing(detunings, absorption, iMin, iLeft, half)
	hi := crossing(detunings, absorption, iMin, iRight, half)

	contrast := depth / peak
	if contrast > 1 {
		contrast = 1
	}
	return Window{
		Center:   dipVertex(detunings, absorption, iMin),
		Depth:    depth,
		Width:    hi - lo,
		Contrast: contrast,
	}, true
}

func sideMax(values []float64, lo, hi int) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}

// crossing walks from the dip minimum toward a flanking peak and
// linearly interpolates the detuning where the absorption first reaches
// the half level. Falls back to the peak position when the level is
// never reached.
func crossing(detunings, absorption []float64, from, to int, level float64) float64 {
	step := 1
	if to < from {
		step = -1
	}
	for i := from; i != to; i += step {
		j := i + step
		if absorption[j] >= level {
			span := absorption[j] - absorption[i]
			if span == 0 {
				return detunings[j]
			}
			t := (level - absorption[i]) / span
			return detunings[i] + t*(detunings[j]-detunings[i])
		}
	}
	return detunings[to]
}

// dipVertex refines the minimum position with the vertex of the
// parabola through the three samples around it.
func dipVertex(detunings, absorption []float64, i int) float64 {
	y0, y1, y2 := absorption[i-1], absorption[i], absorption[i+1]
	den := y0 - 2*y1 + y2
	if den <= 0 {
		return detunings[i]
	}
	h := detunings[i+1] - detunings[i]
	return detunings[i] + h*(y0-y2)/(2*den)
}
