package atom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRb87System_Levels(t *testing.T) {
	sys := NewRb87System()

	assert.Len(t, sys.GroundStates, 2)
	assert.Len(t, sys.ExcitedP12, 2)
	assert.Len(t, sys.ExcitedP32, 4)

	f1, err := sys.Level("5S_1/2, F=1")
	require.NoError(t, err)
	f2, err := sys.Level("5S_1/2, F=2")
	require.NoError(t, err)
	assert.Less(t, f1.Energy, f2.Energy, "F=1 lies below F=2 in the ground manifold")

	// Known 6.835 GHz ground hyperfine splitting.
	splitting := (f2.Energy - f1.Energy) / (2 * math.Pi * Hbar)
	assert.InEpsilon(t, 6.8347e9, splitting, 1e-3)
}

func TestRb85System_Levels(t *testing.T) {
	sys := NewRb85System()

	assert.Len(t, sys.GroundStates, 2)
	assert.Len(t, sys.ExcitedP32, 4)

	f2, err := sys.Level("5S_1/2, F=2")
	require.NoError(t, err)
	f3, err := sys.Level("5S_1/2, F=3")
	require.NoError(t, err)

	// Known 3.036 GHz splitting.
	splitting := (f3.Energy - f2.Energy) / (2 * math.Pi * Hbar)
	assert.InEpsilon(t, 3.0357e9, splitting, 1e-3)
}

func TestRb87System_TransitionCount(t *testing.T) {
	sys := NewRb87System()

	var d1, d2 int
	for _, tr := range sys.Transitions {
		switch tr.Upper.J {
		case 0.5:
			d1++
		case 1.5:
			d2++
		}
	}
	assert.Equal(t, 4, d1, "D1: F=1,2 -> F'=1,2")
	assert.Equal(t, 6, d2, "D2: F=1 -> F'=0,1,2 and F=2 -> F'=1,2,3")
}

func TestSystem_DecayChannelNormalization(t *testing.T) {
	for _, isotope := range Isotopes() {
		sys, err := NewSystem(isotope)
		require.NoError(t, err)

		excited := append(append([]Level{}, sys.ExcitedP12...), sys.ExcitedP32...)
		for _, e := range excited {
			var branching, rate float64
			n := 0
			for _, c := range sys.DecayChannels {
				if c.Upper.Equal(e) {
					branching += c.Branching
					rate += c.Rate
					n++
				}
			}
			if n == 0 {
				continue
			}
			assert.InDelta(t, 1.0, branching, 1e-12, "%s %s branching", isotope, e.Label)
			assert.InDelta(t, DLineDecayRate, rate, 1e-6*DLineDecayRate, "%s %s total rate", isotope, e.Label)
			assert.InDelta(t, DLineDecayRate, sys.TotalDecayRate(e), 1e-6*DLineDecayRate)
		}
	}
}

func TestRb87System_StretchedStateDecay(t *testing.T) {
	sys := NewRb87System()

	// 5P_3/2 F=0 can only reach ground F=1 (delta F rule).
	e, err := sys.Level("5P_3/2, F=0")
	require.NoError(t, err)
	var channels []DecayChannel
	for _, c := range sys.DecayChannels {
		if c.Upper.Equal(e) {
			channels = append(channels, c)
		}
	}
	require.Len(t, channels, 1)
	assert.Equal(t, "5S_1/2, F=1", channels[0].Lower.Label)
	assert.InDelta(t, 1.0, channels[0].Branching, 1e-12)
}

func TestSystem_Lookups(t *testing.T) {
	sys := NewRb87System()

	_, err := sys.Level("5S_1/2, F=9")
	assert.ErrorIs(t, err, ErrUnknownLevel)

	tr, err := sys.TransitionBetween("5S_1/2, F=2", "5P_3/2, F=2")
	require.NoError(t, err)
	assert.Greater(t, tr.Dipole, 0.0)
	assert.InEpsilon(t, D2Wavelength, tr.Wavelength(), 1e-3)

	_, err = sys.TransitionBetween("5S_1/2, F=2", "5P_3/2, F=0")
	assert.ErrorIs(t, err, ErrUnknownTransition, "delta F = 2 line is absent")
}

func TestNewSystem_UnknownIsotope(t *testing.T) {
	_, err := NewSystem("Cs133")
	assert.ErrorIs(t, err, ErrUnknownIsotope)
}

func TestCGSquared(t *testing.T) {
	tests := []struct {
		fLo, fUp, jLo, jUp float64
		want               float64
	}{
		{1, 2, 0.5, 0.5, 0.5},
		{2, 2, 0.5, 0.5, 0.5},
		{2, 3, 0.5, 1.5, 7.0 / 8.0},
		{1, 0, 0.5, 1.5, 3.0 / 8.0},
		{1, 3, 0.5, 1.5, 0},
	}
	for _, tt := range tests {
		got := cgSquared(tt.fLo, tt.fUp, tt.jLo, tt.jUp)
		assert.InDelta(t, tt.want, got, 1e-12, "F=%g->%g J=%g->%g", tt.fLo, tt.fUp, tt.jLo, tt.jUp)
	}
}

func TestHyperfineShift_CentroidWeights(t *testing.T) {
	// Degeneracy-weighted shifts sum to zero across a J=1/2 manifold:
	// sum_F (2F+1) * shift(F) = 0.
	var sum float64
	for _, f := range []float64{1, 2} {
		sum += (2*f + 1) * hyperfineShift(Rb87GroundA, 0, 1.5, 0.5, f)
	}
	assert.InDelta(t, 0, sum/Hbar/Rb87GroundA, 1e-9)
}
