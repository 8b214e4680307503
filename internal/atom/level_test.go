package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevel_Valid(t *testing.T) {
	l, err := NewLevel(Level{N: 5, L: 0, J: 0.5, F: 2, NuclearSpin: 1.5})
	require.NoError(t, err)
	assert.Equal(t, "5S_1/2, F=2", l.Label)
}

func TestNewLevel_GeneratedLabels(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Level{N: 5, L: 0, J: 0.5, F: 1}, "5S_1/2, F=1"},
		{Level{N: 5, L: 1, J: 1.5, F: 3}, "5P_3/2, F=3"},
		{Level{N: 5, L: 1, J: 0.5, F: 2}, "5P_1/2, F=2"},
		{Level{N: 4, L: 2, J: 2.5, F: 2.5}, "4D_5/2, F=5/2"},
	}
	for _, tt := range tests {
		l, err := NewLevel(tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.want, l.Label)
	}
}

func TestNewLevel_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		level Level
	}{
		{"n below 1", Level{N: 0, L: 0, J: 0.5, F: 1}},
		{"L >= n", Level{N: 1, L: 1, J: 0.5, F: 1}},
		{"negative L", Level{N: 2, L: -1, J: 0.5, F: 1}},
		{"J out of range", Level{N: 5, L: 0, J: 1.5, F: 1}},
		{"F outside coupling range", Level{N: 5, L: 0, J: 0.5, F: 5, NuclearSpin: 1.5}},
		{"mF beyond F", Level{N: 5, L: 0, J: 0.5, F: 1, MF: 2}},
		{"mF not half-integer", Level{N: 5, L: 0, J: 0.5, F: 1, MF: 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLevel(tt.level)
			assert.ErrorIs(t, err, ErrQuantumNumber)
		})
	}
}

func TestNewTransition_SelectionRules(t *testing.T) {
	ground := Level{N: 5, L: 0, J: 0.5, F: 1, Energy: 0, Label: "g"}
	excited := Level{N: 5, L: 1, J: 1.5, F: 2, Energy: 1e-19, Label: "e"}

	tr, err := NewTransition(ground, excited, 3.58e-29)
	require.NoError(t, err)
	assert.InDelta(t, 1e-19/Hbar, tr.Frequency, 1e-9*tr.Frequency)

	sameL := Level{N: 6, L: 0, J: 0.5, F: 1, Energy: 1e-19}
	_, err = NewTransition(ground, sameL, 1e-29)
	assert.ErrorIs(t, err, ErrSelectionRule, "delta L = 0 must be rejected")

	bigF := Level{N: 5, L: 1, J: 1.5, F: 3, Energy: 1e-19}
	_, err = NewTransition(ground, bigF, 1e-29)
	assert.ErrorIs(t, err, ErrSelectionRule, "delta F = 2 must be rejected")

	f0 := Level{N: 5, L: 0, J: 0.5, F: 0, Energy: 0}
	f0up := Level{N: 5, L: 1, J: 0.5, F: 0, Energy: 1e-19}
	_, err = NewTransition(f0, f0up, 1e-29)
	assert.ErrorIs(t, err, ErrSelectionRule, "F=0 -> F=0 must be rejected")

	_, err = NewTransition(excited, ground, 1e-29)
	assert.ErrorIs(t, err, ErrLevelOrdering)

	_, err = NewTransition(ground, excited, -1e-29)
	assert.ErrorIs(t, err, ErrNegativeRate)
}

func TestNewDecayChannel(t *testing.T) {
	ground := Level{N: 5, L: 0, J: 0.5, F: 1, Energy: 0}
	excited := Level{N: 5, L: 1, J: 1.5, F: 2, Energy: 1e-19}

	ch, err := NewDecayChannel(excited, ground, 3.8e7, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, ch.Branching)

	_, err = NewDecayChannel(excited, ground, -1, 0.5)
	assert.ErrorIs(t, err, ErrNegativeRate)

	_, err = NewDecayChannel(excited, ground, 3.8e7, 1.5)
	assert.ErrorIs(t, err, ErrBranching)

	_, err = NewDecayChannel(ground, excited, 3.8e7, 0.5)
	assert.ErrorIs(t, err, ErrLevelOrdering)
}
