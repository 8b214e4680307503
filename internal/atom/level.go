package atom

import (
	"fmt"
	"math"
)

// Level is a single hyperfine level |n L_J, F, mF>. Energy is relative to
// the ground-state hyperfine centroid, in joules. NuclearSpin of zero
// means unset; F is then unchecked against the I coupling range.
type Level struct {
	N           int
	L           int
	J           float64
	F           float64
	MF          float64
	Energy      float64
	Label       string
	NuclearSpin float64
}

// NewLevel validates quantum numbers and fills in a generated label when
// none is given.
func NewLevel(l Level) (Level, error) {
	if err := l.validate(); err != nil {
		return Level{}, err
	}
	if l.Label == "" {
		l.Label = l.generateLabel()
	}
	return l, nil
}

func (l Level) validate() error {
	if l.N < 1 {
		return fmt.Errorf("%w: n must be >= 1, got %d", ErrQuantumNumber, l.N)
	}
	if l.L < 0 || l.L >= l.N {
		return fmt.Errorf("%w: need 0 <= L < n, got L=%d, n=%d", ErrQuantumNumber, l.L, l.N)
	}
	lf := float64(l.L)
	if l.J < math.Abs(lf-0.5) || l.J > lf+0.5 {
		return fmt.Errorf("%w: need |L-1/2| <= J <= L+1/2, got J=%g, L=%d", ErrQuantumNumber, l.J, l.L)
	}
	if l.NuclearSpin > 0 {
		if !l.allowedF() {
			return fmt.Errorf("%w: F=%g outside |J-I|..J+I for J=%g, I=%g",
				ErrQuantumNumber, l.F, l.J, l.NuclearSpin)
		}
	}
	if l.MF < -l.F || l.MF > l.F {
		return fmt.Errorf("%w: need -F <= mF <= F, got mF=%g, F=%g", ErrQuantumNumber, l.MF, l.F)
	}
	if twice := l.MF * 2; math.Abs(twice-math.Round(twice)) > 1e-9 {
		return fmt.Errorf("%w: mF must be integer or half-integer, got %g", ErrQuantumNumber, l.MF)
	}
	return nil
}

func (l Level) allowedF() bool {
	fMin := math.Abs(l.J - l.NuclearSpin)
	fMax := l.J + l.NuclearSpin
	for f := fMin; f <= fMax+1e-9; f++ {
		if math.Abs(l.F-f) < 1e-9 {
			return true
		}
	}
	return false
}

var orbitalLabels = []string{"S", "P", "D", "F", "G", "H", "I"}

func (l Level) generateLabel() string {
	ls := fmt.Sprintf("L%d", l.L)
	if l.L < len(orbitalLabels) {
		ls = orbitalLabels[l.L]
	}
	return fmt.Sprintf("%d%s_%d/2, F=%s", l.N, ls, int(2*l.J), formatHalfInt(l.F))
}

func formatHalfInt(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%d/2", int(2*v))
}

// Equal compares quantum numbers, ignoring energy and label.
func (l Level) Equal(o Level) bool {
	return l.N == o.N && l.L == o.L &&
		math.Abs(l.J-o.J) < 1e-9 &&
		math.Abs(l.F-o.F) < 1e-9 &&
		math.Abs(l.MF-o.MF) < 1e-9
}

func (l Level) String() string {
	if l.Label != "" {
		return l.Label
	}
	return l.generateLabel()
}
