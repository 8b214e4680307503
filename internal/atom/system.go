package atom

import (
	"fmt"
	"math"
	"sort"
)

// System is the hyperfine level structure of one isotope: ground and
// excited manifolds, the dipole-allowed D1/D2 transitions, and the
// spontaneous decay channels from each excited state back to the ground
// manifold.
type System struct {
	Name          string
	NuclearSpin   float64
	GroundStates  []Level
	ExcitedP12    []Level
	ExcitedP32    []Level
	Transitions   []Transition
	DecayChannels []DecayChannel
}

// isotopeData parameterizes the shared builder. Hyperfine coefficients
// are angular frequencies (rad/s); F lists are per manifold.
type isotopeData struct {
	name        string
	nuclearSpin float64
	groundA     float64
	p12A        float64
	p32A, p32B  float64
	groundF     []float64
	p12F        []float64
	p32F        []float64
}

var isotopes = map[string]func() *System{
	"Rb87": NewRb87System,
	"Rb85": NewRb85System,
}

// NewSystem builds the level system for a registered isotope name.
func NewSystem(isotope string) (*System, error) {
	build, ok := isotopes[isotope]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIsotope, isotope)
	}
	return build(), nil
}

// Isotopes lists the registered isotope names, sorted.
func Isotopes() []string {
	names := make([]string, 0, len(isotopes))
	for name := range isotopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildSystem(d isotopeData) *System {
	s := &System{Name: d.name, NuclearSpin: d.nuclearSpin}

	for _, f := range d.groundF {
		s.GroundStates = append(s.GroundStates, Level{
			N: 5, L: 0, J: 0.5, F: f,
			Energy:      hyperfineShift(d.groundA, 0, d.nuclearSpin, 0.5, f),
			Label:       fmt.Sprintf("5S_1/2, F=%s", formatHalfInt(f)),
			NuclearSpin: d.nuclearSpin,
		})
	}

	d1Base := Planck * LightSpeed / D1Wavelength
	for _, f := range d.p12F {
		s.ExcitedP12 = append(s.ExcitedP12, Level{
			N: 5, L: 1, J: 0.5, F: f,
			Energy:      d1Base + hyperfineShift(d.p12A, 0, d.nuclearSpin, 0.5, f),
			Label:       fmt.Sprintf("5P_1/2, F=%s", formatHalfInt(f)),
			NuclearSpin: d.nuclearSpin,
		})
	}

	d2Base := Planck * LightSpeed / D2Wavelength
	for _, f := range d.p32F {
		s.ExcitedP32 = append(s.ExcitedP32, Level{
			N: 5, L: 1, J: 1.5, F: f,
			Energy:      d2Base + hyperfineShift(d.p32A, d.p32B, d.nuclearSpin, 1.5, f),
			Label:       fmt.Sprintf("5P_3/2, F=%s", formatHalfInt(f)),
			NuclearSpin: d.nuclearSpin,
		})
	}

	s.Transitions = append(
		s.buildTransitions(s.ExcitedP12, D1ReducedDipole),
		s.buildTransitions(s.ExcitedP32, D2ReducedDipole)...)
	s.DecayChannels = s.buildDecayChannels()

	return s
}

// hyperfineShift returns the hyperfine energy shift in joules for
// coefficients A, B (rad/s). The electric quadrupole B term vanishes for
// J=1/2.
func hyperfineShift(a, b, i, j, f float64) float64 {
	k := f*(f+1) - i*(i+1) - j*(j+1)
	omega := 0.5 * a * k
	if j != 0.5 {
		quad := b * (1.5*k*(k+1) - 2*i*(i+1)*j*(j+1))
		quad /= 2 * i * (2*i - 1) * 2 * j * (2*j - 1)
		omega += quad
	}
	return Hbar * omega
}

// cgSquared approximates the squared Clebsch-Gordan factor for an
// F_lower -> F_upper line within a J_lower -> J_upper fine-structure
// transition. Forbidden combinations return 0.
func cgSquared(fLower, fUpper, jLower, jUpper float64) float64 {
	if math.Abs(fUpper-fLower) > 1+1e-9 {
		return 0
	}
	switch {
	case jLower == 0.5 && jUpper == 0.5:
		return 0.5
	case jLower == 0.5 && jUpper == 1.5:
		fMax := math.Max(fLower, fUpper)
		return (2*fMax + 1) / ((2*jUpper + 1) * (2*jLower + 1))
	}
	return 1 / (2*jUpper + 1)
}

func dipoleAllowed(lower, upper Level) bool {
	return checkSelectionRules(lower, upper) == nil
}

// buildTransitions pairs every ground state with every excited state in
// the manifold, keeping the dipole-allowed lines with dipole moment
// reduced*sqrt(CG^2). The selection-rule filter runs first, so direct
// construction below cannot produce an invalid transition.
func (s *System) buildTransitions(excited []Level, reducedDipole float64) []Transition {
	var out []Transition
	for _, g := range s.GroundStates {
		for _, e := range excited {
			if !dipoleAllowed(g, e) {
				continue
			}
			cg := cgSquared(g.F, e.F, g.J, e.J)
			t := Transition{Lower: g, Upper: e, Dipole: reducedDipole * math.Sqrt(cg)}
			t.Frequency = (e.Energy - g.Energy) / Hbar
			out = append(out, t)
		}
	}
	return out
}

// buildDecayChannels normalizes branching per excited state over the
// allowed ground states, with channel rate = DLineDecayRate * branching.
func (s *System) buildDecayChannels() []DecayChannel {
	var out []DecayChannel
	excited := append(append([]Level{}, s.ExcitedP12...), s.ExcitedP32...)
	for _, e := range excited {
		type path struct {
			ground Level
			cg     float64
		}
		var paths []path
		total := 0.0
		for _, g := range s.GroundStates {
			if !dipoleAllowed(g, e) {
				continue
			}
			cg := cgSquared(g.F, e.F, g.J, e.J)
			paths = append(paths, path{g, cg})
			total += cg
		}
		for _, p := range paths {
			br := 0.0
			if total > 0 {
				br = p.cg / total
			}
			out = append(out, DecayChannel{
				Upper: e, Lower: p.ground,
				Rate:      DLineDecayRate * br,
				Branching: br,
			})
		}
	}
	return out
}

// Levels returns every level in the system, ground manifold first.
func (s *System) Levels() []Level {
	all := make([]Level, 0, len(s.GroundStates)+len(s.ExcitedP12)+len(s.ExcitedP32))
	all = append(all, s.GroundStates...)
	all = append(all, s.ExcitedP12...)
	all = append(all, s.ExcitedP32...)
	return all
}

// Level looks up a level by its label, e.g. "5S_1/2, F=2".
func (s *System) Level(label string) (Level, error) {
	for _, l := range s.Levels() {
		if l.Label == label {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %q in %s", ErrUnknownLevel, label, s.Name)
}

// TransitionBetween looks up the transition between two level labels.
func (s *System) TransitionBetween(lowerLabel, upperLabel string) (Transition, error) {
	for _, t := range s.Transitions {
		if t.Lower.Label == lowerLabel && t.Upper.Label == upperLabel {
			return t, nil
		}
	}
	return Transition{}, fmt.Errorf("%w: %q -> %q in %s",
		ErrUnknownTransition, lowerLabel, upperLabel, s.Name)
}

// TotalDecayRate sums the decay channel rates out of the given level.
func (s *System) TotalDecayRate(level Level) float64 {
	total := 0.0
	for _, c := range s.DecayChannels {
		if c.Upper.Equal(level) {
			total += c.Rate
		}
	}
	return total
}

// DecayRatesTo returns the partial rates from an excited level into two
// chosen ground levels. Levels without a channel get rate 0.
func (s *System) DecayRatesTo(excited, g1, g2 Level) (float64, float64) {
	r1, r2 := 0.0, 0.0
	for _, c := range s.DecayChannels {
		if !c.Upper.Equal(excited) {
			continue
		}
		switch {
		case c.Lower.Equal(g1):
			r1 = c.Rate
		case c.Lower.Equal(g2):
			r2 = c.Rate
		}
	}
	return r1, r2
}
