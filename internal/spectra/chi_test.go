package spectra

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/rbeit/internal/atom"
)

func testMedium() Medium {
	return Medium{
		NumberDensity:     1e17,
		DipoleMoment:      atom.D2ReducedDipole,
		InteractionLength: 0.01,
	}
}

func TestMediumValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Medium)
	}{
		{"zero density", func(m *Medium) { m.NumberDensity = 0 }},
		{"negative density", func(m *Medium) { m.NumberDensity = -1e17 }},
		{"zero dipole", func(m *Medium) { m.DipoleMoment = 0 }},
		{"zero length", func(m *Medium) { m.InteractionLength = 0 }},
		{"negative length", func(m *Medium) { m.InteractionLength = -0.01 }},
	}

	if err := testMedium().Validate(); err != nil {
		t.Fatalf("valid medium rejected: %v", err)
	}
	for _, tc := range cases {
		m := testMedium()
		tc.mutate(&m)
		if err := m.Validate(); !errors.Is(err, ErrNonPositive) {
			t.Errorf("%s: err = %v, want ErrNonPositive", tc.name, err)
		}
	}
}

func TestBeamsValidate(t *testing.T) {
	b := Beams{PumpIntensity: 1e3, ProbeIntensity: 1e2}
	if err := b.Validate(); err != nil {
		t.Fatalf("valid beams rejected: %v", err)
	}
	for _, bad := range []Beams{
		{PumpIntensity: 0, ProbeIntensity: 1e2},
		{PumpIntensity: 1e3, ProbeIntensity: 0},
		{PumpIntensity: -1, ProbeIntensity: 1e2},
	} {
		if err := bad.Validate(); !errors.Is(err, ErrNonPositive) {
			t.Errorf("%+v: err = %v, want ErrNonPositive", bad, err)
		}
	}
}

func TestChi1SignsAndScale(t *testing.T) {
	m := testMedium()
	probeRabi := 2 * math.Pi * 1e6

	// An absorbing coherence has negative imaginary part.
	rho2e := complex(0.01, -0.05)
	chi, err := Chi1(rho2e, probeRabi, m)
	if err != nil {
		t.Fatalf("chi1: %v", err)
	}

	pref := m.NumberDensity * m.DipoleMoment * m.DipoleMoment /
		(2 * atom.Epsilon0 * atom.Hbar)
	want := complex(pref/probeRabi, 0) * rho2e
	if cmplx.Abs(chi-want)/cmplx.Abs(want) > 1e-12 {
		t.Errorf("chi1 = %v, want %v", chi, want)
	}

	if a := Absorption(chi); a <= 0 {
		t.Errorf("absorption = %g, want positive for a decaying coherence", a)
	}
	if d := Dispersion(chi); math.Abs(d-2*real(chi)) > 1e-18 {
		t.Errorf("dispersion = %g, want %g", d, 2*real(chi))
	}

	// Doubling the density doubles the response.
	m2 := m
	m2.NumberDensity *= 2
	chi2, err := Chi1(rho2e, probeRabi, m2)
	if err != nil {
		t.Fatalf("chi1 doubled density: %v", err)
	}
	if r := cmplx.Abs(chi2) / cmplx.Abs(chi); math.Abs(r-2) > 1e-12 {
		t.Errorf("density scaling ratio = %g, want 2", r)
	}
}

func TestChi1RejectsZeroProbe(t *testing.T) {
	if _, err := Chi1(complex(0, -0.1), 0, testMedium()); !errors.Is(err, ErrNonPositive) {
		t.Errorf("err = %v, want ErrNonPositive", err)
	}
	if _, err := Chi1(complex(0, -0.1), 1, Medium{}); !errors.Is(err, ErrNonPositive) {
		t.Errorf("empty medium: err = %v, want ErrNonPositive", err)
	}
}

func TestChi3PoleGuard(t *testing.T) {
	m := testMedium()

	// Detuning and decay both zero collapse the one-photon denominator.
	chi, err := Chi3(complex(0.1, 0.1), 1, 0, 0, m)
	if err != nil {
		t.Fatalf("chi3: %v", err)
	}
	if chi != 0 {
		t.Errorf("chi3 at the pole = %v, want 0", chi)
	}

	chi, err = Chi3(complex(0.1, 0.1), 2*math.Pi*1e6, 0, atom.DLineDecayRate, m)
	if err != nil {
		t.Fatalf("chi3: %v", err)
	}
	if chi == 0 || cmplx.IsNaN(chi) {
		t.Errorf("chi3 off the pole = %v, want finite nonzero", chi)
	}
}

func TestChi3Value(t *testing.T) {
	m := testMedium()
	rho12 := complex(-3e-4, 1e-4)
	probeRabi := 2 * math.Pi * 1e6
	probeDet := 2 * math.Pi * 2e6
	gamma := atom.DLineDecayRate

	chi, err := Chi3(rho12, probeRabi, probeDet, gamma, m)
	if err != nil {
		t.Fatalf("chi3: %v", err)
	}

	pref := m.NumberDensity * m.DipoleMoment * m.DipoleMoment /
		(atom.Epsilon0 * atom.Hbar)
	want := complex(pref, 0) * rho12 /
		(complex(probeDet, gamma/2) * complex(probeRabi/2, 0))
	if cmplx.Abs(chi-want)/cmplx.Abs(want) > 1e-12 {
		t.Errorf("chi3 = %v, want %v", chi, want)
	}
}

func TestFWMIntensityScaling(t *testing.T) {
	b := Beams{PumpIntensity: 1e3, ProbeIntensity: 1e2}
	chi3 := complex(2e-12, -1e-12)
	base := FWMIntensity(chi3, b, 0.01)
	if base <= 0 {
		t.Fatalf("intensity = %g, want positive", base)
	}

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"doubled chi3", FWMIntensity(2 * chi3, b, 0.01), 4 * base},
		{"doubled pump", FWMIntensity(chi3, Beams{2e3, 1e2}, 0.01), 4 * base},
		{"doubled probe", FWMIntensity(chi3, Beams{1e3, 2e2}, 0.01), 2 * base},
		{"doubled length", FWMIntensity(chi3, b, 0.02), 4 * base},
	}
	for _, tc := range cases {
		if math.Abs(tc.got-tc.want)/tc.want > 1e-12 {
			t.Errorf("%s: intensity = %g, want %g", tc.name, tc.got, tc.want)
		}
	}
}
