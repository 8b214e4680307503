package sweep

import (
	"errors"
	"testing"
)

func TestNewResultValidates(t *testing.T) {
	values := []float64{1, 2, 3}
	chi3 := make([]complex128, 3)
	intensity := make([]float64, 3)

	r, err := NewResult("probe_detuning", values, chi3, intensity, nil)
	if err != nil {
		t.Fatalf("valid result rejected: %v", err)
	}
	if r.Shape != [2]int{3, 1} || r.Points() != 3 || r.Is2D() {
		t.Errorf("shape = %v, points = %d, is2D = %v", r.Shape, r.Points(), r.Is2D())
	}
	if r.Meta["units"] != "rad/s" || r.Meta["sweep_type"] != "1D" {
		t.Errorf("meta = %v", r.Meta)
	}
	if r.Meta["timestamp"] == "" {
		t.Error("timestamp missing")
	}
	if r.Fixed == nil {
		t.Error("fixed map is nil")
	}

	if _, err := NewResult("x", values, chi3[:2], intensity, nil); !errors.Is(err, ErrShape) {
		t.Errorf("short chi3: err = %v, want ErrShape", err)
	}
	if _, err := NewResult("x", values, chi3, intensity[:1], nil); !errors.Is(err, ErrShape) {
		t.Errorf("short intensity: err = %v, want ErrShape", err)
	}
	if _, err := NewResult("x", nil, nil, nil, nil); !errors.Is(err, ErrShape) {
		t.Errorf("empty values: err = %v, want ErrShape", err)
	}
}

func TestNewResult2DValidates(t *testing.T) {
	p1 := make([]float64, 25)
	p2 := make([]float64, 20)
	chi3 := make([]complex128, 25*20)
	intensity := make([]float64, 25*20)

	r, err := NewResult2D("probe_detuning", p1, "pump_detuning", p2, chi3, intensity, nil)
	if err != nil {
		t.Fatalf("valid 2D result rejected: %v", err)
	}
	if r.Shape != [2]int{25, 20} || r.Points() != 500 || !r.Is2D() {
		t.Errorf("shape = %v, points = %d, is2D = %v", r.Shape, r.Points(), r.Is2D())
	}
	if r.Meta["sweep_type"] != "2D" {
		t.Errorf("meta = %v", r.Meta)
	}

	// A (25, 19) intensity grid against (25, 20) parameter axes must be
	// rejected outright.
	short := make([]float64, 25*19)
	if _, err := NewResult2D("probe_detuning", p1, "pump_detuning", p2, chi3, short, nil); !errors.Is(err, ErrShape) {
		t.Errorf("short intensity: err = %v, want ErrShape", err)
	}
	if _, err := NewResult2D("probe_detuning", p1, "pump_detuning", p2, chi3[:100], intensity, nil); !errors.Is(err, ErrShape) {
		t.Errorf("short chi3: err = %v, want ErrShape", err)
	}
	if _, err := NewResult2D("probe_detuning", p1, "probe_detuning", p2, chi3, intensity, nil); !errors.Is(err, ErrDuplicateAxes) {
		t.Errorf("duplicate names: err = %v, want ErrDuplicateAxes", err)
	}
	if _, err := NewResult2D("probe_detuning", nil, "pump_detuning", p2, nil, nil, nil); !errors.Is(err, ErrShape) {
		t.Errorf("empty axis: err = %v, want ErrShape", err)
	}
}

func TestResultAtIndexesRowMajor(t *testing.T) {
	p1 := []float64{0, 1, 2}
	p2 := []float64{0, 1}
	chi3 := make([]complex128, 6)
	intensity := make([]float64, 6)
	for i := range chi3 {
		chi3[i] = complex(float64(i), 0)
		intensity[i] = float64(10 * i)
	}

	r, err := NewResult2D("probe_detuning", p1, "pump_detuning", p2, chi3, intensity, nil)
	if err != nil {
		t.Fatalf("result: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			c, in := r.At(i, j)
			idx := i*2 + j
			if c != complex(float64(idx), 0) || in != float64(10*idx) {
				t.Errorf("At(%d, %d) = %v, %g, want index %d", i, j, c, in, idx)
			}
		}
	}
}
