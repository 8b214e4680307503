package quant

import (
	"math"
	"math/cmplx"
	"testing"
)

func hermitian3() Matrix {
	m := New(3)
	m.Set(0, 0, 2)
	m.Set(1, 1, 3)
	m.Set(2, 2, 1)
	m.Set(0, 1, complex(0.5, 0.25))
	m.Set(1, 0, complex(0.5, -0.25))
	m.Set(0, 2, complex(0, -0.5))
	m.Set(2, 0, complex(0, 0.5))
	m.Set(1, 2, complex(0.1, 0))
	m.Set(2, 1, complex(0.1, 0))
	return m
}

func TestEigen_Diagonal(t *testing.T) {
	m := New(3)
	m.Set(0, 0, 3)
	m.Set(1, 1, 1)
	m.Set(2, 2, 2)

	vals, _, err := m.Eigen(1e-12, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 2, 3}
	for i, w := range want {
		if math.Abs(vals[i]-w) > 1e-12 {
			t.Errorf("eigenvalue %d: got %g, want %g", i, vals[i], w)
		}
	}
}

func TestEigen_ComplexOffDiagonal(t *testing.T) {
	// [[2, i], [-i, 2]] has eigenvalues 1 and 3.
	m := New(2)
	m.Set(0, 0, 2)
	m.Set(1, 1, 2)
	m.Set(0, 1, complex(0, 1))
	m.Set(1, 0, complex(0, -1))

	vals, _, err := m.Eigen(1e-12, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(vals[0]-1) > 1e-10 || math.Abs(vals[1]-3) > 1e-10 {
		t.Errorf("got eigenvalues %v, want [1 3]", vals)
	}
}

func TestEigen_VectorResidual(t *testing.T) {
	m := hermitian3()
	vals, vecs, err := m.Eigen(1e-12, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A v_k = lambda_k v_k for every column.
	for k := 0; k < 3; k++ {
		for i := 0; i < 3; i++ {
			var av complex128
			for j := 0; j < 3; j++ {
				av += m.At(i, j) * vecs.At(j, k)
			}
			diff := cmplx.Abs(av - complex(vals[k], 0)*vecs.At(i, k))
			if diff > 1e-9 {
				t.Errorf("residual for eigenpair %d, row %d: %g", k, i, diff)
			}
		}
	}
}

func TestEigen_Orthonormal(t *testing.T) {
	_, vecs, err := hermitian3().Eigen(1e-12, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			var dot complex128
			for i := 0; i < 3; i++ {
				dot += cmplx.Conj(vecs.At(i, a)) * vecs.At(i, b)
			}
			want := complex128(0)
			if a == b {
				want = 1
			}
			if cmplx.Abs(dot-want) > 1e-10 {
				t.Errorf("column %d . column %d = %v, want %v", a, b, dot, want)
			}
		}
	}
}

func TestEigen_TraceInvariant(t *testing.T) {
	m := hermitian3()
	vals, _, err := m.Eigen(1e-12, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	if math.Abs(sum-real(m.Trace())) > 1e-10 {
		t.Errorf("eigenvalue sum %g != trace %g", sum, real(m.Trace()))
	}
}
