package quant

import (
	"math"
	"math/cmplx"
	"sort"
)

const (
	eigenTol       = 1e-12
	eigenMaxSweeps = 100
)

// Eigen diagonalizes the matrix, which must be Hermitian, by cyclic
// Jacobi rotations. It returns eigenvalues in ascending order and a
// unitary matrix with the matching eigenvectors as columns. The sweep
// stops once the off-diagonal norm drops below tol; exceeding maxSweeps
// returns ErrEigenConverge.
func (m Matrix) Eigen(tol float64, maxSweeps int) ([]float64, Matrix, error) {
	a := m.Clone()
	v := Identity(m.n)

	for sweep := 0; sweep < maxSweeps; sweep++ {
		if a.offDiagNorm() <= tol {
			return sortEigen(a, v)
		}
		for p := 0; p < m.n-1; p++ {
			for q := p + 1; q < m.n; q++ {
				jacobiRotate(a, v, p, q)
			}
		}
	}
	if a.offDiagNorm() <= tol {
		return sortEigen(a, v)
	}
	return nil, Matrix{}, ErrEigenConverge
}

// Eigenvalues returns the ascending spectrum with default tolerances.
func (m Matrix) Eigenvalues() ([]float64, error) {
	vals, _, err := m.Eigen(eigenTol, eigenMaxSweeps)
	return vals, err
}

func (m Matrix) offDiagNorm() float64 {
	sum := 0.0
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i == j {
				continue
			}
			v := m.At(i, j)
			sum += real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return math.Sqrt(sum)
}

// jacobiRotate zeroes a[p][q] with a unitary two-plane rotation, updating
// a in place (keeping it Hermitian) and accumulating the rotation into v.
func jacobiRotate(a, v Matrix, p, q int) {
	apq := a.At(p, q)
	r := cmplx.Abs(apq)
	if r == 0 {
		return
	}
	phase := apq / complex(r, 0)

	alpha := real(a.At(p, p))
	beta := real(a.At(q, q))
	tau := (beta - alpha) / (2 * r)

	var t float64
	if tau >= 0 {
		t = 1 / (tau + math.Sqrt(1+tau*tau))
	} else {
		t = -1 / (-tau + math.Sqrt(1+tau*tau))
	}
	c := 1 / math.Sqrt(1+t*t)
	s := t * c

	cc := complex(c, 0)
	sPhase := complex(s, 0) * phase
	sPhaseConj := cmplx.Conj(sPhase)

	for k := 0; k < a.n; k++ {
		if k == p || k == q {
			continue
		}
		akp := a.At(k, p)
		akq := a.At(k, q)
		a.Set(k, p, cc*akp-sPhaseConj*akq)
		a.Set(k, q, sPhase*akp+cc*akq)
		a.Set(p, k, cmplx.Conj(a.At(k, p)))
		a.Set(q, k, cmplx.Conj(a.At(k, q)))
	}

	app := c*c*alpha - 2*c*s*r + s*s*beta
	aqq := s*s*alpha + 2*c*s*r + c*c*beta
	a.Set(p, p, complex(app, 0))
	a.Set(q, q, complex(aqq, 0))
	a.Set(p, q, 0)
	a.Set(q, p, 0)

	for k := 0; k < v.n; k++ {
		vkp := v.At(k, p)
		vkq := v.At(k, q)
		v.Set(k, p, cc*vkp-sPhaseConj*vkq)
		v.Set(k, q, sPhase*vkp+cc*vkq)
	}
}

func sortEigen(a, v Matrix) ([]float64, Matrix, error) {
	n := a.n
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = real(a.At(i, i))
	}
	sort.SliceStable(idx, func(i, j int) bool { return vals[idx[i]] < vals[idx[j]] })

	sorted := make([]float64, n)
	vecs := New(n)
	for col, src := range idx {
		sorted[col] = vals[src]
		for row := 0; row < n; row++ {
			vecs.Set(row, col, v.At(row, src))
		}
	}
	return sorted, vecs, nil
}
