package quant

import "math"

// DefaultTol is the tolerance for density-matrix validation.
const DefaultTol = 1e-6

// traceFloor below which renormalization falls back to the maximally
// mixed state instead of dividing.
const traceFloor = 1e-10

// Report is the physicality check result for a density matrix.
type Report struct {
	Hermitian            bool
	TraceOne             bool
	PositiveSemidefinite bool
}

// Valid reports whether all three checks passed.
func (r Report) Valid() bool {
	return r.Hermitian && r.TraceOne && r.PositiveSemidefinite
}

// Hermitize returns (m + m^dagger)/2.
func (m Matrix) Hermitize() Matrix {
	h := m.ConjTranspose()
	for i := range h.data {
		h.data[i] = (h.data[i] + m.data[i]) / 2
	}
	return h
}

// Renormalize returns m scaled to unit trace. A trace magnitude below
// 1e-10 falls back to the maximally mixed state I/n.
func (m Matrix) Renormalize() Matrix {
	tr := m.Trace()
	if math.Hypot(real(tr), imag(tr)) <= traceFloor {
		return Identity(m.n).Scale(complex(1/float64(m.n), 0))
	}
	return m.Scale(1 / tr)
}

// ClampEigen eigendecomposes the matrix, clamps negative eigenvalues to
// zero, renormalizes the eigenvalue sum to one and reconstructs
// V diag(lambda) V^dagger.
func (m Matrix) ClampEigen() (Matrix, error) {
	vals, vecs, err := m.Eigen(eigenTol, eigenMaxSweeps)
	if err != nil {
		return Matrix{}, err
	}

	sum := 0.0
	for i, v := range vals {
		if v < 0 {
			vals[i] = 0
		}
		sum += vals[i]
	}
	if sum <= 0 {
		return Identity(m.n).Scale(complex(1/float64(m.n), 0)), nil
	}
	for i := range vals {
		vals[i] /= sum
	}

	out := New(m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			var v complex128
			for k := 0; k < m.n; k++ {
				vik := vecs.At(i, k)
				vjk := vecs.At(j, k)
				v += complex(vals[k], 0) * vik * complex(real(vjk), -imag(vjk))
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// Repair applies the full physicality pipeline: Hermitize, renormalize
// the trace, clamp negative eigenvalues and renormalize again. The input
// is untouched. If the eigensolver fails (it cannot for the small
// Hermitian matrices produced here) the renormalized Hermitian matrix is
// returned as is.
func (m Matrix) Repair() Matrix {
	h := m.Hermitize().Renormalize()
	clamped, err := h.ClampEigen()
	if err != nil {
		return h
	}
	return clamped
}

// Validate checks Hermiticity, unit trace and positive semidefiniteness
// within tol. Eigenvalues are taken from the Hermitized matrix, matching
// the convention of symmetric eigensolvers that read one triangle.
func (m Matrix) Validate(tol float64) Report {
	var rep Report
	if !m.IsFinite() {
		return rep
	}
	rep.Hermitian = m.MaxAbsDiff(m.ConjTranspose()) <= tol
	rep.TraceOne = math.Abs(real(m.Trace())-1) <= tol

	vals, err := m.Hermitize().Eigenvalues()
	if err == nil {
		rep.PositiveSemidefinite = true
		for _, v := range vals {
			if v < -tol {
				rep.PositiveSemidefinite = false
				break
			}
		}
	}
	return rep
}
