package quant

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Matrix is a square complex matrix backed by a flat row-major slice.
// Set is for construction; all other operations return new values.
type Matrix struct {
	n    int
	data []complex128
}

// New returns an n x n zero matrix.
func New(n int) Matrix {
	return Matrix{n: n, data: make([]complex128, n*n)}
}

// Identity returns the n x n identity.
func Identity(n int) Matrix {
	m := New(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Dim returns the matrix order.
func (m Matrix) Dim() int { return m.n }

// At returns element (i, j).
func (m Matrix) At(i, j int) complex128 { return m.data[i*m.n+j] }

// Set assigns element (i, j) in the backing array.
func (m Matrix) Set(i, j int, v complex128) { m.data[i*m.n+j] = v }

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	c := Matrix{n: m.n, data: make([]complex128, len(m.data))}
	copy(c.data, m.data)
	return c
}

// Trace returns the sum of diagonal elements.
func (m Matrix) Trace() complex128 {
	var t complex128
	for i := 0; i < m.n; i++ {
		t += m.At(i, i)
	}
	return t
}

// Scale returns m multiplied by a scalar.
func (m Matrix) Scale(s complex128) Matrix {
	c := m.Clone()
	for i := range c.data {
		c.data[i] *= s
	}
	return c
}

// ConjTranspose returns the Hermitian adjoint.
func (m Matrix) ConjTranspose() Matrix {
	c := New(m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			c.Set(j, i, cmplx.Conj(m.At(i, j)))
		}
	}
	return c
}

// MaxAbsDiff returns the largest element-wise |m - o|.
func (m Matrix) MaxAbsDiff(o Matrix) float64 {
	max := 0.0
	for i := range m.data {
		if d := cmplx.Abs(m.data[i] - o.data[i]); d > max {
			max = d
		}
	}
	return max
}

// IsFinite reports whether every element is free of NaN and Inf.
func (m Matrix) IsFinite() bool {
	for _, v := range m.data {
		if math.IsNaN(real(v)) || math.IsNaN(imag(v)) ||
			math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			v := m.At(i, j)
			fmt.Fprintf(&sb, "(%+.4e%+.4ei) ", real(v), imag(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
