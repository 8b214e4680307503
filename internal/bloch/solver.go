package bloch

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/rbeit/internal/quant"
)

const (
	// DefaultMaxIterations caps the Newton loop.
	DefaultMaxIterations = 200

	// DefaultTolerance is the residual tolerance relative to the
	// dominant rate scale of the parameter set.
	DefaultTolerance = 1e-12

	maxHalvings   = 8
	diffStep      = 1e-8
	levenbergBase = 1e-10
)

// Solver finds the steady state of the double-lambda optical Bloch
// equations by damped Newton iteration with a forward-difference
// Jacobian. The zero value of MaxIterations and Tolerance selects the
// defaults. A Solver holds no state across calls, but distinct
// goroutines should use distinct instances when overriding InitialGuess.
type Solver struct {
	Params Params

	MaxIterations int
	Tolerance     float64

	// InitialGuess overrides the default seed, which places the whole
	// population in ground state 1. Must have length 8 when set.
	InitialGuess []float64
}

// Report describes how a solve ended. Non-convergence is reported here,
// never as an error; callers that need strict convergence check it
// explicitly.
type Report struct {
	Converged    bool
	Iterations   int
	ResidualNorm float64
}

// NewSolver validates the parameters and returns a solver with default
// iteration budget and tolerance.
func NewSolver(p Params) (*Solver, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Solver{Params: p}, nil
}

// SolveSteadyState solves at the parameter set's own probe detuning and
// returns the repaired 3x3 density matrix in the {ground1, ground2,
// excited} basis.
func (s *Solver) SolveSteadyState() (quant.Matrix, Report, error) {
	return s.SolveAt(s.Params.ProbeDetuning)
}

// SolveAt solves with the probe detuning overridden, leaving the solver
// unchanged. Detuning sweeps use this as their per-point entry.
func (s *Solver) SolveAt(probeDetuning float64) (quant.Matrix, Report, error) {
	p := s.Params
	p.ProbeDetuning = probeDetuning
	if err := p.Validate(); err != nil {
		return quant.Matrix{}, Report{}, err
	}

	x := make([]float64, stateDim)
	if s.InitialGuess != nil {
		if len(s.InitialGuess) != stateDim {
			return quant.Matrix{}, Report{}, fmt.Errorf("%w: got %d, want %d",
				ErrGuessLength, len(s.InitialGuess), stateDim)
		}
		copy(x, s.InitialGuess)
	} else {
		x[0] = 1
	}

	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	rep := newton(p, x, maxIter, tol*p.rateScale())
	return assemble(x), rep, nil
}

// newton iterates x toward a root of the residual system. The residual
// is checked before the first step, so an exact seed converges at
// iteration zero.
func newton(p Params, x []float64, maxIter int, absTol float64) Report {
	r := residual(p, x)
	norm := maxAbs(r)
	if norm <= absTol {
		return Report{Converged: true, ResidualNorm: norm}
	}

	for iter := 1; iter <= maxIter; iter++ {
		step, err := quant.SolveLinear(jacobian(p, x, r), negate(r))
		if err != nil {
			step, err = quant.SolveLinear(boosted(jacobian(p, x, r)), negate(r))
			if err != nil {
				return Report{Iterations: iter, ResidualNorm: norm}
			}
		}

		// Backtrack until the residual shrinks. If even the smallest
		// step fails to improve, the iterate is as good as roundoff
		// allows and further iterations cannot help.
		scale := 1.0
		improved := false
		var cand, cr []float64
		var cn float64
		for h := 0; h <= maxHalvings; h++ {
			cand = addScaled(x, step, scale)
			cr = residual(p, cand)
			cn = maxAbs(cr)
			if cn < norm {
				improved = true
				break
			}
			scale /= 2
		}
		if !improved {
			return Report{Converged: norm <= absTol, Iterations: iter, ResidualNorm: norm}
		}

		copy(x, cand)
		r, norm = cr, cn
		if norm <= absTol {
			return Report{Converged: true, Iterations: iter, ResidualNorm: norm}
		}
	}
	return Report{Iterations: maxIter, ResidualNorm: norm}
}

// jacobian builds the forward-difference Jacobian of the residual at x,
// reusing the residual r0 already computed there.
func jacobian(p Params, x, r0 []float64) [][]float64 {
	jac := make([][]float64, stateDim)
	for i := range jac {
		jac[i] = make([]float64, stateDim)
	}
	xh := make([]float64, stateDim)
	for j := 0; j < stateDim; j++ {
		copy(xh, x)
		h := diffStep * math.Max(math.Abs(x[j]), 1)
		xh[j] += h
		rj := residual(p, xh)
		for i := 0; i < stateDim; i++ {
			jac[i][j] = (rj[i] - r0[i]) / h
		}
	}
	return jac
}

// boosted adds a Levenberg-style diagonal term sized to the Jacobian
// magnitude, lifting structural rank deficiencies such as the undriven
// ground-2 row when the probe coupling and its branching rate are both
// zero.
func boosted(jac [][]float64) [][]float64 {
	largest := 0.0
	for _, row := range jac {
		for _, v := range row {
			if a := math.Abs(v); a > largest {
				largest = a
			}
		}
	}
	lambda := levenbergBase * (1 + largest)

	out := make([][]float64, len(jac))
	for i, row := range jac {
		out[i] = append([]float64(nil), row...)
		out[i][i] += lambda
	}
	return out
}

// assemble reconstructs the full density matrix from the unknown vector
// and repairs it into a physically valid state.
func assemble(x []float64) quant.Matrix {
	rho12 := complex(x[2], x[3])
	rho1e := complex(x[4], x[5])
	rho2e := complex(x[6], x[7])

	m := quant.New(3)
	m.Set(0, 0, complex(x[0], 0))
	m.Set(1, 1, complex(x[1], 0))
	m.Set(2, 2, complex(1-x[0]-x[1], 0))
	m.Set(0, 1, rho12)
	m.Set(1, 0, cmplx.Conj(rho12))
	m.Set(0, 2, rho1e)
	m.Set(2, 0, cmplx.Conj(rho1e))
	m.Set(1, 2, rho2e)
	m.Set(2, 1, cmplx.Conj(rho2e))
	return m.Repair()
}

func maxAbs(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if math.IsNaN(x) {
			return math.NaN()
		}
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}
	return out
}

func addScaled(x, step []float64, s float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] + s*step[i]
	}
	return out
}
