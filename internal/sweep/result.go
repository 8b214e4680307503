package sweep

import (
	"fmt"
	"time"
)

// Result holds a completed sweep. Chi3 and Intensity are stored flat;
// in 2D sweeps they are row-major with the primary axis outermost. The
// constructors take ownership of the slices they are given.
type Result struct {
	ParamName   string
	ParamValues []float64

	SecondaryName   string
	SecondaryValues []float64

	Chi3      []complex128
	Intensity []float64

	// Shape is {primary points, secondary points}; 1 for the secondary
	// entry of a 1D sweep.
	Shape [2]int

	Fixed map[string]float64
	Meta  map[string]string
}

// NewResult assembles and validates a 1D sweep result.
func NewResult(name string, values []float64, chi3 []complex128, intensity []float64, fixed map[string]float64) (*Result, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no parameter values", ErrShape)
	}
	if len(chi3) != len(values) {
		return nil, fmt.Errorf("%w: %d chi3 samples for %d parameter values",
			ErrShape, len(chi3), len(values))
	}
	if len(intensity) != len(values) {
		return nil, fmt.Errorf("%w: %d intensity samples for %d parameter values",
			ErrShape, len(intensity), len(values))
	}

	return &Result{
		ParamName:   name,
		ParamValues: values,
		Chi3:        chi3,
		Intensity:   intensity,
		Shape:       [2]int{len(values), 1},
		Fixed:       nonNil(fixed),
		Meta:        newMeta("1D"),
	}, nil
}

// NewResult2D assembles and validates a 2D sweep result from row-major
// sample grids.
func NewResult2D(name string, values []float64, secondaryName string, secondaryValues []float64, chi3 []complex128, intensity []float64, fixed map[string]float64) (*Result, error) {
	if name == secondaryName {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAxes, name)
	}
	if len(values) == 0 || len(secondaryValues) == 0 {
		return nil, fmt.Errorf("%w: empty sweep axis", ErrShape)
	}

	n := len(values) * len(secondaryValues)
	if len(chi3) != n {
		return nil, fmt.Errorf("%w: %d chi3 samples for a (%d, %d) grid",
			ErrShape, len(chi3), len(values), len(secondaryValues))
	}
	if len(intensity) != n {
		return nil, fmt.Errorf("%w: %d intensity samples for a (%d, %d) grid",
			ErrShape, len(intensity), len(values), len(secondaryValues))
	}

	return &Result{
		ParamName:       name,
		ParamValues:     values,
		SecondaryName:   secondaryName,
		SecondaryValues: secondaryValues,
		Chi3:            chi3,
		Intensity:       intensity,
		Shape:           [2]int{len(values), len(secondaryValues)},
		Fixed:           nonNil(fixed),
		Meta:            newMeta("2D"),
	}, nil
}

func newMeta(sweepType string) map[string]string {
	return map[string]string{
		"units":      "rad/s",
		"sweep_type": sweepType,
		"timestamp":  time.Now().Format(time.RFC3339),
	}
}

func nonNil(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}

// Points returns the number of grid samples.
func (r *Result) Points() int { return len(r.Chi3) }

// Is2D reports whether a secondary axis is present.
func (r *Result) Is2D() bool { return r.SecondaryName != "" }

// At returns the chi^(3) and intensity samples at primary index i and
// secondary index j; j must be 0 for 1D results.
func (r *Result) At(i, j int) (complex128, float64) {
	idx := i*r.Shape[1] + j
	return r.Chi3[idx], r.Intensity[idx]
}
