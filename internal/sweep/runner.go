package sweep

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/san-kum/rbeit/internal/bloch"
	"github.com/san-kum/rbeit/internal/spectra"
)

// Default sweep resolutions.
const (
	DefaultProbePoints = 100
	DefaultRabiPoints  = 50
	DefaultPumpPoints  = 50
)

// Runner evaluates sweep grids against a calculator. Each grid point is
// solved independently by a bounded worker pool and written back by
// index, so identical runs produce identical samples. The zero Log
// discards; non-converged points are reported through it and kept.
type Runner struct {
	Calc *spectra.Calculator

	// Workers bounds the pool; values below 1 pick the smaller of
	// runtime.NumCPU and the grid size.
	Workers int

	Log zerolog.Logger
}

// NewRunner wraps a calculator with default pool settings.
func NewRunner(calc *spectra.Calculator) *Runner {
	return &Runner{Calc: calc}
}

func (r *Runner) workers(points int) int {
	w := r.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if w > points {
		w = points
	}
	if w < 1 {
		w = 1
	}
	return w
}

// fixed records the macroscopic settings alongside any per-sweep
// parameter overrides.
func (r *Runner) fixed(extra map[string]float64) map[string]float64 {
	f := map[string]float64{
		"pump_intensity":     r.Calc.Beams.PumpIntensity,
		"probe_intensity":    r.Calc.Beams.ProbeIntensity,
		"number_density":     r.Calc.Medium.NumberDensity,
		"interaction_length": r.Calc.Medium.InteractionLength,
	}
	for k, v := range extra {
		f[k] = v
	}
	return f
}

// Run executes a 1D sweep over one axis. Entries in fixedParams are
// resolved like axis names, applied to the base solve parameters and
// recorded in the result.
func (r *Runner) Run(ctx context.Context, axis Axis, fixedParams map[string]float64) (*Result, error) {
	if r.Calc == nil {
		return nil, ErrNoCalculator
	}
	if err := axis.Validate(); err != nil {
		return nil, err
	}

	base, err := r.baseParams(fixedParams)
	if err != nil {
		return nil, err
	}

	canonical, _ := Canonical(axis.Name)
	primary := Axis{Name: canonical, Values: axis.Values}

	chi3 := make([]complex128, len(axis.Values))
	intensity := make([]float64, len(axis.Values))
	if err := r.grid(ctx, base, primary, nil, chi3, intensity); err != nil {
		return nil, err
	}
	return NewResult(axis.Name, axis.Values, chi3, intensity, r.fixed(fixedParams))
}

// Run2D executes a 2D sweep with the primary axis outermost in the
// flat, row-major result.
func (r *Runner) Run2D(ctx context.Context, primary, secondary Axis) (*Result, error) {
	if r.Calc == nil {
		return nil, ErrNoCalculator
	}
	if err := primary.Validate(); err != nil {
		return nil, err
	}
	if err := secondary.Validate(); err != nil {
		return nil, err
	}

	c1, _ := Canonical(primary.Name)
	c2, _ := Canonical(secondary.Name)
	if c1 == c2 {
		return nil, ErrDuplicateAxes
	}

	base, err := r.baseParams(nil)
	if err != nil {
		return nil, err
	}

	p := Axis{Name: c1, Values: primary.Values}
	s := Axis{Name: c2, Values: secondary.Values}

	n := len(primary.Values) * len(secondary.Values)
	chi3 := make([]complex128, n)
	intensity := make([]float64, n)
	if err := r.grid(ctx, base, p, &s, chi3, intensity); err != nil {
		return nil, err
	}
	return NewResult2D(primary.Name, primary.Values,
		secondary.Name, secondary.Values, chi3, intensity, r.fixed(nil))
}

func (r *Runner) baseParams(fixedParams map[string]float64) (bloch.Params, error) {
	base, err := r.Calc.BaseParams()
	if err != nil {
		return bloch.Params{}, err
	}

	names := make([]string, 0, len(fixedParams))
	for name := range fixedParams {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		canonical, err := Canonical(name)
		if err != nil {
			return bloch.Params{}, err
		}
		apply(&base, canonical, fixedParams[name])
	}
	return base, nil
}

// grid fans the flat point index space over the worker pool. secondary
// is nil for 1D sweeps; axis names must already be canonical.
func (r *Runner) grid(ctx context.Context, base bloch.Params, primary Axis, secondary *Axis, chi3 []complex128, intensity []float64) error {
	n := len(chi3)
	jobs := make(chan int)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for w := 0; w < r.workers(n); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				p := base
				if secondary == nil {
					apply(&p, primary.Name, primary.Values[idx])
				} else {
					n2 := len(secondary.Values)
					apply(&p, primary.Name, primary.Values[idx/n2])
					apply(&p, secondary.Name, secondary.Values[idx%n2])
				}

				pt, err := r.Calc.At(p)
				if err != nil {
					errs[idx] = err
					continue
				}
				if !pt.Report.Converged {
					r.Log.Warn().
						Int("index", idx).
						Int("iterations", pt.Report.Iterations).
						Float64("residual", pt.Report.ResidualNorm).
						Msg("steady state did not converge")
				}
				chi3[idx] = pt.Chi3
				intensity[idx] = pt.Intensity
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ProbeDetuningSweep scans the probe detuning, the standard EIT
// spectrum.
func (r *Runner) ProbeDetuningSweep(ctx context.Context, lo, hi float64, points int) (*Result, error) {
	if points <= 0 {
		points = DefaultProbePoints
	}
	return r.Run(ctx, Axis{Name: ParamProbeDetuning, Values: Linspace(lo, hi, points)}, nil)
}

// PumpRabiSweep scans the pump Rabi frequency at a fixed probe
// detuning.
func (r *Runner) PumpRabiSweep(ctx context.Context, lo, hi float64, points int, probeDetuning float64) (*Result, error) {
	if points <= 0 {
		points = DefaultRabiPoints
	}
	return r.Run(ctx,
		Axis{Name: "pump_rabi_frequency", Values: Linspace(lo, hi, points)},
		map[string]float64{ParamProbeDetuning: probeDetuning})
}

// PumpDetuningSweep scans the pump (coupling) detuning at a fixed probe
// detuning.
func (r *Runner) PumpDetuningSweep(ctx context.Context, lo, hi float64, points int, probeDetuning float64) (*Result, error) {
	if points <= 0 {
		points = DefaultPumpPoints
	}
	return r.Run(ctx,
		Axis{Name: ParamPumpDetuning, Values: Linspace(lo, hi, points)},
		map[string]float64{ParamProbeDetuning: probeDetuning})
}
