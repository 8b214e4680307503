// Package sweep runs steady-state spectrum calculations over parameter
// grids.
//
// An [Axis] names one solver input and carries its sample values; a
// [Runner] evaluates a one- or two-axis grid against a
// spectra.Calculator with a bounded worker pool and collects the
// chi^(3) and intensity samples into a [Result]. Every grid point is an
// independent steady-state solve, so results are deterministic and the
// pool writes them by index. Points whose solve misses the convergence
// tolerance are logged and kept; their repaired density matrices still
// produce finite samples.
package sweep
