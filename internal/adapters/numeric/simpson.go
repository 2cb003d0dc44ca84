// Package numeric adapts internal/domain/evaluator's composite Simpson's
// rule to the internal/app.NumericIntegrator port, the way the teacher's
// internal/adapters/output adapts os.Stdout/os.WriteFile to
// app.GoCodeWriter: a thin struct whose single method forwards to the
// domain primitive.
package numeric

import "github.com/ZanzyTHEbar/gocas/internal/domain/evaluator"

// Simpson implements app.NumericIntegrator via evaluator.Simpson.
type Simpson struct{}

// NewSimpson builds a Simpson adapter.
func NewSimpson() Simpson { return Simpson{} }

// Integrate evaluates the composite Simpson's rule approximation of f over
// [lo, hi] with subintervals (rounded up to even), spec §4.2's eager
// `integrate(...)` evaluation strategy.
func (Simpson) Integrate(f func(x float64) float64, lo, hi float64, subintervals int) float64 {
	return evaluator.Simpson(f, lo, hi, subintervals)
}
