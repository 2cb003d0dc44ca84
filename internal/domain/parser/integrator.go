package parser

import "github.com/ZanzyTHEbar/gocas/internal/domain/evaluator"

// defaultIntegrator is the Integrator DefaultOptions wires in when the
// caller hasn't supplied one of its own (e.g. the CLI's adapter swapping in
// a differently-tuned Simpson's-rule implementation). It is a thin adapter
// over evaluator.Simpson so this package never needs to know about any
// adapter package to parse `integrate(...)` eagerly.
type defaultIntegrator struct{}

func (defaultIntegrator) Integrate(f func(x float64) float64, lo, hi float64, subintervals int) float64 {
	return evaluator.Simpson(f, lo, hi, subintervals)
}
