package app

// Config holds the CLI-level configuration passed from the input adapter
// (spec NEW-1.2), generalizing the teacher's Config{OutputFile, PackageName,
// FuncName} to the CAS's own flag set.
type Config struct {
	OutputFile       string
	Simplify         bool
	EagerDerivatives bool
	EagerIntegrals   bool
	Subintervals     int
}

// ExpressionSource is the input port: retrieve the surface-syntax
// expression string and its configuration. Generalizes the teacher's
// LatexProvider.
type ExpressionSource interface {
	GetExpression() (expr string, config Config, err error)
}

// ResultSink is the output port: write the rendered TeX result. Generalizes
// the teacher's GoCodeWriter.
type ResultSink interface {
	WriteResult(tex string) error
}

// NumericIntegrator is the port internal/domain/parser uses (via structural
// typing against parser.Integrator) to evaluate `integrate(...)` eagerly
// (spec NEW-4.10).
type NumericIntegrator interface {
	Integrate(f func(x float64) float64, lo, hi float64, subintervals int) float64
}
