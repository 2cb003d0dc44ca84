package app

import (
	"fmt"

	"github.com/ZanzyTHEbar/gocas/internal/domain/evaluator"
	"github.com/ZanzyTHEbar/gocas/internal/domain/parser"
	"github.com/ZanzyTHEbar/gocas/internal/domain/render"
)

// ApplicationService orchestrates the expression pipeline: parse, optionally
// simplify, render to TeX, write. Generalizes the teacher's
// ApplicationService (which wired LatexProvider -> parser -> generator ->
// GoCodeWriter) to ExpressionSource -> parser -> evaluator/render -> ResultSink.
type ApplicationService struct {
	source     ExpressionSource // Input port
	sink       ResultSink       // Output port
	integrator NumericIntegrator
}

// NewApplicationService creates a new application service instance.
func NewApplicationService(source ExpressionSource, sink ResultSink, integrator NumericIntegrator) *ApplicationService {
	return &ApplicationService{source: source, sink: sink, integrator: integrator}
}

// Run executes the main application logic: parse the configured expression,
// optionally simplify it, render it to TeX, and write the result.
func (s *ApplicationService) Run() error {
	expr, config, err := s.source.GetExpression()
	if err != nil {
		return fmt.Errorf("failed to get expression: %w", err)
	}

	subintervals := config.Subintervals
	if subintervals <= 0 {
		subintervals = 1000
	}
	p := parser.NewParser(parser.Options{
		EvaluateDerivative: config.EagerDerivatives,
		EvaluateIntegrals:  config.EagerIntegrals,
		Integrator:         s.integrator,
		Subintervals:       subintervals,
	})

	tree, err := p.Parse(expr)
	if err != nil {
		return fmt.Errorf("failed to parse expression: %w", err)
	}

	if config.Simplify {
		tree = evaluator.Simplify(tree)
	}

	tex := render.ToTeX(tree)

	if err := s.sink.WriteResult(tex); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
