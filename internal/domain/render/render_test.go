package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/gocas/internal/domain/evaluator"
	"github.com/ZanzyTHEbar/gocas/internal/domain/parser"
	"github.com/ZanzyTHEbar/gocas/internal/domain/render"
)

func renderSimplified(t *testing.T, input string) string {
	t.Helper()
	p := parser.NewParser(parser.Options{})
	expr, err := p.Parse(input)
	require.NoError(t, err)
	return render.ToTeX(evaluator.Simplify(expr))
}

func TestToTeX_SurdAndFraction(t *testing.T) {
	got := renderSimplified(t, "sqrt(3/4) + 5/4*cos(x)")
	assert.Equal(t, "\\frac{\\sqrt{3}}{2} + \\frac{5}{4} \\cdot \\cos\\left(x\\right)", got)
}

func TestToTeX_Roots(t *testing.T) {
	got := renderSimplified(t, "roots(x^2 - 5x + 6, x)")
	assert.Contains(t, got, "\\left\\{")
	assert.Contains(t, got, "2")
	assert.Contains(t, got, "3")
}

func TestToTeX_Factor(t *testing.T) {
	got := renderSimplified(t, "factor(x^2 - 5x + 6, x)")
	assert.Contains(t, got, "\\cdot")
}

func TestToTeX_Derivative(t *testing.T) {
	opts := parser.DefaultOptions()
	p := parser.NewParser(opts)
	expr, err := p.Parse("dd(x^3 + 2x, x)")
	require.NoError(t, err)
	got := render.ToTeX(expr)
	assert.Contains(t, got, "x^{2}")
}

func TestToTeX_SymbolicIntegral(t *testing.T) {
	p := parser.NewParser(parser.Options{EvaluateIntegrals: false})
	expr, err := p.Parse("integrate(sin(x), x, 0, pi)")
	require.NoError(t, err)
	got := render.ToTeX(expr)
	assert.Contains(t, got, "\\int_{0}^{\\pi}")
	assert.Contains(t, got, "\\sin\\left(x\\right)")
	assert.Contains(t, got, "dx")
}

func TestToTeX_EagerIntegralEvaluatesSinOverHalfPeriod(t *testing.T) {
	p := parser.NewParser(parser.Options{EvaluateIntegrals: true, Subintervals: 1000})
	expr, err := p.Parse("integrate(sin(x), x, 0, pi)")
	require.NoError(t, err)
	require.True(t, expr.IsNumber())
	assert.InDelta(t, 2.0, expr.Root.Num.ToDouble(), 1e-6)
}

func TestToTeX_RootsWithIrreducibleQuadraticResidual(t *testing.T) {
	got := renderSimplified(t, "roots(2*x^4 - 4*x^3 + x^2 - 2*x, x)")
	assert.Contains(t, got, "\\left\\{")
	assert.Contains(t, got, "0")
	assert.Contains(t, got, "2")
}
