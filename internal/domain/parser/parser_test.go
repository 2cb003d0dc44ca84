package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/parser"
)

func parse(t *testing.T, opts parser.Options, input string) *ast.Expression {
	t.Helper()
	p := parser.NewParser(opts)
	expr, err := p.Parse(input)
	require.NoError(t, err)
	return expr
}

func TestParse_PrecedenceMultiplyOverAdd(t *testing.T) {
	e := parse(t, parser.Options{}, "1 + 2*3")
	require.True(t, e.IsOperator('+'))
	assert.True(t, e.Left.IsNumber())
	require.True(t, e.Right.IsOperator('*'))
}

func TestParse_RightAssociativePower(t *testing.T) {
	e := parse(t, parser.Options{}, "2^3^2")
	require.True(t, e.IsOperator('^'))
	assert.True(t, e.Left.IsNumber())
	require.True(t, e.Right.IsOperator('^'))
}

func TestParse_Parentheses(t *testing.T) {
	e := parse(t, parser.Options{}, "(1 + 2)*3")
	require.True(t, e.IsOperator('*'))
	assert.True(t, e.Left.IsParentheses())
}

func TestParse_UnaryMinus(t *testing.T) {
	e := parse(t, parser.Options{}, "-x + 1")
	require.True(t, e.IsOperator('+'))
	assert.Nil(t, e.Left.Left)
	assert.Equal(t, byte('-'), e.Left.Root.Ch)
}

func TestParse_SingleArgGrouping(t *testing.T) {
	e := parse(t, parser.Options{}, "sqrt(9)")
	require.True(t, e.IsGrouping("sqrt"))
	assert.True(t, e.Right.IsNumber())
}

func TestParse_SingleArgGroupingWrongArgCount(t *testing.T) {
	_, err := parser.NewParser(parser.Options{}).Parse("sqrt(1, 2)")
	require.Error(t, err)
	var perr *parser.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParse_IntTwoArgSymbolic(t *testing.T) {
	e := parse(t, parser.Options{}, "int(x^2, x)")
	require.True(t, e.IsGrouping("int"))
	args, tail := ast.ParamArgs(e.Left)
	require.Len(t, args, 1)
	assert.True(t, args[0].IsSymbolNamed("x"))
	assert.Nil(t, tail)
}

func TestParse_IntFourArgSymbolic(t *testing.T) {
	e := parse(t, parser.Options{}, "int(x, x, 0, 1)")
	require.True(t, e.IsGrouping("int"))
	args, _ := ast.ParamArgs(e.Left)
	require.Len(t, args, 3)
}

func TestParse_IntegrateEagerEvaluates(t *testing.T) {
	e := parse(t, parser.Options{EvaluateIntegrals: true, Subintervals: 1000}, "integrate(x, x, 0, 1)")
	require.True(t, e.IsNumber())
	assert.InDelta(t, 0.5, e.Root.Num.ToDouble(), 1e-6)
}

func TestParse_IntegrateSymbolicWhenDisabled(t *testing.T) {
	e := parse(t, parser.Options{EvaluateIntegrals: false}, "integrate(x, x, 0, 1)")
	require.True(t, e.IsGrouping("integrate"))
}

func TestParse_IntegrateRequiresFourArgs(t *testing.T) {
	_, err := parser.NewParser(parser.Options{}).Parse("integrate(x, x)")
	require.Error(t, err)
}

func TestParse_DDEagerDifferentiates(t *testing.T) {
	e := parse(t, parser.Options{EvaluateDerivative: true}, "dd(x^2, x)")
	require.True(t, e.IsOperator('*'))
}

func TestParse_DDSymbolicWhenDisabled(t *testing.T) {
	e := parse(t, parser.Options{EvaluateDerivative: false}, "dd(x^2, x)")
	require.True(t, e.IsGrouping("dd"))
}

func TestParse_DDRequiresSymbolVariable(t *testing.T) {
	_, err := parser.NewParser(parser.Options{}).Parse("dd(x^2, 2)")
	require.Error(t, err)
}

func TestParse_RootsSolvesQuadratic(t *testing.T) {
	e := parse(t, parser.Options{}, "roots(x^2 - 4, x)")
	require.True(t, e.IsGrouping("rootsResult"))
}

func TestParse_RootsNonPolynomialIsSolverDomainError(t *testing.T) {
	_, err := parser.NewParser(parser.Options{}).Parse("roots(sin(x), x)")
	require.Error(t, err)
	var derr *parser.SolverDomainError
	assert.ErrorAs(t, err, &derr)
}

func TestParse_FactorsQuadratic(t *testing.T) {
	e := parse(t, parser.Options{}, "factor(x^2 - 4, x)")
	require.True(t, e.IsGrouping("factorResult"))
}

func TestParse_UnmatchedParenIsError(t *testing.T) {
	_, err := parser.NewParser(parser.Options{}).Parse("(1 + 2")
	require.Error(t, err)
}

func TestParse_TrailingTokenIsError(t *testing.T) {
	_, err := parser.NewParser(parser.Options{}).Parse("1 + 2 )")
	require.Error(t, err)
}
