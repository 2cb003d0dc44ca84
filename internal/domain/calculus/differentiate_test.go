package calculus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/calculus"
	"github.com/ZanzyTHEbar/gocas/internal/domain/parser"
)

func parseFor(t *testing.T, input string) *ast.Expression {
	t.Helper()
	p := parser.NewParser(parser.Options{})
	expr, err := p.Parse(input)
	require.NoError(t, err)
	return expr
}

func TestDifferentiate_PowerRule(t *testing.T) {
	e := parseFor(t, "x^3")
	d := calculus.Differentiate(e, "x")
	require.True(t, d.IsOperator('*'))
	assert.Equal(t, int64(3), d.Left.Root.Num.Int64())
	require.True(t, d.Right.IsOperator('^'))
	assert.True(t, d.Right.Left.IsSymbolNamed("x"))
	assert.Equal(t, int64(2), d.Right.Right.Root.Num.Int64())
}

func TestDifferentiate_SumRule(t *testing.T) {
	e := parseFor(t, "x + 3")
	d := calculus.Differentiate(e, "x")
	require.True(t, d.IsNumber())
	assert.Equal(t, int64(1), d.Root.Num.Int64())
}

func TestDifferentiate_ProductRule(t *testing.T) {
	e := parseFor(t, "x*x")
	d := calculus.Differentiate(e, "x")
	require.True(t, d.IsOperator('*'))
	assert.Equal(t, int64(2), d.Left.Root.Num.Int64())
	assert.True(t, d.Right.IsSymbolNamed("x"))
}

func TestDifferentiate_ConstantIsZero(t *testing.T) {
	e := parseFor(t, "5")
	d := calculus.Differentiate(e, "x")
	require.True(t, d.IsNumber())
	assert.Equal(t, int64(0), d.Root.Num.Int64())
}

func TestDifferentiate_SinChainRule(t *testing.T) {
	e := parseFor(t, "sin(x^2)")
	d := calculus.Differentiate(e, "x")
	require.True(t, d.IsOperator('*'))
	assert.True(t, d.Left.IsGrouping("cos"))
}

func TestDifferentiate_UnrelatedSymbolIsZero(t *testing.T) {
	e := parseFor(t, "y")
	d := calculus.Differentiate(e, "x")
	require.True(t, d.IsNumber())
	assert.Equal(t, int64(0), d.Root.Num.Int64())
}
