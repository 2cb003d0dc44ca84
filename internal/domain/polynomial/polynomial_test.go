package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/gocas/internal/domain/parser"
	"github.com/ZanzyTHEbar/gocas/internal/domain/polynomial"
)

func extract(t *testing.T, input, varName string) polynomial.Polynomial {
	t.Helper()
	p := parser.NewParser(parser.Options{})
	expr, err := p.Parse(input)
	require.NoError(t, err)
	poly, err := polynomial.Extract(expr, varName)
	require.NoError(t, err)
	return poly
}

func TestExtract_SimplePolynomial(t *testing.T) {
	poly := extract(t, "x^2 - 5x + 6", "x")
	assert.Equal(t, 2, poly.Degree())
	assert.Equal(t, int64(6), poly.Coeff(0).Int64())
	assert.Equal(t, int64(-5), poly.Coeff(1).Int64())
	assert.Equal(t, int64(1), poly.Coeff(2).Int64())
}

func TestExtract_RejectsNonPolynomial(t *testing.T) {
	p := parser.NewParser(parser.Options{})
	expr, err := p.Parse("sin(x)")
	require.NoError(t, err)
	_, err = polynomial.Extract(expr, "x")
	assert.ErrorIs(t, err, polynomial.ErrNotPolynomial)
}

func TestSolve_QuadraticRationalRoots(t *testing.T) {
	poly := extract(t, "x^2 - 5x + 6", "x")
	roots, err := polynomial.Solve(poly)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	var values []int64
	for _, r := range roots {
		require.True(t, r.IsNumber())
		values = append(values, r.Root.Num.Int64())
	}
	assert.ElementsMatch(t, []int64{2, 3}, values)
}

func TestSolve_Biquadratic(t *testing.T) {
	poly := extract(t, "x^4 - 5x^2 + 4", "x")
	roots, err := polynomial.Solve(poly)
	require.NoError(t, err)
	assert.Len(t, roots, 4)
}

func TestFactor_QuadraticIntoLinearFactors(t *testing.T) {
	poly := extract(t, "x^2 - 5x + 6", "x")
	factors, err := polynomial.Factor(poly, "x")
	require.NoError(t, err)
	assert.Len(t, factors, 2)
}
