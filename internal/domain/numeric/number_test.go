package numeric_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRational_NormalizesAndCollapsesToInt(t *testing.T) {
	n, err := numeric.Rational(4, 2)
	require.NoError(t, err)
	assert.Equal(t, numeric.Int, n.Kind())
	assert.Equal(t, int64(2), n.Int64())
}

func TestRational_ReducesAndSignNormalizes(t *testing.T) {
	n, err := numeric.Rational(6, -9)
	require.NoError(t, err)
	assert.Equal(t, numeric.Rational, n.Kind())
	assert.Equal(t, int64(-2), n.Numerator())
	assert.Equal(t, int64(3), n.Denominator())
}

func TestRational_ZeroDenominatorFails(t *testing.T) {
	_, err := numeric.Rational(1, 0)
	assert.ErrorIs(t, err, numeric.ErrZeroDenominator)
}

func TestAdd_PromotesOnOverflow(t *testing.T) {
	a := numeric.NewInt(math.MaxInt64)
	b := numeric.NewInt(1)
	sum := numeric.Add(a, b)
	assert.Equal(t, numeric.BigInt, sum.Kind())
	want := new(big.Int).Add(big.NewInt(math.MaxInt64), big.NewInt(1))
	assert.Equal(t, want, sum.AsBigInt())
}

func TestMultiply_RationalsStayExact(t *testing.T) {
	a, _ := numeric.Rational(1, 3)
	b, _ := numeric.Rational(3, 1)
	got := numeric.Multiply(a, b)
	assert.Equal(t, numeric.Int, got.Kind())
	assert.Equal(t, int64(1), got.Int64())
}

func TestNumericEquals_ExactCrossVariant(t *testing.T) {
	a := numeric.NewInt(2)
	b, _ := numeric.Rational(4, 2)
	assert.True(t, numeric.NumericEquals(a, b))
}

func TestNumericEquals_RealTolerance(t *testing.T) {
	a := numeric.NewReal(1.0)
	b := numeric.NewReal(1.0 + 1e-10)
	assert.True(t, numeric.NumericEquals(a, b))
	c := numeric.NewReal(1.1)
	assert.False(t, numeric.NumericEquals(a, c))
}

func TestPow_NegativeExponentInverts(t *testing.T) {
	base := numeric.NewInt(2)
	got := numeric.Pow(base, -3)
	assert.Equal(t, numeric.Rational, got.Kind())
	assert.Equal(t, int64(1), got.Numerator())
	assert.Equal(t, int64(8), got.Denominator())
}

func TestParseInteger_PromotesOnOverflow(t *testing.T) {
	n := numeric.ParseInteger("99999999999999999999999999")
	assert.Equal(t, numeric.BigInt, n.Kind())
}

func TestParseDecimal_FallsBackToBigFloatOnOverflow(t *testing.T) {
	n := numeric.ParseDecimal("1e400")
	assert.Equal(t, numeric.Real, n.Kind())
	assert.True(t, math.IsInf(n.ToDouble(), 1) || n.ToDouble() > 1e300)
}

func TestLooksDecimal(t *testing.T) {
	assert.True(t, numeric.LooksDecimal("3.14"))
	assert.True(t, numeric.LooksDecimal("1e10"))
	assert.False(t, numeric.LooksDecimal("42"))
}
