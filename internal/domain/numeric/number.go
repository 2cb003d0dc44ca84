// Package numeric implements the exact/inexact numeric tower: machine
// integers and rationals that promote to arbitrary precision on overflow,
// plus an inexact float64 carrier for irrational and transcendental values.
//
// The tower is a tagged union rather than an interface hierarchy, following
// the promotion style of robpike.io/ivy's value package (BigInt/BigRat
// wrapping math/big): every operation switches on Kind and normalizes its
// result before returning.
package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// Kind tags which variant of the tower a Number currently holds.
type Kind int

const (
	Int Kind = iota
	BigInt
	Rational
	BigRational
	Real
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "INT"
	case BigInt:
		return "BIGINT"
	case Rational:
		return "RATIONAL"
	case BigRational:
		return "BIGRATIONAL"
	case Real:
		return "REAL"
	default:
		return "UNKNOWN"
	}
}

// ErrZeroDenominator is returned by the Rational constructor when asked to
// build a value with a zero denominator.
var ErrZeroDenominator = fmt.Errorf("numeric: zero denominator")

// Number is the tagged-union value type of the tower. Exactly one of the
// fields is meaningful for a given Kind:
//
//	Int:         i
//	BigInt:      big_
//	Rational:    num, den (den > 0, gcd(|num|, den) == 1)
//	BigRational: bigRat (already normalized by math/big)
//	Real:        f (bigDec used only when f overflowed float64 range at parse time)
type Number struct {
	kind   Kind
	i      int64
	num    int64
	den    int64
	big_   *big.Int
	bigRat *big.Rat
	f      float64
	bigDec *big.Float // only set for REAL literals that overflowed float64
}

// Kind reports the variant currently held.
func (n Number) Kind() Kind { return n.kind }

// --- Constructors -----------------------------------------------------

// NewInt builds an INT number.
func NewInt(v int64) Number { return Number{kind: Int, i: v} }

// NewBigInt builds a BIGINT number, collapsing back to INT when it fits.
func NewBigInt(v *big.Int) Number {
	if v.IsInt64() {
		return NewInt(v.Int64())
	}
	return Number{kind: BigInt, big_: new(big.Int).Set(v)}
}

// NewReal builds a REAL number from a float64.
func NewReal(v float64) Number { return Number{kind: Real, f: v} }

// NewBigReal builds a REAL number carrying a big.Float for a literal that
// overflowed float64 range at parse time; f is set to the best-effort
// float64 approximation (±Inf when truly unrepresentable).
func NewBigReal(v *big.Float) Number {
	f, _ := v.Float64()
	return Number{kind: Real, f: f, bigDec: new(big.Float).Copy(v)}
}

// Rational builds a reduced RATIONAL (or INT, if den divides num exactly).
// Fails with ErrZeroDenominator if den == 0.
func Rational(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, ErrZeroDenominator
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcdInt64(abs64(num), den)
	if g != 0 {
		num /= g
		den /= g
	}
	if den == 1 {
		return NewInt(num), nil
	}
	return Number{kind: Rational, num: num, den: den}, nil
}

// BigRational builds a reduced BIGRATIONAL (or collapses to BIGINT/INT).
func BigRational(r *big.Rat) Number {
	if r.IsInt() {
		return NewBigInt(new(big.Int).Set(r.Num()))
	}
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		n, d := r.Num().Int64(), r.Denom().Int64()
		res, err := Rational(n, d)
		if err == nil {
			return res
		}
	}
	return Number{kind: BigRational, bigRat: new(big.Rat).Set(r)}
}

// Constants materialized as REAL values.
var (
	Pi       = NewReal(math.Pi)
	Tau      = NewReal(2 * math.Pi)
	E        = NewReal(math.E)
	Infinity = NewReal(math.Inf(1))
)

func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// IsExact reports whether the number is one of INT/BIGINT/RATIONAL/BIGRATIONAL.
func (n Number) IsExact() bool { return n.kind != Real }

// IsZero reports whether the number represents the value zero.
func (n Number) IsZero() bool {
	switch n.kind {
	case Int:
		return n.i == 0
	case BigInt:
		return n.big_.Sign() == 0
	case Rational:
		return n.num == 0
	case BigRational:
		return n.bigRat.Sign() == 0
	case Real:
		return n.f == 0
	}
	return false
}

// IsNegative reports whether the number is strictly less than zero.
func (n Number) IsNegative() bool {
	switch n.kind {
	case Int:
		return n.i < 0
	case BigInt:
		return n.big_.Sign() < 0
	case Rational:
		return n.num < 0
	case BigRational:
		return n.bigRat.Sign() < 0
	case Real:
		return n.f < 0
	}
	return false
}

// IsInteger reports whether the value, exact or not, is a whole number.
func (n Number) IsInteger() bool {
	switch n.kind {
	case Int, BigInt:
		return true
	case Rational:
		return n.den == 1
	case BigRational:
		return n.bigRat.IsInt()
	case Real:
		return n.f == math.Trunc(n.f) && !math.IsInf(n.f, 0)
	}
	return false
}

// Int64 returns the value as an int64, truncating/approximating as needed.
// It is only meaningful for exact integer-valued numbers; callers should
// check IsInteger first.
func (n Number) Int64() int64 {
	switch n.kind {
	case Int:
		return n.i
	case BigInt:
		return n.big_.Int64()
	case Rational:
		return n.num / n.den
	case BigRational:
		q := new(big.Int).Quo(n.bigRat.Num(), n.bigRat.Denom())
		return q.Int64()
	case Real:
		return int64(n.f)
	}
	return 0
}

// AsBigInt returns the value as a *big.Int for integer-valued numbers.
func (n Number) AsBigInt() *big.Int {
	switch n.kind {
	case Int:
		return big.NewInt(n.i)
	case BigInt:
		return new(big.Int).Set(n.big_)
	case Rational:
		return big.NewInt(n.num / n.den)
	case BigRational:
		return new(big.Int).Quo(n.bigRat.Num(), n.bigRat.Denom())
	}
	return big.NewInt(int64(n.f))
}

// AsBigRat returns the value as a *big.Rat, exactly, for exact numbers.
func (n Number) AsBigRat() *big.Rat {
	switch n.kind {
	case Int:
		return big.NewRat(n.i, 1)
	case BigInt:
		return new(big.Rat).SetInt(n.big_)
	case Rational:
		return big.NewRat(n.num, n.den)
	case BigRational:
		return new(big.Rat).Set(n.bigRat)
	}
	r := new(big.Rat)
	r.SetFloat64(n.f)
	return r
}

// ToDouble converts any Number to its float64 approximation.
func (n Number) ToDouble() float64 {
	switch n.kind {
	case Int:
		return float64(n.i)
	case BigInt:
		f := new(big.Float).SetInt(n.big_)
		v, _ := f.Float64()
		return v
	case Rational:
		return float64(n.num) / float64(n.den)
	case BigRational:
		v, _ := n.bigRat.Float64()
		return v
	case Real:
		if n.bigDec != nil {
			v, _ := n.bigDec.Float64()
			return v
		}
		return n.f
	}
	return math.NaN()
}

// Numerator/Denominator expose the RATIONAL components (INT numbers behave
// as p/1).
func (n Number) Numerator() int64 {
	if n.kind == Rational {
		return n.num
	}
	return n.Int64()
}

func (n Number) Denominator() int64 {
	if n.kind == Rational {
		return n.den
	}
	return 1
}

// String renders the number the way the lexer/renderer expect to see it in
// diagnostics; it is not the TeX rendering (see internal/domain/render).
func (n Number) String() string {
	switch n.kind {
	case Int:
		return fmt.Sprintf("%d", n.i)
	case BigInt:
		return n.big_.String()
	case Rational:
		return fmt.Sprintf("%d/%d", n.num, n.den)
	case BigRational:
		return n.bigRat.RatString()
	case Real:
		return fmt.Sprintf("%g", n.ToDouble())
	}
	return "?"
}
