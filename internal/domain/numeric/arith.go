package numeric

import (
	"math"
	"math/big"
)

// rank orders kinds by "exactness width" so binary ops can decide which side
// needs promoting: Int < BigInt < Rational < BigRational < Real.
func rank(k Kind) int {
	switch k {
	case Int:
		return 0
	case BigInt:
		return 1
	case Rational:
		return 2
	case BigRational:
		return 3
	case Real:
		return 4
	}
	return 5
}

// promote returns the common kind two operands must be lifted to.
func promote(a, b Kind) Kind {
	if rank(a) > rank(b) {
		return a
	}
	return b
}

// Add returns a + b, normalized.
func Add(a, b Number) Number { return binaryOp(a, b, addInt, addBig, addRat, addBigRat, addReal) }

// Subtract returns a - b, normalized.
func Subtract(a, b Number) Number {
	return binaryOp(a, b, subInt, subBig, subRat, subBigRat, subReal)
}

// Multiply returns a * b, normalized.
func Multiply(a, b Number) Number {
	return binaryOp(a, b, mulInt, mulBig, mulRat, mulBigRat, mulReal)
}

// Divide returns a / b, normalized. Division by exact zero returns a REAL
// NaN (a REAL zero divisor gives the float64 quotient: +/-Inf or NaN),
// matching the spec's "core makes no attempt to detect this"
// policy for pathological floating results; the explicit zero-denominator
// error is reserved for the Rational constructor itself.
func Divide(a, b Number) Number {
	return binaryOp(a, b, divInt, divBig, divRat, divBigRat, divReal)
}

type (
	intOp    func(a, b int64) (Number, bool) // bool: false means overflow, fall back to big
	bigOp    func(a, b *big.Int) Number
	ratOp    func(an, ad, bn, bd int64) (Number, bool)
	bigRatOp func(a, b *big.Rat) Number
	realOp   func(a, b float64) Number
)

func binaryOp(a, b Number, fi intOp, fb bigOp, fr ratOp, fbr bigRatOp, ffl realOp) Number {
	k := promote(a.kind, b.kind)
	switch k {
	case Int:
		if res, ok := fi(a.i, b.i); ok {
			return res
		}
		return fb(a.AsBigInt(), b.AsBigInt())
	case BigInt:
		return fb(a.AsBigInt(), b.AsBigInt())
	case Rational:
		if res, ok := fr(a.Numerator(), a.Denominator(), b.Numerator(), b.Denominator()); ok {
			return res
		}
		return fbr(a.AsBigRat(), b.AsBigRat())
	case BigRational:
		return fbr(a.AsBigRat(), b.AsBigRat())
	default: // Real
		return ffl(a.ToDouble(), b.ToDouble())
	}
}

func addInt(a, b int64) (Number, bool) {
	s := a + b
	if (s > a) == (b > 0) {
		return NewInt(s), true
	}
	return Number{}, false
}

func subInt(a, b int64) (Number, bool) {
	d := a - b
	if (d < a) == (b > 0) {
		return NewInt(d), true
	}
	return Number{}, false
}

func mulInt(a, b int64) (Number, bool) {
	if a == 0 || b == 0 {
		return NewInt(0), true
	}
	p := a * b
	if p/b == a {
		return NewInt(p), true
	}
	return Number{}, false
}

func divInt(a, b int64) (Number, bool) {
	if b == 0 {
		return NewReal(math.NaN()), true
	}
	res, err := Rational(a, b)
	if err != nil {
		return Number{}, false
	}
	return res, true
}

func addBig(a, b *big.Int) Number { return NewBigInt(new(big.Int).Add(a, b)) }
func subBig(a, b *big.Int) Number { return NewBigInt(new(big.Int).Sub(a, b)) }
func mulBig(a, b *big.Int) Number { return NewBigInt(new(big.Int).Mul(a, b)) }
func divBig(a, b *big.Int) Number {
	if b.Sign() == 0 {
		return NewReal(math.NaN())
	}
	return BigRational(new(big.Rat).SetFrac(a, b))
}

func addRat(an, ad, bn, bd int64) (Number, bool) {
	num, ok1 := mulInt(an, bd)
	num2, ok2 := mulInt(bn, ad)
	if !ok1 || !ok2 {
		return Number{}, false
	}
	n, ok3 := addInt(num.i, num2.i)
	if !ok3 {
		return Number{}, false
	}
	den, ok4 := mulInt(ad, bd)
	if !ok4 {
		return Number{}, false
	}
	res, err := Rational(n.i, den.i)
	if err != nil {
		return Number{}, false
	}
	return res, true
}

func subRat(an, ad, bn, bd int64) (Number, bool) { return addRat(an, ad, -bn, bd) }

func mulRat(an, ad, bn, bd int64) (Number, bool) {
	n, ok1 := mulInt(an, bn)
	d, ok2 := mulInt(ad, bd)
	if !ok1 || !ok2 {
		return Number{}, false
	}
	res, err := Rational(n.i, d.i)
	if err != nil {
		return Number{}, false
	}
	return res, true
}

func divRat(an, ad, bn, bd int64) (Number, bool) {
	if bn == 0 {
		return NewReal(math.NaN()), true
	}
	return mulRat(an, ad, bd, bn)
}

func addBigRat(a, b *big.Rat) Number { return BigRational(new(big.Rat).Add(a, b)) }
func subBigRat(a, b *big.Rat) Number { return BigRational(new(big.Rat).Sub(a, b)) }
func mulBigRat(a, b *big.Rat) Number { return BigRational(new(big.Rat).Mul(a, b)) }
func divBigRat(a, b *big.Rat) Number {
	if b.Sign() == 0 {
		return NewReal(math.NaN())
	}
	return BigRational(new(big.Rat).Quo(a, b))
}

func addReal(a, b float64) Number { return NewReal(a + b) }
func subReal(a, b float64) Number { return NewReal(a - b) }
func mulReal(a, b float64) Number { return NewReal(a * b) }
func divReal(a, b float64) Number { return NewReal(a / b) }

// Negate returns -n.
func Negate(n Number) Number {
	switch n.kind {
	case Int:
		if n.i == math.MinInt64 {
			return NewBigInt(new(big.Int).Neg(big.NewInt(n.i)))
		}
		return NewInt(-n.i)
	case BigInt:
		return NewBigInt(new(big.Int).Neg(n.big_))
	case Rational:
		res, _ := Rational(-n.num, n.den)
		return res
	case BigRational:
		return BigRational(new(big.Rat).Neg(n.bigRat))
	default:
		return NewReal(-n.f)
	}
}

// Pow raises n to an integer power exp. Negative exponents invert after
// computing the positive power, per spec §4.3.
func Pow(n Number, exp int64) Number {
	if exp < 0 {
		return Divide(NewInt(1), Pow(n, -exp))
	}
	if exp == 0 {
		if n.kind == Real {
			return NewReal(1)
		}
		return NewInt(1)
	}
	if n.kind == Real {
		return NewReal(math.Pow(n.ToDouble(), float64(exp)))
	}
	result := NewInt(1)
	base := n
	e := exp
	for e > 0 {
		if e&1 == 1 {
			result = Multiply(result, base)
		}
		base = Multiply(base, base)
		e >>= 1
	}
	return result
}

// numericEqualsEpsilon is the tolerance used when at least one operand is
// inexact, per spec §3.
const numericEqualsEpsilon = 1e-9

// NumericEquals reports whether a and b represent the same mathematical
// value, exactly across exact variants and within epsilon tolerance whenever
// either side is REAL.
func NumericEquals(a, b Number) bool {
	if a.kind != Real && b.kind != Real {
		ar, br := a.AsBigRat(), b.AsBigRat()
		return ar.Cmp(br) == 0
	}
	return math.Abs(a.ToDouble()-b.ToDouble()) <= numericEqualsEpsilon
}

// Compare returns -1, 0, or 1 for a<b, a==b, a>b, exactly where possible.
func Compare(a, b Number) int {
	if a.kind != Real && b.kind != Real {
		return a.AsBigRat().Cmp(b.AsBigRat())
	}
	av, bv := a.ToDouble(), b.ToDouble()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}
