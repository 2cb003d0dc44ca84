package polynomial

import (
	"math/big"
	"sort"

	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
)

// syntheticDivide divides p by (x - r) in Horner form, returning the
// quotient and the single remainder (spec §4.6's "synthetic division").
func syntheticDivide(p Polynomial, r numeric.Number) (Polynomial, numeric.Number) {
	n := p.Degree()
	if n < 0 {
		return Zero(), numeric.NewInt(0)
	}
	if n == 0 {
		return Zero(), p.coeffs[0]
	}
	b := make([]numeric.Number, n)
	b[n-1] = p.coeffs[n]
	for i := n - 1; i >= 1; i-- {
		b[i-1] = numeric.Add(p.coeffs[i], numeric.Multiply(r, b[i]))
	}
	remainder := numeric.Add(p.coeffs[0], numeric.Multiply(r, b[0]))
	return trim(Polynomial{coeffs: b}), remainder
}

// integerize scales p by the lcm of its coefficients' denominators, so
// rational-root divisor enumeration can work over integers. Every
// Polynomial coefficient is already exact by construction (Extract fails
// otherwise), but the check is kept as the spec's stated precondition.
func integerize(p Polynomial) (Polynomial, bool) {
	lcmDen := big.NewInt(1)
	for _, c := range p.coeffs {
		if !c.IsExact() {
			return Polynomial{}, false
		}
		lcmDen = lcm(lcmDen, c.AsBigRat().Denom())
	}
	scaled := make([]numeric.Number, len(p.coeffs))
	lcmRat := new(big.Rat).SetInt(lcmDen)
	for i, c := range p.coeffs {
		r := new(big.Rat).Mul(c.AsBigRat(), lcmRat)
		scaled[i] = numeric.BigRational(r)
	}
	return trim(Polynomial{coeffs: scaled}), true
}

func lcm(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	return new(big.Int).Div(new(big.Int).Mul(a, b), g)
}

// divisorsInLongRange lists the positive divisors of |n|, failing when n
// doesn't fit an int64 (spec §4.6: "divisor enumeration caps at the long
// range").
func divisorsInLongRange(n *big.Int) ([]int64, bool) {
	abs := new(big.Int).Abs(n)
	if !abs.IsInt64() {
		return nil, false
	}
	v := abs.Int64()
	if v == 0 {
		return []int64{1}, true
	}
	var divs []int64
	for d := int64(1); d*d <= v; d++ {
		if v%d == 0 {
			divs = append(divs, d)
			if d != v/d {
				divs = append(divs, v/d)
			}
		}
	}
	sort.Slice(divs, func(i, j int) bool { return divs[i] < divs[j] })
	return divs, true
}

// findRationalRoot searches for an exact root of p via the rational root
// theorem (spec §4.6): integerize, enumerate ±p/q over divisors of the
// constant and leading terms, and test each via synthetic division.
func findRationalRoot(p Polynomial) (numeric.Number, bool) {
	n := p.Degree()
	if n < 1 {
		return numeric.Number{}, false
	}
	if p.Coeff(0).IsZero() {
		return numeric.NewInt(0), true
	}
	scaled, ok := integerize(p)
	if !ok {
		return numeric.Number{}, false
	}
	sn := scaled.Degree()
	constTerm := scaled.Coeff(0).AsBigInt()
	leadTerm := scaled.Coeff(sn).AsBigInt()
	pDivisors, ok1 := divisorsInLongRange(constTerm)
	qDivisors, ok2 := divisorsInLongRange(leadTerm)
	if !ok1 || !ok2 {
		return numeric.Number{}, false
	}
	for _, q := range qDivisors {
		for _, pp := range pDivisors {
			for _, sign := range [2]int64{1, -1} {
				cand, err := numeric.Rational(sign*pp, q)
				if err != nil {
					continue
				}
				_, rem := syntheticDivide(p, cand)
				if rem.IsZero() {
					return cand, true
				}
			}
		}
	}
	return numeric.Number{}, false
}
