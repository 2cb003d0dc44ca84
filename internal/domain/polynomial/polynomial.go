// Package polynomial implements the single-variable dense polynomial
// pipeline of spec §4.5-§4.7: extraction from an expression tree, rational-
// root-theorem solving with closed forms for low degree, and iterative
// linear-factor extraction. Grounded on the teacher's (ZanzyTHEbar/latex2go)
// tree-recursive style, generalized from LaTeX emission to numeric-tower
// coefficient algebra.
package polynomial

import (
	"errors"

	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
)

// ErrNotPolynomial is returned by Extract when the tree is not a polynomial
// in the requested variable (spec §4.5).
var ErrNotPolynomial = errors.New("polynomial: expression is not a polynomial in the given variable")

// ErrSolverDomain is returned by Solve/Factor when handed a polynomial with
// degree < 1.
var ErrSolverDomain = errors.New("polynomial: degree must be >= 1")

// Polynomial is a dense coefficient vector over the exact numeric tower;
// coeffs[i] is the coefficient of x^i. The zero polynomial's canonical form
// is a single coefficient [0] (degree -1).
type Polynomial struct {
	coeffs []numeric.Number
}

// New builds a Polynomial from ascending-degree coefficients, trimming
// trailing zeros.
func New(coeffs ...numeric.Number) Polynomial {
	cp := make([]numeric.Number, len(coeffs))
	copy(cp, coeffs)
	return trim(Polynomial{coeffs: cp})
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{coeffs: []numeric.Number{numeric.NewInt(0)}} }

func trim(p Polynomial) Polynomial {
	c := p.coeffs
	for len(c) > 1 && c[len(c)-1].IsZero() {
		c = c[:len(c)-1]
	}
	if len(c) == 0 {
		c = []numeric.Number{numeric.NewInt(0)}
	}
	return Polynomial{coeffs: c}
}

// Degree returns -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	if len(p.coeffs) == 1 && p.coeffs[0].IsZero() {
		return -1
	}
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of x^i, or 0 outside the polynomial's range.
func (p Polynomial) Coeff(i int) numeric.Number {
	if i < 0 || i >= len(p.coeffs) {
		return numeric.NewInt(0)
	}
	return p.coeffs[i]
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return p.Degree() == -1 }

// Add returns a + b.
func Add(a, b Polynomial) Polynomial {
	n := max(len(a.coeffs), len(b.coeffs))
	out := make([]numeric.Number, n)
	for i := 0; i < n; i++ {
		out[i] = numeric.Add(a.Coeff(i), b.Coeff(i))
	}
	return trim(Polynomial{coeffs: out})
}

// Sub returns a - b.
func Sub(a, b Polynomial) Polynomial {
	n := max(len(a.coeffs), len(b.coeffs))
	out := make([]numeric.Number, n)
	for i := 0; i < n; i++ {
		out[i] = numeric.Subtract(a.Coeff(i), b.Coeff(i))
	}
	return trim(Polynomial{coeffs: out})
}

// Mul returns a * b.
func Mul(a, b Polynomial) Polynomial {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	out := make([]numeric.Number, len(a.coeffs)+len(b.coeffs)-1)
	for i := range out {
		out[i] = numeric.NewInt(0)
	}
	for i, ac := range a.coeffs {
		for j, bc := range b.coeffs {
			out[i+j] = numeric.Add(out[i+j], numeric.Multiply(ac, bc))
		}
	}
	return trim(Polynomial{coeffs: out})
}

// Scale returns a polynomial with every coefficient multiplied by k.
func Scale(a Polynomial, k numeric.Number) Polynomial {
	out := make([]numeric.Number, len(a.coeffs))
	for i, c := range a.coeffs {
		out[i] = numeric.Multiply(c, k)
	}
	return trim(Polynomial{coeffs: out})
}
