package polynomial

import (
	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// Extract walks e and returns its coefficients with respect to varName, per
// spec §4.5. It fails with ErrNotPolynomial on any shape that isn't built
// purely from +, -, *, integer ^, parentheses, exact numbers, and the named
// variable.
func Extract(e *ast.Expression, varName string) (Polynomial, error) {
	if e == nil {
		return Polynomial{}, ErrNotPolynomial
	}
	switch e.Root.Type {
	case token.NUMBER:
		if !e.Root.Num.IsExact() {
			return Polynomial{}, ErrNotPolynomial
		}
		return New(e.Root.Num), nil
	case token.SYMBOL:
		if e.Root.Str == varName {
			return New(numeric.NewInt(0), numeric.NewInt(1)), nil
		}
		return Polynomial{}, ErrNotPolynomial
	case token.PARENTHESES:
		return Extract(e.Right, varName)
	case token.OPERATOR:
		return extractOperator(e, varName)
	}
	return Polynomial{}, ErrNotPolynomial
}

func extractOperator(e *ast.Expression, varName string) (Polynomial, error) {
	if e.Left == nil {
		inner, err := Extract(e.Right, varName)
		if err != nil {
			return Polynomial{}, err
		}
		if e.Root.Ch == '-' {
			return Scale(inner, numeric.NewInt(-1)), nil
		}
		return inner, nil
	}
	left, err := Extract(e.Left, varName)
	if err != nil {
		return Polynomial{}, err
	}
	switch e.Root.Ch {
	case '+', '-':
		right, err := Extract(e.Right, varName)
		if err != nil {
			return Polynomial{}, err
		}
		if e.Root.Ch == '+' {
			return Add(left, right), nil
		}
		return Sub(left, right), nil
	case '*':
		right, err := Extract(e.Right, varName)
		if err != nil {
			return Polynomial{}, err
		}
		return Mul(left, right), nil
	case '^':
		return extractPower(left, e.Right)
	}
	return Polynomial{}, ErrNotPolynomial
}

// extractPower requires the exponent to be a non-negative exact integer,
// raising the already-extracted base polynomial by repeated squaring (spec
// §4.5).
func extractPower(base Polynomial, expo *ast.Expression) (Polynomial, error) {
	if !expo.IsNumber() || !expo.Root.Num.IsExact() || !expo.Root.Num.IsInteger() {
		return Polynomial{}, ErrNotPolynomial
	}
	n := expo.Root.Num
	if n.IsNegative() {
		return Polynomial{}, ErrNotPolynomial
	}
	exp := n.Int64()
	result := New(numeric.NewInt(1))
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = Mul(result, b)
		}
		b = Mul(b, b)
		exp >>= 1
	}
	return result, nil
}
