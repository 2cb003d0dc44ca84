package evaluator

import (
	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// leaf wraps a Number as a fresh NUMBER leaf node.
func leaf(n numeric.Number) *ast.Expression {
	return ast.NewLeaf(token.NewNumber(n, 0))
}

// foldUnaryMinus implements rule 2: a unary '-' applied to a NUMBER folds to
// its negation. Exact and REAL numbers both fold; the spec's "exact number"
// wording covers the common case, but folding REAL too is strictly more
// useful and never loses information the node didn't already have.
func foldUnaryMinus(e *ast.Expression) (*ast.Expression, bool) {
	if !(e.Root.Type == token.OPERATOR && e.Root.Ch == '-' && e.Left == nil) {
		return nil, false
	}
	if !e.Right.IsNumber() {
		return nil, false
	}
	return leaf(numeric.Negate(e.Right.Root.Num)), true
}

// foldConstantBinary implements rule 3: an operator node whose both operands
// are NUMBER leaves folds via the numeric tower, which already promotes
// exact/exact arithmetic to stay exact and anything touching REAL to REAL.
// '^' only folds when the exponent is integer-valued, per spec §4.3.
func foldConstantBinary(e *ast.Expression) (*ast.Expression, bool) {
	if e.Root.Type != token.OPERATOR || e.Left == nil || e.Right == nil {
		return nil, false
	}
	if !e.Left.IsNumber() || !e.Right.IsNumber() {
		return nil, false
	}
	l, r := e.Left.Root.Num, e.Right.Root.Num
	switch e.Root.Ch {
	case '+':
		return leaf(numeric.Add(l, r)), true
	case '-':
		return leaf(numeric.Subtract(l, r)), true
	case '*':
		return leaf(numeric.Multiply(l, r)), true
	case '/':
		return leaf(numeric.Divide(l, r)), true
	case '^':
		if !r.IsInteger() {
			return nil, false
		}
		return leaf(numeric.Pow(l, r.Int64())), true
	}
	return nil, false
}

// reduceFractionCoefficient implements rule 5: (c*rest)/d or (rest*c)/d,
// with c and d exact NUMBER leaves, becomes (c/d)*rest — but only when c
// divides evenly by d (spec §4.3 rule 5); otherwise the fraction is left
// alone so surd forms like (2*sqrt(3))/4 stay a fraction for the renderer
// rather than folding into a non-integer coefficient.
func reduceFractionCoefficient(e *ast.Expression) (*ast.Expression, bool) {
	if !e.IsOperator('/') || !e.Right.IsNumber() {
		return nil, false
	}
	num := e.Left
	if num == nil || !num.IsOperator('*') {
		return nil, false
	}
	d := e.Right.Root.Num
	if d.IsZero() {
		return nil, false
	}
	var coeff numeric.Number
	var rest *ast.Expression
	switch {
	case num.Left.IsNumber():
		coeff, rest = num.Left.Root.Num, num.Right
	case num.Right.IsNumber():
		coeff, rest = num.Right.Root.Num, num.Left
	default:
		return nil, false
	}
	if rest == nil {
		return nil, false
	}
	newCoeff := numeric.Divide(coeff, d)
	if !newCoeff.IsExact() || !newCoeff.IsInteger() {
		return nil, false
	}
	return ast.NewBinary(token.NewOperator(token.OPERATOR, '*', 0), leaf(newCoeff), rest.Clone()), true
}

// mergeNumericFactor implements rule 6: 2*(3*x) -> 6*x, trying every
// placement of the numeric leaf across the outer '*' and the inner product
// (which may be wrapped in parentheses).
func mergeNumericFactor(e *ast.Expression) (*ast.Expression, bool) {
	if !e.IsOperator('*') {
		return nil, false
	}
	if inner := e.Right.Unwrap(); e.Left.IsNumber() && inner.IsOperator('*') {
		if merged, rest, ok := mergeInto(e.Left.Root.Num, inner); ok {
			return ast.NewBinary(token.NewOperator(token.OPERATOR, '*', 0), leaf(merged), rest), true
		}
	}
	if inner := e.Left.Unwrap(); e.Right.IsNumber() && inner.IsOperator('*') {
		if merged, rest, ok := mergeInto(e.Right.Root.Num, inner); ok {
			return ast.NewBinary(token.NewOperator(token.OPERATOR, '*', 0), leaf(merged), rest), true
		}
	}
	return nil, false
}

func mergeInto(outer numeric.Number, product *ast.Expression) (numeric.Number, *ast.Expression, bool) {
	switch {
	case product.Left.IsNumber():
		return numeric.Multiply(outer, product.Left.Root.Num), product.Right.Clone(), true
	case product.Right.IsNumber():
		return numeric.Multiply(outer, product.Right.Root.Num), product.Left.Clone(), true
	}
	return numeric.Number{}, nil, false
}
