// Package calculus implements symbolic differentiation (spec §4.4): a
// structural recursion over ast.Expression producing a new derivative tree,
// followed by a cleanup pass and a full simplify. Grounded on the teacher's
// (ZanzyTHEbar/latex2go) recursive tree-walking style in
// internal/domain/generator, generalized from LaTeX emission to a
// derivative-producing rewrite.
package calculus

import (
	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/evaluator"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

func num(v int64) *ast.Expression  { return ast.NewLeaf(token.NewNumber(numeric.NewInt(v), 0)) }
func op(ch byte, l, r *ast.Expression) *ast.Expression {
	return ast.NewBinary(token.NewOperator(token.OPERATOR, ch, 0), l, r)
}
func grp(name string, arg *ast.Expression) *ast.Expression { return ast.NewGrouping(name, nil, arg) }

// Differentiate computes d/d(varName) of expr, per spec §4.4's rule table,
// then runs the cleanup pass and a full simplify.
func Differentiate(expr *ast.Expression, varName string) *ast.Expression {
	d := derive(expr, varName)
	d = cleanup(d)
	return evaluator.Simplify(d)
}

// derive is the raw structural-recursion step, before cleanup/simplify.
func derive(e *ast.Expression, x string) *ast.Expression {
	if e == nil {
		return num(0)
	}
	switch e.Root.Type {
	case token.NUMBER:
		return num(0)
	case token.SYMBOL:
		if e.Root.Str == x {
			return num(1)
		}
		return num(0)
	case token.PARENTHESES:
		return ast.NewParentheses(derive(e.Right, x))
	case token.OPERATOR:
		return deriveOperator(e, x)
	case token.GROUPING:
		return deriveGrouping(e, x)
	}
	return num(0)
}

func deriveOperator(e *ast.Expression, x string) *ast.Expression {
	ch := e.Root.Ch
	if e.Left == nil {
		// Unary sign: dispatches to the right operand (spec §4.4).
		d := derive(e.Right, x)
		if ch == '-' {
			return ast.NewUnary(token.NewOperator(token.OPERATOR, '-', 0), d)
		}
		return d
	}
	u, v := e.Left, e.Right
	switch ch {
	case '+':
		return op('+', derive(u, x), derive(v, x))
	case '-':
		return op('-', derive(u, x), derive(v, x))
	case '*':
		// product rule: u'v + uv'
		return op('+', op('*', derive(u, x), v.Clone()), op('*', u.Clone(), derive(v, x)))
	case '/':
		// quotient rule: (u'v - uv') / v^2
		numerTerm := op('-', op('*', derive(u, x), v.Clone()), op('*', u.Clone(), derive(v, x)))
		denom := op('^', v.Clone(), num(2))
		return op('/', numerTerm, denom)
	case '^':
		return derivePower(u, v, x)
	}
	return num(0)
}

// derivePower implements spec §4.4's three `^` cases: constant exponent
// (power rule), constant base (exponential rule), and the fully general
// logarithmic-differentiation form.
func derivePower(base, expo *ast.Expression, x string) *ast.Expression {
	switch {
	case expo.IsNumber():
		n := expo.Root.Num
		nMinus1 := leafNumber(numeric.Subtract(n, numeric.NewInt(1)))
		powered := op('^', base.Clone(), nMinus1)
		return op('*', op('*', leafNumber(n), powered), derive(base, x))
	case base.IsNumber():
		powered := op('^', base.Clone(), expo.Clone())
		lnBase := grp("ln", base.Clone())
		return op('*', powered, op('*', lnBase, derive(expo, x)))
	default:
		powered := op('^', base.Clone(), expo.Clone())
		lnBase := grp("ln", base.Clone())
		term1 := op('*', derive(expo, x), lnBase)
		term2 := op('*', expo.Clone(), op('/', derive(base, x), base.Clone()))
		return op('*', powered, op('+', term1, term2))
	}
}

func leafNumber(n numeric.Number) *ast.Expression { return ast.NewLeaf(token.NewNumber(n, 0)) }

// deriveGrouping implements spec §4.4's function-derivative table for
// sin/cos/tan/sqrt/ln; any other grouping (including nested dd/integrate/
// roots/factor) is "not covered" and differentiates to 0.
func deriveGrouping(e *ast.Expression, x string) *ast.Expression {
	if e.Left != nil || e.Right == nil {
		return num(0)
	}
	inner := e.Right
	innerDeriv := derive(inner, x)
	switch e.Root.Str {
	case "sin":
		return op('*', grp("cos", inner.Clone()), innerDeriv)
	case "cos":
		return op('*', ast.NewUnary(token.NewOperator(token.OPERATOR, '-', 0), grp("sin", inner.Clone())), innerDeriv)
	case "tan":
		sec2 := op('/', num(1), op('^', grp("cos", inner.Clone()), num(2)))
		return op('*', sec2, innerDeriv)
	case "sqrt":
		denom := op('*', num(2), grp("sqrt", inner.Clone()))
		return op('/', innerDeriv, denom)
	case "ln":
		return op('/', innerDeriv, inner.Clone())
	}
	return num(0)
}

// cleanup removes multiplications by 1 and '^1' pows produced mechanically
// by the rules above, before the fixed-point simplify (spec §4.4).
func cleanup(e *ast.Expression) *ast.Expression {
	if e == nil {
		return nil
	}
	left := cleanup(e.Left)
	right := cleanup(e.Right)
	rebuilt := &ast.Expression{Root: e.Root, Left: left, Right: right}

	if rebuilt.IsOperator('*') {
		if isOne(rebuilt.Left) {
			return rebuilt.Right
		}
		if isOne(rebuilt.Right) {
			return rebuilt.Left
		}
	}
	if rebuilt.IsOperator('^') && isOne(rebuilt.Right) {
		return rebuilt.Left
	}
	return rebuilt
}

func isOne(e *ast.Expression) bool {
	return e.IsNumber() && e.Root.Num.IsExact() && numeric.NumericEquals(e.Root.Num, numeric.NewInt(1))
}
