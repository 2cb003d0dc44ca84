package evaluator

import (
	"math"
	"math/big"

	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// isPiLeaf reports whether e is the NUMBER leaf produced by lexing the named
// constant "pi" (spec §4.1 materializes it directly as numeric.Pi, a REAL).
func isPiLeaf(e *ast.Expression) bool {
	return e.IsNumber() && e.Root.Num.Kind() == numeric.Real && e.Root.Num.ToDouble() == numeric.Pi.ToDouble()
}

// rationalMultipleOfPi inspects a raw argument subtree for the shapes pi,
// k*pi, pi*k, pi/d, (k*pi)/d, or a unary '-' of any of those, with k and d
// exact NUMBER leaves, returning the coefficient of pi as an exact fraction.
func rationalMultipleOfPi(e *ast.Expression) (*big.Rat, bool) {
	if e == nil {
		return nil, false
	}
	if e.Root.Type == token.OPERATOR && e.Root.Ch == '-' && e.Left == nil {
		if r, ok := rationalMultipleOfPi(e.Right); ok {
			return new(big.Rat).Neg(r), true
		}
		return nil, false
	}
	if isPiLeaf(e) {
		return big.NewRat(1, 1), true
	}
	if e.IsOperator('*') {
		if isPiLeaf(e.Left) && e.Right.IsNumber() && e.Right.Root.Num.IsExact() {
			return e.Right.Root.Num.AsBigRat(), true
		}
		if isPiLeaf(e.Right) && e.Left.IsNumber() && e.Left.Root.Num.IsExact() {
			return e.Left.Root.Num.AsBigRat(), true
		}
		return nil, false
	}
	if e.IsOperator('/') && e.Right.IsNumber() && e.Right.Root.Num.IsExact() {
		coeff, ok := rationalMultipleOfPi(e.Left)
		if !ok {
			return nil, false
		}
		d := e.Right.Root.Num.AsBigRat()
		if d.Sign() == 0 {
			return nil, false
		}
		return new(big.Rat).Quo(coeff, d), true
	}
	return nil, false
}

func numLeaf(v int64) *ast.Expression { return leaf(numeric.NewInt(v)) }

func ratLeaf(num, den int64) *ast.Expression {
	r, _ := numeric.Rational(num, den)
	return leaf(r)
}

func sqrtLeaf(n int64) *ast.Expression {
	return ast.NewGrouping("sqrt", nil, numLeaf(n))
}

func sqrtOver(n, d int64) *ast.Expression {
	return ast.NewBinary(token.NewOperator(token.OPERATOR, '/', 0), sqrtLeaf(n), numLeaf(d))
}

func negateExpr(e *ast.Expression) *ast.Expression {
	if e.IsNumber() {
		return leaf(numeric.Negate(e.Root.Num))
	}
	return ast.NewUnary(token.NewOperator(token.OPERATOR, '-', 0), e)
}

func isZeroExpr(e *ast.Expression) bool { return e.IsNumber() && e.Root.Num.IsZero() }

type trigValue struct {
	sin func() *ast.Expression
	cos func() *ast.Expression
}

// trigTable holds the closed-form sin/cos at each base step of pi/12 named in
// spec §4.8; bases not listed (1, 5, 7, 11) have no closed form in the table
// and fall through to the numeric branch of rule 7.
var trigTable = map[int64]trigValue{
	0:  {func() *ast.Expression { return numLeaf(0) }, func() *ast.Expression { return numLeaf(1) }},
	2:  {func() *ast.Expression { return ratLeaf(1, 2) }, func() *ast.Expression { return sqrtOver(3, 2) }},
	3:  {func() *ast.Expression { return sqrtOver(2, 2) }, func() *ast.Expression { return sqrtOver(2, 2) }},
	4:  {func() *ast.Expression { return sqrtOver(3, 2) }, func() *ast.Expression { return ratLeaf(1, 2) }},
	6:  {func() *ast.Expression { return numLeaf(1) }, func() *ast.Expression { return numLeaf(0) }},
	8:  {func() *ast.Expression { return sqrtOver(3, 2) }, func() *ast.Expression { return ratLeaf(-1, 2) }},
	9:  {func() *ast.Expression { return sqrtOver(2, 2) }, func() *ast.Expression { return negateExpr(sqrtOver(2, 2)) }},
	10: {func() *ast.Expression { return ratLeaf(1, 2) }, func() *ast.Expression { return negateExpr(sqrtOver(3, 2)) }},
}

// exactTrig implements rule 7's closed-form branch: argument must reduce to
// an exact rational multiple of pi whose reduced denominator divides 12, and
// whose residue has a table entry.
func exactTrig(name string, arg *ast.Expression) (*ast.Expression, bool) {
	coeff, ok := rationalMultipleOfPi(arg)
	if !ok {
		return nil, false
	}
	steps := new(big.Rat).Mul(coeff, big.NewRat(12, 1))
	if steps.Denom().Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	k := new(big.Int).Mod(steps.Num(), big.NewInt(24))
	k24 := k.Int64()
	flip := k24 >= 12
	base := k24 % 12
	tv, ok := trigTable[base]
	if !ok {
		return nil, false
	}
	switch name {
	case "sin":
		v := tv.sin()
		if flip {
			v = negateExpr(v)
		}
		return v, true
	case "cos":
		v := tv.cos()
		if flip {
			v = negateExpr(v)
		}
		return v, true
	case "tan":
		sinV, cosV := tv.sin(), tv.cos()
		if flip {
			sinV, cosV = negateExpr(sinV), negateExpr(cosV)
		}
		if isZeroExpr(cosV) {
			return leaf(numeric.Infinity), true
		}
		return ast.NewBinary(token.NewOperator(token.OPERATOR, '/', 0), sinV, cosV), true
	}
	return nil, false
}

// numericTrig implements rule 7's fallback: once the argument is a plain
// NUMBER (no exact closed form applied), emit the REAL machine trig value.
func numericTrig(name string, arg *ast.Expression) (*ast.Expression, bool) {
	if !arg.IsNumber() {
		return nil, false
	}
	x := arg.Root.Num.ToDouble()
	switch name {
	case "sin":
		return leaf(numeric.NewReal(math.Sin(x))), true
	case "cos":
		return leaf(numeric.NewReal(math.Cos(x))), true
	case "tan":
		return leaf(numeric.NewReal(math.Tan(x))), true
	}
	return nil, false
}

// applyTrig is rule 7 in full: try the exact closed form first, then the
// numeric fallback.
func applyTrig(e *ast.Expression) (*ast.Expression, bool) {
	var name string
	switch {
	case e.IsGrouping("sin"):
		name = "sin"
	case e.IsGrouping("cos"):
		name = "cos"
	case e.IsGrouping("tan"):
		name = "tan"
	default:
		return nil, false
	}
	if e.Left != nil || e.Right == nil {
		return nil, false
	}
	if out, ok := exactTrig(name, e.Right); ok {
		return out, true
	}
	return numericTrig(name, e.Right)
}
