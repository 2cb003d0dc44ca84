package evaluator

import (
	"math/big"

	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// trialFactorLimit bounds the trial-division search used by squarefree
// factorization. Radicands of typical hand-entered expressions are tiny;
// anything larger than this is left unreduced rather than spending unbounded
// time chasing prime factors.
const trialFactorLimit = 1 << 20

// squarefreeFactor splits n = outside^2 * inside, with inside squarefree
// (inside == 1 when n is a perfect square). n must be non-negative. Trial
// division stops at trialFactorLimit; any remaining cofactor beyond that is
// folded into inside unreduced.
func squarefreeFactor(n *big.Int) (outside, inside *big.Int) {
	if n.Sign() == 0 {
		return big.NewInt(0), big.NewInt(1)
	}
	outside = big.NewInt(1)
	remaining := new(big.Int).Set(n)
	d := big.NewInt(2)
	limit := big.NewInt(trialFactorLimit)
	for d.Cmp(limit) < 0 {
		dSq := new(big.Int).Mul(d, d)
		if dSq.Cmp(remaining) > 0 {
			break
		}
		count := 0
		for {
			q, r := new(big.Int).QuoRem(remaining, d, new(big.Int))
			if r.Sign() != 0 {
				break
			}
			remaining = q
			count++
		}
		if count > 0 {
			pairs := count / 2
			if pairs > 0 {
				outside.Mul(outside, new(big.Int).Exp(d, big.NewInt(int64(pairs)), nil))
			}
			if count%2 == 1 {
				// one factor of d survives in the squarefree part below.
				remaining.Mul(remaining, d)
			}
		}
		d.Add(d, big.NewInt(1))
	}
	return outside, remaining
}

// reduceSqrtRational builds the simplified form of sqrt(num/den), num >= 0,
// den > 0, per spec §4.3's surd-reduction rule for rational radicands.
func reduceSqrtRational(num, den *big.Int) *ast.Expression {
	radicand := new(big.Int).Mul(num, den)
	outside, inside := squarefreeFactor(radicand)
	if inside.Cmp(big.NewInt(1)) == 0 {
		// Fully exact: outside/den.
		r := new(big.Rat).SetFrac(outside, den)
		return leaf(numeric.BigRational(r))
	}
	sqrtNode := ast.NewGrouping("sqrt", nil, leaf(numeric.NewBigInt(inside)))
	if den.Cmp(big.NewInt(1)) == 0 && outside.Cmp(big.NewInt(1)) == 0 {
		return sqrtNode
	}
	// Reduce the outer rational coefficient outside/den by its gcd, per spec
	// §4.3's "(num · sqrt(r)) / den" with num/den a reduced machine rational.
	g := new(big.Int).GCD(nil, nil, outside, den)
	if g.Cmp(big.NewInt(1)) > 0 {
		outside = new(big.Int).Div(outside, g)
		den = new(big.Int).Div(den, g)
	}
	var numerExpr *ast.Expression
	if outside.Cmp(big.NewInt(1)) == 0 {
		numerExpr = sqrtNode
	} else {
		numerExpr = ast.NewBinary(token.NewOperator(token.OPERATOR, '*', 0), leaf(numeric.NewBigInt(outside)), sqrtNode)
	}
	if den.Cmp(big.NewInt(1)) == 0 {
		return numerExpr
	}
	return ast.NewBinary(token.NewOperator(token.OPERATOR, '/', 0), numerExpr, leaf(numeric.NewBigInt(den)))
}

// reduceSqrt implements rule 1: sqrt of an exact NUMBER folds via
// reduceSqrtRational; negative radicands produce i*sqrt(|n|) (i a SYMBOL),
// per spec §4.3.
func reduceSqrt(n numeric.Number) (*ast.Expression, bool) {
	if !n.IsExact() {
		return nil, false
	}
	r := n.AsBigRat()
	negative := r.Sign() < 0
	if negative {
		r = new(big.Rat).Neg(r)
	}
	result := reduceSqrtRational(r.Num(), r.Denom())
	if !negative && result.IsGrouping("sqrt") {
		// sqrt(n) with n a squarefree integer is already reduced: no change.
		return nil, false
	}
	if negative {
		iLeaf := ast.NewLeaf(token.NewSymbol("i", 0))
		result = ast.NewBinary(token.NewOperator(token.OPERATOR, '*', 0), iLeaf, result)
	}
	return result, true
}

// detectSqrtFactor inspects a denominator for the shape sqrt(r) or c*sqrt(r)
// (either operand order), returning the coefficient (nil if absent) and the
// sqrt node itself.
func detectSqrtFactor(denom *ast.Expression) (coeff, sqrtNode *ast.Expression, ok bool) {
	if denom.IsGrouping("sqrt") {
		return nil, denom, true
	}
	if denom.IsOperator('*') {
		if denom.Left.IsGrouping("sqrt") {
			return denom.Right, denom.Left, true
		}
		if denom.Right.IsGrouping("sqrt") {
			return denom.Left, denom.Right, true
		}
	}
	return nil, nil, false
}

// rationalizeDivision implements rule 4: N/(c*sqrt(r)) -> N*sqrt(r)/(c*r)
// (c absent -> N*sqrt(r)/r).
func rationalizeDivision(e *ast.Expression) (*ast.Expression, bool) {
	if !e.IsOperator('/') {
		return nil, false
	}
	coeff, sqrtNode, ok := detectSqrtFactor(e.Right)
	if !ok {
		return nil, false
	}
	r := sqrtNode.Right
	newNumer := ast.NewBinary(token.NewOperator(token.OPERATOR, '*', 0), e.Left.Clone(), sqrtNode.Clone())
	var newDenom *ast.Expression
	if coeff == nil {
		newDenom = r.Clone()
	} else {
		newDenom = ast.NewBinary(token.NewOperator(token.OPERATOR, '*', 0), coeff.Clone(), r.Clone())
	}
	return ast.NewBinary(token.NewOperator(token.OPERATOR, '/', 0), newNumer, newDenom), true
}
