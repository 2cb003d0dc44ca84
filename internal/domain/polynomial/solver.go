package polynomial

import (
	"math"
	"sort"

	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/evaluator"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

func leafNum(n numeric.Number) *ast.Expression { return ast.NewLeaf(token.NewNumber(n, 0)) }

func binOp(ch byte, l, r *ast.Expression) *ast.Expression {
	return ast.NewBinary(token.NewOperator(token.OPERATOR, ch, 0), l, r)
}

func sqrtOf(arg *ast.Expression) *ast.Expression {
	return ast.NewGrouping("sqrt", nil, arg)
}

// Solve returns the root expressions of p (degree >= 1), each already
// simplified, per spec §4.6: deflate by rational roots, then close the
// residual by degree (linear, quadratic, biquadratic) or numeric bisection.
func Solve(p Polynomial) ([]*ast.Expression, error) {
	if p.Degree() < 1 {
		return nil, ErrSolverDomain
	}
	var roots []*ast.Expression
	cur := p
	for cur.Degree() >= 1 {
		r, ok := findRationalRoot(cur)
		if !ok {
			break
		}
		roots = append(roots, evaluator.Simplify(leafNum(r)))
		cur, _ = syntheticDivide(cur, r)
	}
	residual, err := solveResidual(cur)
	if err != nil {
		return nil, err
	}
	return append(roots, residual...), nil
}

func solveResidual(p Polynomial) ([]*ast.Expression, error) {
	switch p.Degree() {
	case -1, 0:
		return nil, nil
	case 1:
		return []*ast.Expression{linearRoot(p)}, nil
	case 2:
		return quadraticRoots(p), nil
	case 4:
		if isBiquadratic(p) {
			return biquadraticRoots(p), nil
		}
		return bisectionRoots(p), nil
	default:
		return bisectionRoots(p), nil
	}
}

func linearRoot(p Polynomial) *ast.Expression {
	root := numeric.Divide(numeric.Negate(p.Coeff(0)), p.Coeff(1))
	return evaluator.Simplify(leafNum(root))
}

// quadraticRoots builds both roots of a2*x^2 + a1*x + a0 via the quadratic
// formula, symbolically, and simplifies each (spec §4.6).
func quadraticRoots(p Polynomial) []*ast.Expression {
	a2, a1, a0 := p.Coeff(2), p.Coeff(1), p.Coeff(0)
	disc := numeric.Subtract(numeric.Multiply(a1, a1), numeric.Multiply(numeric.NewInt(4), numeric.Multiply(a2, a0)))
	sqrtDisc := sqrtOf(leafNum(disc))
	negA1 := leafNum(numeric.Negate(a1))
	twoA2 := leafNum(numeric.Multiply(numeric.NewInt(2), a2))
	plus := binOp('/', binOp('+', negA1, sqrtDisc), twoA2)
	minus := binOp('/', binOp('-', negA1.Clone(), sqrtDisc.Clone()), twoA2.Clone())
	return []*ast.Expression{evaluator.Simplify(plus), evaluator.Simplify(minus)}
}

// isBiquadratic reports whether p has only even-power terms (spec §4.6).
func isBiquadratic(p Polynomial) bool {
	return p.Coeff(1).IsZero() && p.Coeff(3).IsZero()
}

// biquadraticRoots substitutes y = x^2, solves the resulting quadratic, and
// emits +-sqrt(y) for each y-root (spec §4.6).
func biquadraticRoots(p Polynomial) []*ast.Expression {
	yPoly := New(p.Coeff(0), p.Coeff(2), p.Coeff(4))
	yRoots := quadraticRoots(yPoly)
	out := make([]*ast.Expression, 0, len(yRoots)*2)
	for _, y := range yRoots {
		pos := evaluator.Simplify(sqrtOf(y.Clone()))
		neg := evaluator.Simplify(ast.NewUnary(token.NewOperator(token.OPERATOR, '-', 0), sqrtOf(y.Clone())))
		out = append(out, pos, neg)
	}
	return out
}

// Numeric bisection fallback constants (spec §4.6): 400 subintervals over
// [-10, 10], 60 bisection iterations per sign change, 1e-6 dedup tolerance.
const (
	bisectSamples = 400
	bisectLo      = -10.0
	bisectHi      = 10.0
	bisectIters   = 60
	bisectTol     = 1e-6
)

func evalPolyFloat(p Polynomial, x float64) float64 {
	result := 0.0
	for i := p.Degree(); i >= 0; i-- {
		result = result*x + p.Coeff(i).ToDouble()
	}
	return result
}

func bisectionRoots(p Polynomial) []*ast.Expression {
	f := func(x float64) float64 { return evalPolyFloat(p, x) }
	step := (bisectHi - bisectLo) / bisectSamples
	var found []float64
	prevX, prevY := bisectLo, f(bisectLo)
	if math.Abs(prevY) < bisectTol {
		found = append(found, prevX)
	}
	for i := 1; i <= bisectSamples; i++ {
		x := bisectLo + float64(i)*step
		y := f(x)
		switch {
		case math.Abs(y) < bisectTol:
			found = append(found, x)
		case (prevY < 0) != (y < 0):
			found = append(found, bisect(f, prevX, x, bisectIters))
		}
		prevX, prevY = x, y
	}
	found = dedupeSorted(found, bisectTol)
	out := make([]*ast.Expression, len(found))
	for i, r := range found {
		out[i] = leafNum(numeric.NewReal(r))
	}
	return out
}

func bisect(f func(float64) float64, a, b float64, iters int) float64 {
	fa := f(a)
	for i := 0; i < iters; i++ {
		mid := (a + b) / 2
		fm := f(mid)
		if (fa < 0) == (fm < 0) {
			a, fa = mid, fm
		} else {
			b = mid
		}
	}
	return (a + b) / 2
}

func dedupeSorted(xs []float64, tol float64) []float64 {
	sort.Float64s(xs)
	var out []float64
	for _, x := range xs {
		if len(out) == 0 || math.Abs(x-out[len(out)-1]) > tol {
			out = append(out, x)
		}
	}
	return out
}
