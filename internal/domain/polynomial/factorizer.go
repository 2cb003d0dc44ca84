package polynomial

import (
	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/evaluator"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// Factor implements spec §4.7: iteratively extract linear factors (x - r)
// via the same rational-root search as Solve; once no more rational roots
// exist, the remainder is rebuilt as a single polynomial expression in
// descending degree. A leading constant != 1 left over once every factor is
// linear is prepended as its own factor.
func Factor(p Polynomial, varName string) ([]*ast.Expression, error) {
	if p.Degree() < 1 {
		return nil, ErrSolverDomain
	}
	var linearFactors []*ast.Expression
	cur := p
	for cur.Degree() >= 1 {
		r, ok := findRationalRoot(cur)
		if !ok {
			break
		}
		linearFactors = append(linearFactors, linearFactorExpr(r, varName))
		cur, _ = syntheticDivide(cur, r)
	}
	var factors []*ast.Expression
	switch {
	case cur.Degree() == 0:
		c := cur.Coeff(0)
		if !numeric.NumericEquals(c, numeric.NewInt(1)) {
			factors = append(factors, leafNum(c))
		}
	case cur.Degree() >= 1:
		factors = append(factors, rebuildPolynomial(cur, varName))
	}
	return append(factors, linearFactors...), nil
}

func linearFactorExpr(r numeric.Number, varName string) *ast.Expression {
	x := ast.NewLeaf(token.NewSymbol(varName, 0))
	return evaluator.Simplify(binOp('-', x, leafNum(r)))
}

// rebuildPolynomial rebuilds p as a sum of terms in descending degree (spec
// §4.7's "single polynomial expression... rebuilt term by term").
func rebuildPolynomial(p Polynomial, varName string) *ast.Expression {
	var acc *ast.Expression
	for deg := p.Degree(); deg >= 0; deg-- {
		c := p.Coeff(deg)
		if c.IsZero() {
			continue
		}
		term := polyTerm(c, deg, varName)
		if acc == nil {
			acc = term
			continue
		}
		acc = binOp('+', acc, term)
	}
	if acc == nil {
		acc = leafNum(numeric.NewInt(0))
	}
	return evaluator.Simplify(acc)
}

func polyTerm(c numeric.Number, deg int, varName string) *ast.Expression {
	if deg == 0 {
		return leafNum(c)
	}
	x := ast.NewLeaf(token.NewSymbol(varName, 0))
	var powered *ast.Expression
	if deg == 1 {
		powered = x
	} else {
		powered = binOp('^', x, leafNum(numeric.NewInt(int64(deg))))
	}
	if numeric.NumericEquals(c, numeric.NewInt(1)) {
		return powered
	}
	return binOp('*', leafNum(c), powered)
}
