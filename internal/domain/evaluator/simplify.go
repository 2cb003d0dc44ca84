package evaluator

import "github.com/ZanzyTHEbar/gocas/internal/domain/ast"

// maxPasses bounds the fixed-point rewrite loop the way
// cheenar-genetic_series/pkg/expr/simplify.go's Simplify bounds its own
// convergence loop (there, 20 outer passes over a depth-capped recursive
// rewrite); a typical expression converges in 2-3 passes, so this is a
// generous backstop against a pattern/fold combination that never settles.
const maxPasses = 64

// Simplify runs spec §4.3's rewrite loop to a fixed point: repeated full-tree
// passes, each applying at most one transformation per node, until a pass
// makes no change or the pass budget is exhausted.
func Simplify(e *ast.Expression) *ast.Expression {
	cur := e
	for i := 0; i < maxPasses; i++ {
		next, changed := simplifyPass(cur)
		if !changed {
			return next
		}
		cur = next
	}
	return cur
}

// simplifyPass applies the node-level rule order of spec §4.3 once, top-down:
// rules 1-8 are tried at the current node; if none fires, rule 9 recurses
// into children and rebuilds the node if either child changed.
func simplifyPass(e *ast.Expression) (*ast.Expression, bool) {
	if e == nil {
		return nil, false
	}
	if out, ok := applyNodeRules(e); ok {
		return out, true
	}
	left, lchanged := simplifyPass(e.Left)
	right, rchanged := simplifyPass(e.Right)
	if !lchanged && !rchanged {
		return e, false
	}
	return &ast.Expression{Root: e.Root, Left: left, Right: right}, true
}

// applyNodeRules tries rules 1-8, in the order spec §4.3 lists them, against
// a single node (no recursion).
func applyNodeRules(e *ast.Expression) (*ast.Expression, bool) {
	if e.IsGrouping("sqrt") && e.Left == nil && e.Right.IsNumber() && e.Right.Root.Num.IsExact() {
		if out, ok := reduceSqrt(e.Right.Root.Num); ok {
			return out, true
		}
	}
	if out, ok := foldUnaryMinus(e); ok {
		return out, true
	}
	if out, ok := foldConstantBinary(e); ok {
		return out, true
	}
	if out, ok := rationalizeDivision(e); ok {
		return out, true
	}
	if out, ok := reduceFractionCoefficient(e); ok {
		return out, true
	}
	if out, ok := mergeNumericFactor(e); ok {
		return out, true
	}
	if out, ok := applyTrig(e); ok {
		return out, true
	}
	if out, ok := applyRules(identityRules, e); ok {
		return out, true
	}
	return nil, false
}
