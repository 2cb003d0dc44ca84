package parser

import (
	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// tryFoldIntegerDivision implements spec §4.2's special case: when '/' is
// applied to two integer-valued NUMBER leaves (INT or BIGINT), eagerly
// produce a RATIONAL NUMBER leaf instead of a '/' operator node.
func tryFoldIntegerDivision(left, right *ast.Expression) (*ast.Expression, bool) {
	if !left.IsNumber() || !right.IsNumber() {
		return nil, false
	}
	ln, rn := left.Root.Num, right.Root.Num
	if !isIntegerLeaf(ln) || !isIntegerLeaf(rn) {
		return nil, false
	}
	if rn.IsZero() {
		return nil, false
	}
	res := numeric.Divide(ln, rn)
	return ast.NewLeaf(token.NewNumber(res, left.Root.Pos)), true
}

// isIntegerLeaf reports whether n is an INT or BIGINT. The quotient is built
// with numeric.Divide, which keeps BIGINT operands exact (a BIGRATIONAL, or a
// smaller variant when the reduced value fits).
func isIntegerLeaf(n numeric.Number) bool {
	return n.Kind() == numeric.Int || n.Kind() == numeric.BigInt
}
