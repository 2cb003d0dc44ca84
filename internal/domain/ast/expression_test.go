package ast_test

import (
	"testing"

	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
	"github.com/stretchr/testify/assert"
)

func num(v int64) *ast.Expression {
	return ast.NewLeaf(token.NewNumber(numeric.NewInt(v), 0))
}

func sym(name string) *ast.Expression {
	return ast.NewLeaf(token.NewSymbol(name, 0))
}

func TestClone_IsDeepAndIndependent(t *testing.T) {
	orig := ast.NewBinary(token.NewOperator(token.OPERATOR, '+', 0), num(1), sym("x"))
	clone := orig.Clone()

	assert.True(t, orig.Equal(clone))
	clone.Left.Root.Num = numeric.NewInt(99)
	assert.False(t, orig.Equal(clone))
	assert.True(t, orig.Left.Root.Num.Int64() == 1)
}

func TestEqual_StructuralWithNumericTolerance(t *testing.T) {
	a := num(2)
	b := ast.NewLeaf(token.NewNumber(numeric.NewReal(2.0), 0))
	assert.True(t, a.Equal(b))
}

func TestUnwrap_StripsParentheses(t *testing.T) {
	inner := sym("x")
	wrapped := ast.NewParentheses(ast.NewParentheses(inner))
	assert.True(t, wrapped.Unwrap() == inner)
}

func TestParamArgs_WalksSpine(t *testing.T) {
	body := sym("body")
	spine := ast.NewParam(num(1), ast.NewParam(num(2), body))
	args, tail := ast.ParamArgs(spine)
	assert.Len(t, args, 2)
	assert.True(t, tail == body)
}
