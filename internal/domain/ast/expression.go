// Package ast implements the uniform binary-tree Expression shape of spec
// §3: every syntactic construct (binary operator, unary sign, parenthesis,
// named grouping, parameter spine, leaf) is a single Expression{Root, Left,
// Right} node. A sum-type ("Num | Sym | Binary | ...") would make several
// illegal states unrepresentable, but the spec's own testable invariants and
// rewrite algorithms are phrased directly in terms of root/left/right, so
// the struct shape is kept; see DESIGN.md's Open Question decision.
package ast

import (
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// Expression is the single node type used for every tree shape described in
// spec §3.
type Expression struct {
	Root  token.Token
	Left  *Expression
	Right *Expression
}

// NewLeaf builds a childless leaf node (NUMBER or SYMBOL).
func NewLeaf(tok token.Token) *Expression {
	return &Expression{Root: tok}
}

// NewUnary builds a unary prefix node (sign): Left is nil, Right is operand.
func NewUnary(op token.Token, operand *Expression) *Expression {
	return &Expression{Root: op, Right: operand}
}

// NewBinary builds a binary operator node.
func NewBinary(op token.Token, left, right *Expression) *Expression {
	return &Expression{Root: op, Left: left, Right: right}
}

// NewParentheses wraps inner in a PARENTHESES('p') node.
func NewParentheses(inner *Expression) *Expression {
	return &Expression{Root: token.NewOperator(token.PARENTHESES, 'p', inner.Root.Pos), Right: inner}
}

// NewGrouping builds a named grouping node (sqrt, sin, int, dd, roots,
// factor, rootsResult, factorResult, param, ...). For multi-argument forms
// Left holds the linked "param" spine and Right holds the body.
func NewGrouping(name string, left, right *Expression) *Expression {
	return &Expression{Root: token.NewGrouping(name, 0), Left: left, Right: right}
}

// NewParam builds one link of a parameter spine: Left is this argument,
// Right points to the next link (or the final body).
func NewParam(arg *Expression, next *Expression) *Expression {
	return &Expression{Root: token.NewGrouping("param", 0), Left: arg, Right: next}
}

// IsLeaf reports whether the node has no children at all.
func (e *Expression) IsLeaf() bool {
	return e != nil && e.Left == nil && e.Right == nil
}

// IsNumber reports whether the node is a NUMBER leaf.
func (e *Expression) IsNumber() bool {
	return e != nil && e.Root.Type == token.NUMBER
}

// IsSymbolNamed reports whether the node is a SYMBOL leaf with the given name.
func (e *Expression) IsSymbolNamed(name string) bool {
	return e != nil && e.Root.Type == token.SYMBOL && e.Root.Str == name
}

// IsOperator reports whether the node is an OPERATOR node with the given
// character.
func (e *Expression) IsOperator(ch byte) bool {
	return e != nil && e.Root.Type == token.OPERATOR && e.Root.Ch == ch
}

// IsGrouping reports whether the node is a GROUPING node with the given
// name.
func (e *Expression) IsGrouping(name string) bool {
	return e != nil && e.Root.Type == token.GROUPING && e.Root.Str == name
}

// IsParentheses reports whether the node is a PARENTHESES('p') wrapper.
func (e *Expression) IsParentheses() bool {
	return e != nil && e.Root.Type == token.PARENTHESES && e.Root.Ch == 'p'
}

// Unwrap strips any number of surrounding PARENTHESES wrappers.
func (e *Expression) Unwrap() *Expression {
	for e.IsParentheses() {
		e = e.Right
	}
	return e
}

// Clone returns a deep copy of the subtree rooted at e. Every rewrite site
// that reuses a subtree under a new parent must clone it first (spec §3
// ownership rule, spec §9 "Cloning discipline"); centralizing that here
// makes the discipline a single reviewable primitive rather than a rule
// enforced ad hoc at each call site.
func (e *Expression) Clone() *Expression {
	if e == nil {
		return nil
	}
	return &Expression{
		Root:  e.Root,
		Left:  e.Left.Clone(),
		Right: e.Right.Clone(),
	}
}

// Equal reports structural equality: same token shape recursively, with
// NumericEquals comparing NUMBER payloads (spec §4.3 pattern matching).
func (e *Expression) Equal(o *Expression) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Root.Type != o.Root.Type {
		return false
	}
	switch e.Root.Type {
	case token.NUMBER:
		if !numeric.NumericEquals(e.Root.Num, o.Root.Num) {
			return false
		}
	case token.OPERATOR, token.PARENTHESES:
		if e.Root.Ch != o.Root.Ch {
			return false
		}
	case token.SYMBOL, token.GROUPING, token.PREFIX:
		if e.Root.Str != o.Root.Str {
			return false
		}
	}
	return e.Left.Equal(o.Left) && e.Right.Equal(o.Right)
}

// ParamArgs walks a "param" spine (built by NewParam) and returns the list
// of argument subtrees plus the trailing non-param tail (the body).
func ParamArgs(spine *Expression) (args []*Expression, tail *Expression) {
	cur := spine
	for cur != nil && cur.IsGrouping("param") {
		args = append(args, cur.Left)
		cur = cur.Right
	}
	return args, cur
}
