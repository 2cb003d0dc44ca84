// Package evaluator implements the term-rewriting simplifier of spec §4.3:
// a fixed-point rewrite loop combining constant folding, surd reduction,
// fraction rationalization, trig exactness, and a small pattern/bindings
// engine for algebraic identities. The rewrite-loop shape (try node-level
// rules top-down, recurse into children only where none fires, repeat to a
// fixed point) is grounded on cheenar-genetic_series/pkg/expr/simplify.go's
// simplifyD; the pattern/placeholder engine is new, built directly from
// spec §4.3's own description since no example repo implements one.
package evaluator

import (
	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// Pattern is a small tree whose leaves are either concrete tokens or named
// placeholders (holes); internal nodes carry a fixed token, same shape as
// ast.Expression. A nil Pattern never matches.
type Pattern struct {
	Placeholder string // non-empty for a placeholder leaf; other fields ignored
	Root        token.Token
	Left, Right *Pattern
}

// Rule is pure data: a pattern and its replacement, both built from the same
// placeholder vocabulary (spec §9 "Pattern engine scope": rules are data,
// not code, so an extensible simplifier can take a rule list as input).
type Rule struct {
	Name        string
	Pattern     *Pattern
	Replacement *Pattern
}

// ph builds a placeholder pattern leaf.
func ph(name string) *Pattern { return &Pattern{Placeholder: name} }

// litNum builds a concrete small-integer NUMBER pattern leaf.
func litNum(n int64) *Pattern {
	return &Pattern{Root: token.NewNumber(numeric.NewInt(n), 0)}
}

func opPattern(ch byte, left, right *Pattern) *Pattern {
	return &Pattern{Root: token.NewOperator(token.OPERATOR, ch, 0), Left: left, Right: right}
}

// bindings maps placeholder names to the subexpression they matched.
type bindings map[string]*ast.Expression

// match attempts to unify pattern against expr, returning the accumulated
// bindings on success. A placeholder that recurs must match identically
// (structural equality via ast.Expression.Equal, which itself uses
// NumericEquals for NUMBER leaves) across every occurrence.
func match(p *Pattern, e *ast.Expression, b bindings) (bindings, bool) {
	if p == nil || e == nil {
		return nil, false
	}
	if p.Placeholder != "" {
		if existing, ok := b[p.Placeholder]; ok {
			if !existing.Equal(e) {
				return nil, false
			}
			return b, true
		}
		b[p.Placeholder] = e
		return b, true
	}
	if p.Root.Type != e.Root.Type {
		return nil, false
	}
	switch p.Root.Type {
	case token.NUMBER:
		if p.Root.Num.ToDouble() != e.Root.Num.ToDouble() {
			return nil, false
		}
	case token.OPERATOR, token.PARENTHESES:
		if p.Root.Ch != e.Root.Ch {
			return nil, false
		}
	case token.SYMBOL, token.GROUPING, token.PREFIX:
		if p.Root.Str != e.Root.Str {
			return nil, false
		}
	}
	if (p.Left == nil) != (e.Left == nil) || (p.Right == nil) != (e.Right == nil) {
		return nil, false
	}
	if p.Left != nil {
		var ok bool
		b, ok = match(p.Left, e.Left, b)
		if !ok {
			return nil, false
		}
	}
	if p.Right != nil {
		var ok bool
		b, ok = match(p.Right, e.Right, b)
		if !ok {
			return nil, false
		}
	}
	return b, true
}

// instantiate builds a concrete ast.Expression from a replacement pattern,
// substituting each placeholder with a deep clone of its binding (spec §3
// ownership rule: no subtree may be shared between two parents).
func instantiate(p *Pattern, b bindings) *ast.Expression {
	if p.Placeholder != "" {
		return b[p.Placeholder].Clone()
	}
	node := &ast.Expression{Root: p.Root}
	if p.Left != nil {
		node.Left = instantiate(p.Left, b)
	}
	if p.Right != nil {
		node.Right = instantiate(p.Right, b)
	}
	return node
}

// applyRules tries each rule in order against e and returns the first
// successful rewrite.
func applyRules(rules []Rule, e *ast.Expression) (*ast.Expression, bool) {
	for _, r := range rules {
		if b, ok := match(r.Pattern, e, bindings{}); ok {
			return instantiate(r.Replacement, b), true
		}
	}
	return nil, false
}
