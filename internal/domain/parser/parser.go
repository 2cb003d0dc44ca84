// Package parser implements the Pratt (precedence-climbing) parser of spec
// §4.2: implicit-multiplication insertion, then a prefix/infix-function
// table over the token stream, producing ast.Expression trees. The engine
// shape (prefixParseFn/infixParseFn maps, curToken/peekToken, per-node error
// accumulation surfaced at the Parse boundary) is a direct generalization of
// the teacher's (ZanzyTHEbar/latex2go) parser.Parser.
package parser

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/lexer"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// Binding powers, per spec §4.2's operator table plus the prefix/postfix
// rebinding powers named in the prose.
const (
	lowest   = 1
	sum      = 10 // + -
	product  = 20 // * / %
	exponent = 30 // ^
	prefixBP = 40 // unary +/-, PREFIX operand
)

var binding = map[byte]int{
	'+': sum, '-': sum,
	'*': product, '/': product, '%': product,
	'^': exponent,
}

var rightAssoc = map[byte]bool{'^': true}

// Integrator is the narrow port the parser uses to evaluate `integrate(...)`
// eagerly (spec §4.2). internal/adapters/numeric.Simpson satisfies this by
// structural typing; a self-contained default (backed by
// internal/domain/evaluator.Simpson) is used when none is configured, so the
// parser never depends on any adapter package.
type Integrator interface {
	Integrate(f func(x float64) float64, lo, hi float64, subintervals int) float64
}

// Options configures the parser's eager-evaluation toggles (spec §9 "Eager
// vs. lazy special forms").
type Options struct {
	EvaluateDerivative bool
	EvaluateIntegrals  bool
	Integrator         Integrator
	Subintervals       int
}

// DefaultOptions evaluates derivatives, roots, and factor eagerly, and
// evaluates numeric integrals eagerly via a default Simpson's-rule
// integrator over 1000 subintervals, matching spec §4.2's concrete example.
func DefaultOptions() Options {
	return Options{
		EvaluateDerivative: true,
		EvaluateIntegrals:  true,
		Integrator:         defaultIntegrator{},
		Subintervals:       1000,
	}
}

type (
	prefixParseFn func() (*ast.Expression, error)
	infixParseFn  func(left *ast.Expression) (*ast.Expression, error)
)

// Parser holds the state of one parse. A Parser is not reused across calls
// to Parse; NewParser builds a fresh engine per input the way the teacher's
// newStatefulParser does.
type Parser struct {
	toks []token.Token
	pos  int
	cur  token.Token
	peek token.Token

	errs []string
	opts Options

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// NewParser builds a Parser with the given eager-evaluation options.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse lexes and parses a complete expression string, per spec §4.2.
func (p *Parser) Parse(input string) (*ast.Expression, error) {
	toks, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	toks = insertImplicitMultiplication(toks)

	fresh := &Parser{opts: p.opts, toks: toks}
	fresh.registerFns()
	fresh.advance()
	fresh.advance()

	expr, err := fresh.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if len(fresh.errs) > 0 {
		return nil, &ParseError{Pos: fresh.cur.Pos, Msg: strings.Join(fresh.errs, "; ")}
	}
	if fresh.cur.Type != token.EOF {
		return nil, &ParseError{Pos: fresh.cur.Pos, Msg: fmt.Sprintf("unexpected token %q after expression", fresh.cur.String())}
	}
	return expr, nil
}

func (p *Parser) registerFns() {
	p.prefixFns = map[token.Type]prefixParseFn{
		token.NUMBER:      p.parseNumber,
		token.SYMBOL:      p.parseSymbol,
		token.PARENTHESES: p.parseParenOrError,
		token.OPERATOR:    p.parseUnaryOrError,
		token.GROUPING:    p.parseGrouping,
		token.PREFIX:      p.parsePrefixForm,
	}
	p.infixFns = map[token.Type]infixParseFn{
		token.OPERATOR: p.parseInfix,
	}
}

func (p *Parser) addError(pos int, format string, args ...interface{}) {
	p.errs = append(p.errs, fmt.Sprintf("at %d: %s", pos, fmt.Sprintf(format, args...)))
}

func (p *Parser) advance() {
	p.cur = p.peek
	if p.pos < len(p.toks) {
		p.peek = p.toks[p.pos]
		p.pos++
	} else {
		p.peek = token.EOFToken(p.cur.Pos)
	}
}

// curBinding reports the left-binding power of the token already sitting in
// p.cur: every prefix/infix parse function leaves p.cur on the first
// unconsumed token when it returns, so the driving loop below decides
// whether to continue by inspecting p.cur, not p.peek (p.peek is only the
// lookahead slot that advance() refills; no handler reads it).
func (p *Parser) curBinding() int {
	if p.cur.Type == token.OPERATOR {
		if bp, ok := binding[p.cur.Ch]; ok {
			return bp
		}
	}
	return lowest
}

func (p *Parser) parseExpression(precedence int) (*ast.Expression, error) {
	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		err := &ParseError{Pos: p.cur.Pos, Msg: fmt.Sprintf("no prefix parse rule for %s", p.cur.Type)}
		p.addError(p.cur.Pos, "%s", err.Msg)
		return nil, err
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}
	for p.cur.Type != token.EOF && precedence < p.curBinding() {
		infix, ok := p.infixFns[p.cur.Type]
		if !ok {
			return left, nil
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseNumber() (*ast.Expression, error) {
	leaf := ast.NewLeaf(p.cur)
	p.advance()
	return leaf, nil
}

func (p *Parser) parseSymbol() (*ast.Expression, error) {
	leaf := ast.NewLeaf(p.cur)
	p.advance()
	return leaf, nil
}

// parseUnaryOrError handles the OPERATOR token in null-denotation (prefix)
// position: only '+' and '-' are valid there (unary sign); anything else is
// "unknown operator in prefix position" (spec §4.2 error list).
func (p *Parser) parseUnaryOrError() (*ast.Expression, error) {
	if p.cur.Ch != '+' && p.cur.Ch != '-' {
		err := &ParseError{Pos: p.cur.Pos, Msg: fmt.Sprintf("unknown operator %q in prefix position", p.cur.Ch)}
		p.addError(p.cur.Pos, "%s", err.Msg)
		return nil, err
	}
	op := p.cur
	p.advance()
	operand, err := p.parseExpression(prefixBP)
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(op, operand), nil
}

func (p *Parser) parseParenOrError() (*ast.Expression, error) {
	if p.cur.Ch != '(' {
		err := &ParseError{Pos: p.cur.Pos, Msg: "unmatched ')'"}
		p.addError(p.cur.Pos, "%s", err.Msg)
		return nil, err
	}
	p.advance()
	inner, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.PARENTHESES || p.cur.Ch != ')' {
		err := &ParseError{Pos: p.cur.Pos, Msg: "unmatched '('"}
		p.addError(p.cur.Pos, "%s", err.Msg)
		return nil, err
	}
	p.advance()
	return ast.NewParentheses(inner), nil
}

// parseInfix builds a binary-operator node, honoring right-associativity for
// '^' and the eager-rational-folding special case for '/' over two
// integer-valued NUMBER leaves (spec §4.2).
func (p *Parser) parseInfix(left *ast.Expression) (*ast.Expression, error) {
	op := p.cur
	bp := binding[op.Ch]
	p.advance()
	rbp := bp + 1
	if rightAssoc[op.Ch] {
		rbp = bp - 1
	}
	right, err := p.parseExpression(rbp)
	if err != nil {
		return nil, err
	}
	if op.Ch == '/' {
		if node, ok := tryFoldIntegerDivision(left, right); ok {
			return node, nil
		}
	}
	return ast.NewBinary(op, left, right), nil
}

// parsePrefixForm handles the `lim` PREFIX token: parse the operand (body)
// at rebinding power 40 and attach it as Right (spec §4.2).
func (p *Parser) parsePrefixForm() (*ast.Expression, error) {
	prefixTok := p.cur
	p.advance()
	body, err := p.parseExpression(prefixBP)
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(prefixTok, body), nil
}
