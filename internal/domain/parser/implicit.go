package parser

import "github.com/ZanzyTHEbar/gocas/internal/domain/token"

// insertImplicitMultiplication is spec §4.2 Phase A: between any adjacent
// pair (L, R) where L is a value-producing token on the left (NUMBER,
// SYMBOL, or a closing paren) and R starts a new value-producing token on
// the right (NUMBER, SYMBOL, GROUPING, PREFIX, or an opening paren), an
// OPERATOR('*') is spliced in. Runs once, over the flat token list, before
// the Pratt pass begins.
func insertImplicitMultiplication(toks []token.Token) []token.Token {
	if len(toks) < 2 {
		return toks
	}
	out := make([]token.Token, 0, len(toks)+4)
	for i, tok := range toks {
		out = append(out, tok)
		if i+1 >= len(toks) {
			continue
		}
		next := toks[i+1]
		if endsValue(tok) && startsValue(next) {
			out = append(out, token.NewOperator(token.OPERATOR, '*', next.Pos))
		}
	}
	return out
}

func endsValue(tok token.Token) bool {
	switch tok.Type {
	case token.NUMBER, token.SYMBOL:
		return true
	case token.PARENTHESES:
		return tok.Ch == ')'
	}
	return false
}

func startsValue(tok token.Token) bool {
	switch tok.Type {
	case token.NUMBER, token.SYMBOL, token.GROUPING, token.PREFIX:
		return true
	case token.PARENTHESES:
		return tok.Ch == '('
	}
	return false
}
