// Package lexer turns a surface-syntax expression string into a flat token
// stream, following the scan-loop shape of the teacher's
// (ZanzyTHEbar/latex2go) parser.Lexer: readChar/peekChar over byte offsets,
// readIdentifier/readNumber maximal-munch helpers, a switch over the current
// character. It is generalized from LaTeX-command scanning to spec §4.1's
// math-expression grammar (implicit-multiplication-friendly identifiers,
// named groupings, named constants, the `lim` prefix form).
package lexer

import (
	"fmt"

	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// LexError reports an unexpected character or malformed prefix/grouping form
// (spec §7).
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %s", e.Pos, e.Msg)
}

// reservedGroupings is the set of identifiers the spec promotes straight to
// a GROUPING token rather than a plain SYMBOL.
var reservedGroupings = map[string]bool{
	"sqrt": true, "sin": true, "cos": true, "tan": true,
	"ln": true, "log": true, "dd": true, "roots": true, "factor": true,
}

// namedConstants maps a case-insensitive identifier to its materialized
// Number value (spec §4.1).
var namedConstants = map[string]numeric.Number{
	"pi": numeric.Pi, "tau": numeric.Tau, "e": numeric.E, "infinity": numeric.Infinity,
}

// Lexer holds scanning state over an input string.
type Lexer struct {
	input string
	pos   int
	ch    byte
}

// New creates a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
}

func (l *Lexer) peekAt(offset int) byte {
	p := l.pos + offset
	if p >= len(l.input) {
		return 0
	}
	return l.input[p]
}

func (l *Lexer) advance() {
	l.pos++
	l.readChar()
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.advance()
	}
}

// Tokenize scans the entire input and returns the flat token sequence,
// terminated by an explicit EOF token (spec §4.1).
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var toks []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks, nil
}

func (l *Lexer) next() (token.Token, error) {
	l.skipWhitespace()
	pos := l.pos

	switch {
	case l.ch == 0:
		return token.EOFToken(pos), nil
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekAt(1))):
		return l.readNumberToken(pos)
	case isLetter(l.ch):
		return l.readIdentifierToken(pos)
	case l.ch == ',':
		l.advance()
		return token.NewOperator(token.OPERATOR, ',', pos), nil
	case isOperatorChar(l.ch):
		ch := l.ch
		l.advance()
		return token.NewOperator(token.OPERATOR, ch, pos), nil
	case l.ch == '(' || l.ch == ')':
		ch := l.ch
		l.advance()
		return token.NewOperator(token.PARENTHESES, ch, pos), nil
	default:
		return token.Token{}, &LexError{Pos: pos, Msg: fmt.Sprintf("unrecognized character %q", l.ch)}
	}
}

func (l *Lexer) readNumberToken(pos int) (token.Token, error) {
	lit := l.readNumberLiteral()
	var n numeric.Number
	if numeric.LooksDecimal(lit) {
		n = numeric.ParseDecimal(lit)
	} else {
		n = numeric.ParseInteger(lit)
	}
	return token.NewNumber(n, pos), nil
}

func (l *Lexer) readNumberLiteral() string {
	start := l.pos
	sawDot := false
	for isDigit(l.ch) || (l.ch == '.' && !sawDot) {
		if l.ch == '.' {
			sawDot = true
		}
		l.advance()
	}
	if l.ch == 'e' || l.ch == 'E' {
		save := l.pos
		l.advance()
		if l.ch == '+' || l.ch == '-' {
			l.advance()
		}
		if isDigit(l.ch) {
			for isDigit(l.ch) {
				l.advance()
			}
		} else {
			l.pos = save
			l.readChar()
		}
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readIdentifierLiteral() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.advance()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readIdentifierToken(pos int) (token.Token, error) {
	ident := l.readIdentifierLiteral()
	lower := toLower(ident)

	if lower == "lim" {
		if l.ch != '(' {
			return token.Token{}, &LexError{Pos: l.pos, Msg: "'lim' must be followed by '('"}
		}
		return l.readLimitToken(pos)
	}
	if lower == "int" {
		if l.ch != '(' {
			return token.Token{}, &LexError{Pos: l.pos, Msg: "'int' must be followed by '('"}
		}
		return token.NewGrouping("int", pos), nil
	}
	if lower == "integrate" {
		if l.ch != '(' {
			return token.Token{}, &LexError{Pos: l.pos, Msg: "'integrate' must be followed by '('"}
		}
		return token.NewGrouping("integrate", pos), nil
	}
	if c, ok := namedConstants[lower]; ok {
		return token.NewNumber(c, pos), nil
	}
	if reservedGroupings[lower] {
		if l.ch != '(' {
			return token.Token{}, &LexError{Pos: l.pos, Msg: fmt.Sprintf("'%s' must be followed by '('", lower)}
		}
		return token.NewGrouping(lower, pos), nil
	}
	return token.NewSymbol(ident, pos), nil
}

// readLimitToken scans `lim(approaching, target)` into a single PREFIX token
// whose payload is a LimitInfo, per spec §4.1. Arguments are read as balanced
// raw substrings (each may itself be an arbitrary expression) split on every
// top-level comma; anything other than exactly two parts is a LexError.
func (l *Lexer) readLimitToken(pos int) (token.Token, error) {
	l.advance() // consume '('
	depth := 1
	start := l.pos
	var parts []string
	for depth > 0 {
		if l.ch == 0 {
			return token.Token{}, &LexError{Pos: l.pos, Msg: "unterminated 'lim('"}
		}
		switch l.ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				parts = append(parts, l.input[start:l.pos])
			}
		case ',':
			if depth == 1 {
				parts = append(parts, l.input[start:l.pos])
				l.advance()
				start = l.pos
				continue
			}
		}
		l.advance()
	}
	if len(parts) != 2 {
		return token.Token{}, &LexError{Pos: pos, Msg: fmt.Sprintf("'lim' requires exactly 2 arguments, got %d", len(parts))}
	}
	info := &token.LimitInfo{Approaching: trimSpace(parts[0]), Target: trimSpace(parts[1])}
	return token.NewPrefix("lim", info, pos), nil
}

func isDigit(ch byte) bool  { return ch >= '0' && ch <= '9' }
func isLetter(ch byte) bool { return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' }

func isOperatorChar(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '^':
		return true
	}
	return false
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpaceByte(s[start]) {
		start++
	}
	for end > start && isSpaceByte(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpaceByte(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
