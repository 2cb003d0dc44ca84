package lexer_test

import (
	"testing"

	"github.com/ZanzyTHEbar/gocas/internal/domain/lexer"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_BasicArithmetic(t *testing.T) {
	toks, err := lexer.Tokenize("1 + 2 * x")
	require.NoError(t, err)

	types := make([]token.Type, 0, len(toks))
	for _, tk := range toks {
		types = append(types, tk.Type)
	}
	assert.Equal(t, []token.Type{
		token.NUMBER, token.OPERATOR, token.NUMBER, token.OPERATOR, token.SYMBOL, token.EOF,
	}, types)
}

func TestTokenize_IntegerOverflowPromotesToBigInt(t *testing.T) {
	toks, err := lexer.Tokenize("99999999999999999999")
	require.NoError(t, err)
	require.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, numeric.BigInt, toks[0].Num.Kind())
}

func TestTokenize_Decimal(t *testing.T) {
	toks, err := lexer.Tokenize("3.14")
	require.NoError(t, err)
	assert.Equal(t, numeric.Real, toks[0].Num.Kind())
	assert.InDelta(t, 3.14, toks[0].Num.ToDouble(), 1e-9)
}

func TestTokenize_ReservedGroupingRequiresParen(t *testing.T) {
	_, err := lexer.Tokenize("sqrt 4")
	assert.Error(t, err)
}

func TestTokenize_ReservedGrouping(t *testing.T) {
	toks, err := lexer.Tokenize("sqrt(4)")
	require.NoError(t, err)
	assert.Equal(t, token.GROUPING, toks[0].Type)
	assert.Equal(t, "sqrt", toks[0].Str)
}

func TestTokenize_NamedConstantsCaseInsensitive(t *testing.T) {
	toks, err := lexer.Tokenize("PI + Tau + E + infinity")
	require.NoError(t, err)
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.True(t, numeric.NumericEquals(toks[0].Num, numeric.Pi))
}

func TestTokenize_Limit(t *testing.T) {
	toks, err := lexer.Tokenize("lim(x, 0)")
	require.NoError(t, err)
	require.Equal(t, token.PREFIX, toks[0].Type)
	require.NotNil(t, toks[0].Limit)
	assert.Equal(t, "x", toks[0].Limit.Approaching)
	assert.Equal(t, "0", toks[0].Limit.Target)
}

func TestTokenize_LimitWrongArgCountFails(t *testing.T) {
	_, err := lexer.Tokenize("lim(x, 0, 1)")
	assert.Error(t, err)
}

func TestTokenize_UnrecognizedCharacterFails(t *testing.T) {
	_, err := lexer.Tokenize("1 @ 2")
	var lexErr *lexer.LexError
	assert.ErrorAs(t, err, &lexErr)
}

func TestTokenize_IntRequiresParen(t *testing.T) {
	_, err := lexer.Tokenize("int x")
	assert.Error(t, err)
}

func TestTokenize_CommaAndParens(t *testing.T) {
	toks, err := lexer.Tokenize("int(x, y)")
	require.NoError(t, err)
	assert.Equal(t, token.GROUPING, toks[0].Type)
	assert.Equal(t, token.PARENTHESES, toks[1].Type)
	assert.Equal(t, byte('('), toks[1].Ch)
}
