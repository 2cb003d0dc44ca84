package numeric

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ParseInteger parses a maximal digit run (as scanned by the lexer) into an
// INT, promoting to BIGINT on overflow (spec §4.1/§9).
func ParseInteger(lit string) Number {
	if v, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return NewInt(v)
	}
	bi, ok := new(big.Int).SetString(lit, 10)
	if !ok {
		return NewReal(math.NaN())
	}
	return NewBigInt(bi)
}

// ParseDecimal parses a decimal literal (containing '.', 'e', or 'E') into a
// REAL, falling back to a big.Float carrier when the value overflows
// float64's finite range (spec §4.1/§9).
func ParseDecimal(lit string) Number {
	v, err := strconv.ParseFloat(lit, 64)
	if err == nil && !math.IsInf(v, 0) {
		return NewReal(v)
	}
	bf, _, err := big.ParseFloat(lit, 10, 200, big.ToNearestEven)
	if err != nil {
		return NewReal(math.NaN())
	}
	return NewBigReal(bf)
}

// LooksDecimal reports whether a scanned numeric literal should be parsed as
// a decimal (contains '.', 'e', or 'E') rather than an integer.
func LooksDecimal(lit string) bool {
	return strings.ContainsAny(lit, ".eE")
}
