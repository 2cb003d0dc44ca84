// Package render walks an ast.Expression bottom-up and produces its TeX
// rendering (spec §6), the way quizizz-cas's pkg/latex formatter walks its
// own Expr tree: one format function per node shape, dispatching by the
// node's own kind rather than a Go type switch, since every node here is the
// same Expression struct.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// ToTeX renders expr as a TeX fragment (spec §6).
func ToTeX(expr *ast.Expression) string {
	return format(expr)
}

func format(e *ast.Expression) string {
	if e == nil {
		return ""
	}
	switch e.Root.Type {
	case token.NUMBER:
		return formatNumber(e.Root.Num)
	case token.SYMBOL:
		return e.Root.Str
	case token.PARENTHESES:
		return "\\left(" + format(e.Right) + "\\right)"
	case token.OPERATOR:
		return formatOperator(e)
	case token.GROUPING:
		return formatGrouping(e)
	case token.PREFIX:
		return formatPrefix(e)
	}
	return e.Root.String()
}

// formatNumber renders the four named constants (pi, tau, e, infinity) as
// their TeX glyphs (tau as 2\pi per DESIGN.md's Open Question decision),
// negative exact numbers with a leading '-', and RATIONAL/BIGRATIONAL values
// as \frac{p}{q} (spec §6).
func formatNumber(n numeric.Number) string {
	if n.Kind() == numeric.Real {
		switch n.ToDouble() {
		case math.Pi:
			return "\\pi"
		case 2 * math.Pi:
			return "2\\pi"
		case math.E:
			return "e"
		case math.Inf(1):
			return "\\infty"
		}
	}
	if n.IsNegative() {
		return "-" + formatNumber(numeric.Negate(n))
	}
	switch n.Kind() {
	case numeric.Rational:
		if n.Denominator() == 1 {
			return fmt.Sprintf("%d", n.Numerator())
		}
		return fmt.Sprintf("\\frac{%d}{%d}", n.Numerator(), n.Denominator())
	case numeric.BigRational:
		r := n.AsBigRat()
		if r.IsInt() {
			return r.Num().String()
		}
		return fmt.Sprintf("\\frac{%s}{%s}", r.Num().String(), r.Denom().String())
	default:
		return n.String()
	}
}

// formatOperator renders unary sign, infix +/-, \cdot for *, \frac for /,
// and base^{expo} for ^ (spec §6).
func formatOperator(e *ast.Expression) string {
	if e.Left == nil {
		sign := string(e.Root.Ch)
		return sign + bracedIfSum(e.Right)
	}
	l, r := format(e.Left), format(e.Right)
	switch e.Root.Ch {
	case '+':
		return l + " + " + r
	case '-':
		return l + " - " + r
	case '*':
		return l + " \\cdot " + r
	case '/':
		return fmt.Sprintf("\\frac{%s}{%s}", l, r)
	case '%':
		return l + " \\bmod " + r
	case '^':
		return fmt.Sprintf("%s^{%s}", bracedIfSum(e.Left), r)
	}
	return l + string(e.Root.Ch) + r
}

// bracedIfSum wraps a subexpression in \left(\right) when rendering it bare
// would be ambiguous as the base of a power or the operand of a unary sign
// (a top-level binary +/-), matching the teacher-reference formatter's
// needsBaseBraces check.
func bracedIfSum(e *ast.Expression) string {
	if e != nil && e.Root.Type == token.OPERATOR && e.Left != nil && (e.Root.Ch == '+' || e.Root.Ch == '-') {
		return "\\left(" + format(e) + "\\right)"
	}
	return format(e)
}

func formatGrouping(e *ast.Expression) string {
	name := e.Root.Str
	switch name {
	case "sqrt":
		return fmt.Sprintf("\\sqrt{%s}", format(e.Right))
	case "sin", "cos", "tan":
		return fmt.Sprintf("\\%s\\left(%s\\right)", name, format(e.Right))
	case "ln":
		return fmt.Sprintf("\\ln\\left(%s\\right)", format(e.Right))
	case "log":
		return fmt.Sprintf("\\log\\left(%s\\right)", format(e.Right))
	case "int", "integrate":
		return formatIntegral(e)
	case "dd":
		args, _ := ast.ParamArgs(e.Left)
		varName := ""
		if len(args) > 0 {
			varName = format(args[0])
		}
		return fmt.Sprintf("\\frac{d}{d%s}\\left(%s\\right)", varName, format(e.Right))
	case "rootsResult":
		items := collectChain("rootEntry", e.Left)
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = format(it)
		}
		return fmt.Sprintf("\\left\\{%s\\right\\}", strings.Join(parts, ", "))
	case "factorResult":
		items := collectChain("factorEntry", e.Left)
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = format(it)
		}
		return strings.Join(parts, " \\cdot ")
	default:
		if e.Right == nil {
			return "\\mathrm{" + name + "}"
		}
		return fmt.Sprintf("\\mathrm{%s}\\left(%s\\right)", name, format(e.Right))
	}
}

// formatIntegral renders int/integrate's param spine (x[, lo, hi]) plus the
// integrand body (spec §6): with bounds, \int_{lo}^{hi} body \, dx; without,
// \int body \, dx.
func formatIntegral(e *ast.Expression) string {
	args, _ := ast.ParamArgs(e.Left)
	body := format(e.Right)
	if len(args) < 1 {
		return fmt.Sprintf("\\int %s", body)
	}
	varName := format(args[0])
	if len(args) >= 3 {
		lo, hi := format(args[1]), format(args[2])
		return fmt.Sprintf("\\int_{%s}^{%s} %s \\, d%s", lo, hi, body, varName)
	}
	return fmt.Sprintf("\\int %s \\, d%s", body, varName)
}

// formatPrefix renders the `lim` PREFIX form: \lim_{approaching \to target}
// body (spec §6).
func formatPrefix(e *ast.Expression) string {
	if e.Root.Str == "lim" && e.Root.Limit != nil {
		return fmt.Sprintf("\\lim_{%s \\to %s} %s", e.Root.Limit.Approaching, e.Root.Limit.Target, format(e.Right))
	}
	return format(e.Right)
}

// collectChain walks a GROUPING(name) spine built by the parser's
// chainEntries (rootEntry/factorEntry), returning each link's left item.
func collectChain(name string, node *ast.Expression) []*ast.Expression {
	var out []*ast.Expression
	for cur := node; cur != nil && cur.IsGrouping(name); cur = cur.Right {
		out = append(out, cur.Left)
	}
	return out
}
