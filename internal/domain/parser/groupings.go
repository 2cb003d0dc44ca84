package parser

import (
	"fmt"

	"github.com/ZanzyTHEbar/gocas/internal/domain/ast"
	"github.com/ZanzyTHEbar/gocas/internal/domain/calculus"
	"github.com/ZanzyTHEbar/gocas/internal/domain/evaluator"
	"github.com/ZanzyTHEbar/gocas/internal/domain/numeric"
	"github.com/ZanzyTHEbar/gocas/internal/domain/polynomial"
	"github.com/ZanzyTHEbar/gocas/internal/domain/token"
)

// parseGrouping handles every GROUPING-token prefix form (spec §4.2): consume
// the required '(', collect the comma-separated argument list, then branch
// on the reserved name. Plain single-argument groupings (sqrt, sin, cos,
// tan, ln, log) fall through to the default case.
func (p *Parser) parseGrouping() (*ast.Expression, error) {
	name := p.cur.Str
	pos := p.cur.Pos
	p.advance()
	if p.cur.Type != token.PARENTHESES || p.cur.Ch != '(' {
		err := &ParseError{Pos: p.cur.Pos, Msg: fmt.Sprintf("expected '(' after %q", name)}
		p.addError(p.cur.Pos, "%s", err.Msg)
		return nil, err
	}
	p.advance()

	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}

	switch name {
	case "int":
		return p.buildInt(args, pos)
	case "integrate":
		return p.buildIntegrate(args, pos)
	case "dd":
		return p.buildDD(args, pos)
	case "roots":
		return p.buildRoots(args, pos)
	case "factor":
		return p.buildFactor(args, pos)
	default:
		if len(args) != 1 {
			err := &ParseError{Pos: pos, Msg: fmt.Sprintf("%q takes exactly 1 argument, got %d", name, len(args))}
			p.addError(pos, "%s", err.Msg)
			return nil, err
		}
		return ast.NewGrouping(name, nil, args[0]), nil
	}
}

// parseArgList parses a comma-separated argument list up to the closing ')'.
// Each argument is parsed with parseExpression(lowest); since ',' has no
// registered binding power, an argument's own expression naturally stops at
// the next ',' or the closing ')' without any explicit depth bookkeeping.
func (p *Parser) parseArgList() ([]*ast.Expression, error) {
	var args []*ast.Expression
	for {
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == token.OPERATOR && p.cur.Ch == ',' {
			p.advance()
			continue
		}
		break
	}
	if p.cur.Type != token.PARENTHESES || p.cur.Ch != ')' {
		err := &ParseError{Pos: p.cur.Pos, Msg: "expected ')' to close argument list"}
		p.addError(p.cur.Pos, "%s", err.Msg)
		return nil, err
	}
	p.advance()
	return args, nil
}

// symbolName requires arg to be a bare SYMBOL leaf and returns its name;
// used for the variable argument of dd/int/integrate/roots/factor (spec §7:
// "non-symbol variable" is a ParseError).
func symbolName(arg *ast.Expression) (string, bool) {
	if arg == nil || !arg.IsLeaf() || arg.Root.Type != token.SYMBOL {
		return "", false
	}
	return arg.Root.Str, true
}

func (p *Parser) requireSymbolArg(arg *ast.Expression, pos int, form string) (string, error) {
	name, ok := symbolName(arg)
	if !ok {
		err := &ParseError{Pos: pos, Msg: fmt.Sprintf("%q requires a symbol variable argument", form)}
		p.addError(pos, "%s", err.Msg)
		return "", err
	}
	return name, nil
}

// buildInt handles int(f, x) and int(f, x, lo, hi): a parameter spine
// param(x) [-> param(lo) -> param(hi)] on the left, the integrand on the
// right (spec §4.2).
func (p *Parser) buildInt(args []*ast.Expression, pos int) (*ast.Expression, error) {
	if len(args) != 2 && len(args) != 4 {
		err := &ParseError{Pos: pos, Msg: fmt.Sprintf("\"int\" takes 2 or 4 arguments, got %d", len(args))}
		p.addError(pos, "%s", err.Msg)
		return nil, err
	}
	if _, err := p.requireSymbolArg(args[1], pos, "int"); err != nil {
		return nil, err
	}
	var spine *ast.Expression
	if len(args) == 4 {
		spine = ast.NewParam(args[1], ast.NewParam(args[2], ast.NewParam(args[3], nil)))
	} else {
		spine = ast.NewParam(args[1], nil)
	}
	return ast.NewGrouping("int", spine, args[0]), nil
}

// buildIntegrate handles integrate(f, x, lo, hi): always requires bounds.
// With eager evaluation enabled, extracts a float function of x and
// evaluates it via the configured Integrator (Simpson's rule), returning a
// NUMBER(REAL) leaf; otherwise builds a symbolic integrate node shaped like
// int's (spec §4.2).
func (p *Parser) buildIntegrate(args []*ast.Expression, pos int) (*ast.Expression, error) {
	if len(args) != 4 {
		err := &ParseError{Pos: pos, Msg: fmt.Sprintf("\"integrate\" takes exactly 4 arguments, got %d", len(args))}
		p.addError(pos, "%s", err.Msg)
		return nil, err
	}
	varName, err := p.requireSymbolArg(args[1], pos, "integrate")
	if err != nil {
		return nil, err
	}
	spine := ast.NewParam(args[1], ast.NewParam(args[2], ast.NewParam(args[3], nil)))
	if !p.opts.EvaluateIntegrals {
		return ast.NewGrouping("integrate", spine, args[0]), nil
	}
	lo, loErr := evaluator.EvalFloat(args[2], varName, 0)
	hi, hiErr := evaluator.EvalFloat(args[3], varName, 0)
	if loErr != nil || hiErr != nil {
		return ast.NewGrouping("integrate", spine, args[0]), nil
	}
	integrand := args[0]
	integrator := p.opts.Integrator
	if integrator == nil {
		integrator = defaultIntegrator{}
	}
	subintervals := p.opts.Subintervals
	if subintervals <= 0 {
		subintervals = 1000
	}
	f := func(x float64) float64 {
		v, ferr := evaluator.EvalFloat(integrand, varName, x)
		if ferr != nil {
			return 0
		}
		return v
	}
	result := integrator.Integrate(f, lo, hi, subintervals)
	return ast.NewLeaf(token.NewNumber(numeric.NewReal(result), pos)), nil
}

// buildDD handles dd(expr, x): eager differentiation (spec §4.4) when
// enabled, else a symbolic dd node shaped like a plain single-argument
// grouping with the variable attached via a one-link param spine.
func (p *Parser) buildDD(args []*ast.Expression, pos int) (*ast.Expression, error) {
	if len(args) != 2 {
		err := &ParseError{Pos: pos, Msg: fmt.Sprintf("\"dd\" takes exactly 2 arguments, got %d", len(args))}
		p.addError(pos, "%s", err.Msg)
		return nil, err
	}
	varName, err := p.requireSymbolArg(args[1], pos, "dd")
	if err != nil {
		return nil, err
	}
	if p.opts.EvaluateDerivative {
		return calculus.Differentiate(args[0], varName), nil
	}
	return ast.NewGrouping("dd", ast.NewParam(args[1], nil), args[0]), nil
}

// buildRoots handles roots(expr, x): extract a polynomial (§4.5), solve it
// (§4.6), and build a rootsResult node whose left child is a linked
// rootEntry chain, each entry's left being a root expression (spec §4.2).
// A non-polynomial or constant-degree extraction surfaces as a
// SolverDomainError rather than a ParseError (spec §7's extraction/solver
// boundary).
func (p *Parser) buildRoots(args []*ast.Expression, pos int) (*ast.Expression, error) {
	if len(args) != 2 {
		err := &ParseError{Pos: pos, Msg: fmt.Sprintf("\"roots\" takes exactly 2 arguments, got %d", len(args))}
		p.addError(pos, "%s", err.Msg)
		return nil, err
	}
	varName, err := p.requireSymbolArg(args[1], pos, "roots")
	if err != nil {
		return nil, err
	}
	poly, perr := polynomial.Extract(args[0], varName)
	if perr != nil {
		return nil, &SolverDomainError{Pos: pos, Msg: perr.Error()}
	}
	roots, serr := polynomial.Solve(poly)
	if serr != nil {
		return nil, &SolverDomainError{Pos: pos, Msg: serr.Error()}
	}
	return ast.NewGrouping("rootsResult", chainEntries("rootEntry", roots), nil), nil
}

// buildFactor handles factor(expr, x) analogously to buildRoots, producing a
// factorResult node over a factorEntry chain (spec §4.2).
func (p *Parser) buildFactor(args []*ast.Expression, pos int) (*ast.Expression, error) {
	if len(args) != 2 {
		err := &ParseError{Pos: pos, Msg: fmt.Sprintf("\"factor\" takes exactly 2 arguments, got %d", len(args))}
		p.addError(pos, "%s", err.Msg)
		return nil, err
	}
	varName, err := p.requireSymbolArg(args[1], pos, "factor")
	if err != nil {
		return nil, err
	}
	poly, perr := polynomial.Extract(args[0], varName)
	if perr != nil {
		return nil, &SolverDomainError{Pos: pos, Msg: perr.Error()}
	}
	factors, ferr := polynomial.Factor(poly, varName)
	if ferr != nil {
		return nil, &SolverDomainError{Pos: pos, Msg: ferr.Error()}
	}
	return ast.NewGrouping("factorResult", chainEntries("factorEntry", factors), nil), nil
}

// chainEntries links items into a right-recursing GROUPING(name) spine, each
// link's Left the item and Right the next link (nil-terminated), matching
// the shape ast.NewParam gives the generic "param" spine.
func chainEntries(name string, items []*ast.Expression) *ast.Expression {
	var tail *ast.Expression
	for i := len(items) - 1; i >= 0; i-- {
		tail = ast.NewGrouping(name, items[i], tail)
	}
	return tail
}
