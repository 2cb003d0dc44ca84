package evaluator

// identityRules is the fixed table of spec §4.3 rule 8 algebraic identities,
// expressed as pattern/replacement pairs: a+0, 0+a, a-0, a*1, 1*a, a*0, 0*a,
// a/1. Each is a single rewrite step; the driving loop in simplify.go applies
// them to a fixed point alongside the other rule classes.
var identityRules = []Rule{
	{Name: "add-zero-right", Pattern: opPattern('+', ph("a"), litNum(0)), Replacement: ph("a")},
	{Name: "add-zero-left", Pattern: opPattern('+', litNum(0), ph("a")), Replacement: ph("a")},
	{Name: "sub-zero-right", Pattern: opPattern('-', ph("a"), litNum(0)), Replacement: ph("a")},
	{Name: "mul-one-right", Pattern: opPattern('*', ph("a"), litNum(1)), Replacement: ph("a")},
	{Name: "mul-one-left", Pattern: opPattern('*', litNum(1), ph("a")), Replacement: ph("a")},
	{Name: "mul-zero-right", Pattern: opPattern('*', ph("a"), litNum(0)), Replacement: litNum(0)},
	{Name: "mul-zero-left", Pattern: opPattern('*', litNum(0), ph("a")), Replacement: litNum(0)},
	{Name: "div-one-right", Pattern: opPattern('/', ph("a"), litNum(1)), Replacement: ph("a")},
}
