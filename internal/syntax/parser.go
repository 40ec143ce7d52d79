package syntax

import (
	"fmt"

	"github.com/kteknomo/folprover/pkg/logic"
)

// ParseError reports where and why parsing a formula failed.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

func errf(format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// ParseFormula lexes and parses a single line of surface syntax into
// a formula. The grammar, loosest to tightest binding:
//
//	forall <var>(, <var>)*. <formula>
//	exists <var>(, <var>)*. <formula>
//	<formula> implies <formula>
//	<formula> or <formula>
//	<formula> and <formula>
//	not <formula>
//	Identifier(<term>(, <term>)*)   -- predicate, name starts uppercase
//	Identifier                      -- nullary predicate
//	( <formula> )
//
// A quantifier occurring in the left operand of implies/or/and defers
// to the nested parse (its dot binds tighter than the outer
// connective), matching how a reader would expect
// "forall x. P(x) implies Q(x)" to parenthesize.
func ParseFormula(input string) (logic.Formula, error) {
	tokens := lowerKeywords(Lex(input))
	if len(tokens) == 0 {
		return nil, errf("empty formula")
	}
	f, rest, err := parseFormula(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errf("unexpected trailing input: %v", rest)
	}
	return f, nil
}

// ParseTerm lexes and parses a single term (a variable or a function
// application). It is used to read a witness or substitution target
// outside of a full formula.
func ParseTerm(input string) (logic.Term, error) {
	tokens := lowerKeywords(Lex(input))
	if len(tokens) == 0 {
		return nil, errf("empty term")
	}
	t, rest, err := parseTerm(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errf("unexpected trailing input: %v", rest)
	}
	return t, nil
}

func parseFormula(tokens []string) (logic.Formula, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, errf("empty formula")
	}

	switch tokens[0] {
	case "forall":
		return parseQuantifier(tokens, "forall", func(v logic.Var, body logic.Formula) logic.Formula {
			return logic.ForAll{Bound: v, Body: body}
		})
	case "exists":
		return parseQuantifier(tokens, "exists", func(v logic.Var, body logic.Formula) logic.Formula {
			return logic.Exists{Bound: v, Body: body}
		})
	}

	if idx, ok := findTopLevel(tokens, "implies"); ok && !quantifierInLeft(tokens[:idx]) {
		if idx == 0 || idx == len(tokens)-1 {
			return nil, nil, errf("missing formula around 'implies'")
		}
		lhs, _, err := parseFormula(tokens[:idx])
		if err != nil {
			return nil, nil, err
		}
		rhs, _, err := parseFormula(tokens[idx+1:])
		if err != nil {
			return nil, nil, err
		}
		return logic.Implies{A: lhs, B: rhs}, nil, nil
	}

	if idx, ok := findTopLevel(tokens, "or"); ok && !quantifierInLeft(tokens[:idx]) {
		if idx == 0 || idx == len(tokens)-1 {
			return nil, nil, errf("missing formula around 'or'")
		}
		lhs, _, err := parseFormula(tokens[:idx])
		if err != nil {
			return nil, nil, err
		}
		rhs, _, err := parseFormula(tokens[idx+1:])
		if err != nil {
			return nil, nil, err
		}
		return logic.Or{A: lhs, B: rhs}, nil, nil
	}

	if idx, ok := findTopLevel(tokens, "and"); ok && !quantifierInLeft(tokens[:idx]) {
		if idx == 0 || idx == len(tokens)-1 {
			return nil, nil, errf("missing formula around 'and'")
		}
		lhs, _, err := parseFormula(tokens[:idx])
		if err != nil {
			return nil, nil, err
		}
		rhs, _, err := parseFormula(tokens[idx+1:])
		if err != nil {
			return nil, nil, err
		}
		return logic.And{A: lhs, B: rhs}, nil, nil
	}

	if tokens[0] == "not" {
		if len(tokens) < 2 {
			return nil, nil, errf("missing formula after 'not'")
		}
		body, _, err := parseFormula(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return logic.Not{Formula: body}, nil, nil
	}

	if isIdentifier(tokens[0]) && startsUpper(tokens[0]) {
		return parsePredicate(tokens)
	}

	if tokens[0] == "(" {
		if tokens[len(tokens)-1] != ")" {
			return nil, nil, errf("missing ')' to close group")
		}
		if len(tokens) == 2 {
			return nil, nil, errf("empty parenthetical group")
		}
		inner, _, err := parseFormula(tokens[1 : len(tokens)-1])
		if err != nil {
			return nil, nil, err
		}
		return inner, nil, nil
	}

	return nil, nil, errf("unable to parse formula at %q", tokens[0])
}

func parseQuantifier(tokens []string, keyword string, wrap func(logic.Var, logic.Formula) logic.Formula) (logic.Formula, []string, error) {
	dot := -1
	for i := 1; i < len(tokens); i++ {
		if tokens[i] == "." {
			dot = i
			break
		}
	}
	if dot == -1 {
		return nil, nil, errf("missing '.' in %s quantifier", keyword)
	}
	if dot == 1 {
		return nil, nil, errf("missing variable in %s quantifier", keyword)
	}
	if dot == len(tokens)-1 {
		return nil, nil, errf("missing formula in %s quantifier", keyword)
	}

	groups, err := splitArgs(tokens[1:dot])
	if err != nil {
		return nil, nil, err
	}
	vars := make([]logic.Var, len(groups))
	for i, group := range groups {
		term, _, err := parseTerm(group)
		if err != nil {
			return nil, nil, err
		}
		v, ok := term.(logic.Var)
		if !ok {
			return nil, nil, errf("%s quantifier binder must be a variable, got %s", keyword, term)
		}
		vars[i] = v
	}

	body, _, err := parseFormula(tokens[dot+1:])
	if err != nil {
		return nil, nil, err
	}
	for i := len(vars) - 1; i >= 0; i-- {
		body = wrap(vars[i], body)
	}
	return body, nil, nil
}

func parsePredicate(tokens []string) (logic.Formula, []string, error) {
	name := tokens[0]
	if len(tokens) == 1 {
		return logic.Pred{Name: name}, nil, nil
	}
	if tokens[1] != "(" {
		return nil, nil, errf("unable to parse formula at %q", tokens[0])
	}
	if tokens[len(tokens)-1] != ")" {
		return nil, nil, errf("missing ')' after argument list for %s", name)
	}
	args, err := parseTermList(tokens[2 : len(tokens)-1])
	if err != nil {
		return nil, nil, err
	}
	return logic.Pred{Name: name, Args: args}, nil, nil
}

func parseTerm(tokens []string) (logic.Term, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, errf("empty term")
	}

	if tokens[0] == "(" {
		if tokens[len(tokens)-1] != ")" {
			return nil, nil, errf("missing ')' to close group")
		}
		if len(tokens) == 2 {
			return nil, nil, errf("empty parenthetical group")
		}
		inner, _, err := parseTerm(tokens[1 : len(tokens)-1])
		if err != nil {
			return nil, nil, err
		}
		return inner, nil, nil
	}

	if !isIdentifier(tokens[0]) || startsUpper(tokens[0]) {
		return nil, nil, errf("expected a variable or function, got %q", tokens[0])
	}

	name := tokens[0]
	if len(tokens) == 1 {
		return logic.Var{Name: name}, nil, nil
	}
	if tokens[1] != "(" {
		return nil, nil, errf("unable to parse term at %q", tokens[0])
	}
	if tokens[len(tokens)-1] != ")" {
		return nil, nil, errf("missing ')' after argument list for %s", name)
	}
	args, err := parseTermList(tokens[2 : len(tokens)-1])
	if err != nil {
		return nil, nil, err
	}
	return logic.Fun{Name: name, Args: args}, nil, nil
}

func parseTermList(tokens []string) ([]logic.Term, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	groups, err := splitArgs(tokens)
	if err != nil {
		return nil, err
	}
	args := make([]logic.Term, len(groups))
	for i, g := range groups {
		t, _, err := parseTerm(g)
		if err != nil {
			return nil, err
		}
		args[i] = t
	}
	return args, nil
}

// splitArgs splits a comma-separated argument list at depth 0,
// erroring on an empty argument (two adjacent commas, or a comma at
// either end).
func splitArgs(tokens []string) ([][]string, error) {
	var groups [][]string
	depth := 0
	start := 0
	for i, tok := range tokens {
		switch tok {
		case "(":
			depth++
		case ")":
			depth--
		case ",":
			if depth == 0 {
				if i == start {
					return nil, errf("missing argument")
				}
				groups = append(groups, tokens[start:i])
				start = i + 1
			}
		}
	}
	if start == len(tokens) {
		return nil, errf("missing argument")
	}
	groups = append(groups, tokens[start:])
	return groups, nil
}

// findTopLevel returns the index of the first occurrence of tok at
// paren depth 0.
func findTopLevel(tokens []string, tok string) (int, bool) {
	depth := 0
	for i, t := range tokens {
		switch t {
		case "(":
			depth++
		case ")":
			depth--
		default:
			if depth == 0 && t == tok {
				return i, true
			}
		}
	}
	return 0, false
}

// quantifierInLeft reports whether a forall/exists appears at depth 0
// within tokens, meaning the quantifier's body extends through the
// rest of the formula and the connective just found belongs to it
// rather than splitting at the top level.
func quantifierInLeft(tokens []string) bool {
	depth := 0
	for _, t := range tokens {
		switch t {
		case "(":
			depth++
		case ")":
			depth--
		default:
			if depth == 0 && (t == "forall" || t == "exists") {
				return true
			}
		}
	}
	return false
}
