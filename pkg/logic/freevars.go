package logic

import "github.com/hashicorp/go-set/v3"

// FreeVarsTerm returns the set of variable names occurring in term.
func FreeVarsTerm(term Term) *set.Set[string] {
	switch t := term.(type) {
	case Var:
		return set.From([]string{t.Name})
	case Fun:
		result := set.New[string](len(t.Args))
		for _, a := range t.Args {
			result.InsertSet(FreeVarsTerm(a))
		}
		return result
	default:
		return set.New[string](0)
	}
}

// FreeVars returns the free-variable set of a formula: for Pred, the
// union of its arguments' variables; for connectives,
// the union of the children's free variables; for a quantifier
// Q(v, body), FreeVars(body) minus {v}.
func FreeVars(f Formula) *set.Set[string] {
	switch n := f.(type) {
	case Pred:
		result := set.New[string](len(n.Args))
		for _, a := range n.Args {
			result.InsertSet(FreeVarsTerm(a))
		}
		return result
	case Not:
		return FreeVars(n.Formula)
	case And:
		return unionFree(n.A, n.B)
	case Or:
		return unionFree(n.A, n.B)
	case Implies:
		return unionFree(n.A, n.B)
	case ForAll:
		result := FreeVars(n.Body)
		result.Remove(n.Bound.Name)
		return result
	case Exists:
		result := FreeVars(n.Body)
		result.Remove(n.Bound.Name)
		return result
	default:
		return set.New[string](0)
	}
}

func unionFree(a, b Formula) *set.Set[string] {
	result := FreeVars(a)
	result.InsertSet(FreeVars(b))
	return result
}
