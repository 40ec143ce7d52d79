package logic

// Unify computes a most general unifier of s and t, threading an
// accumulator substitution. It returns the extended substitution and
// true on success, or (nil, false) on failure.
//
// Rules, applied after first applying acc to both inputs:
//  1. If the walked terms are syntactically equal, succeed unchanged.
//  2. If one side is a variable not occurring in the other (occurs
//     check), bind it.
//  3. If both sides are Fun with the same name and arity, unify
//     arguments pairwise, threading the substitution.
//  4. Otherwise fail.
//
// The occurs check is mandatory: omitting it would be unsound for
// first-order logic.
func Unify(s, t Term, acc *Substitution) (*Substitution, bool) {
	if acc == nil {
		acc = NewSubstitution()
	}

	walkedS := acc.Apply(s)
	walkedT := acc.Apply(t)

	if walkedS.Equal(walkedT) {
		return acc, true
	}

	if v, ok := walkedS.(Var); ok {
		if occurs(v.Name, walkedT) {
			return nil, false
		}
		return acc.Extend(v.Name, walkedT), true
	}

	if v, ok := walkedT.(Var); ok {
		if occurs(v.Name, walkedS) {
			return nil, false
		}
		return acc.Extend(v.Name, walkedS), true
	}

	fs, okS := walkedS.(Fun)
	ft, okT := walkedT.(Fun)
	if okS && okT && fs.Name == ft.Name && len(fs.Args) == len(ft.Args) {
		current := acc
		for i := range fs.Args {
			var ok bool
			current, ok = Unify(fs.Args[i], ft.Args[i], current)
			if !ok {
				return nil, false
			}
		}
		return current, true
	}

	return nil, false
}

// occurs reports whether a variable named name occurs anywhere in t
// (the occurs check: unify(x, f(x)) must fail).
func occurs(name string, t Term) bool {
	switch n := t.(type) {
	case Var:
		return n.Name == name
	case Fun:
		for _, a := range n.Args {
			if occurs(name, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// UnifyLiterals is the resolution-time unification primitive: it
// unifies two literals of opposite polarity by unifying their
// predicate names (which must match) and arguments pairwise. It
// returns the resulting substitution and true on success.
func UnifyLiterals(a, b Literal, acc *Substitution) (*Substitution, bool) {
	if a.Positive == b.Positive {
		return nil, false
	}
	return UnifyAtoms(a.Atom, b.Atom, acc)
}

// UnifyAtoms unifies two atoms of the same predicate name and arity,
// threading acc across their arguments pairwise.
func UnifyAtoms(a, b Pred, acc *Substitution) (*Substitution, bool) {
	if a.Name != b.Name || len(a.Args) != len(b.Args) {
		return nil, false
	}
	if acc == nil {
		acc = NewSubstitution()
	}
	current := acc
	for i := range a.Args {
		var ok bool
		current, ok = Unify(a.Args[i], b.Args[i], current)
		if !ok {
			return nil, false
		}
	}
	return current, true
}
