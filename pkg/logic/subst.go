package logic

// Substitution is a finite mapping from variable names to terms. The
// implementation maintains an idempotent-form invariant: no variable
// in its domain also appears in the range of any binding, so that
// Apply is a single textual replacement pass rather than a
// fixed-point walk. This mirrors the teacher's substitution-and-walk
// design (pkg/minikanren's Substitution type) but keeps the map
// idempotent eagerly, on every Extend, instead of resolving chains
// lazily on lookup.
type Substitution struct {
	bindings map[string]Term
}

// NewSubstitution returns the empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[string]Term)}
}

// Lookup returns the term bound to name, or (nil, false) if name is
// unbound.
func (s *Substitution) Lookup(name string) (Term, bool) {
	t, ok := s.bindings[name]
	return t, ok
}

// Domain reports the set of bound variable names.
func (s *Substitution) Domain() []string {
	names := make([]string, 0, len(s.bindings))
	for k := range s.bindings {
		names = append(names, k)
	}
	return names
}

// Size returns the number of bindings.
func (s *Substitution) Size() int { return len(s.bindings) }

// Extend returns a new substitution with name bound to term, keeping
// the idempotent-form invariant: term is first substituted into every
// existing binding's range (eliminating any occurrence of name there,
// since name is about to enter the domain), then name -> term is
// added. Extend does not itself occurs-check; callers (Unify) must
// occurs-check before calling it.
func (s *Substitution) Extend(name string, term Term) *Substitution {
	next := make(map[string]Term, len(s.bindings)+1)
	single := &Substitution{bindings: map[string]Term{name: term}}
	for k, v := range s.bindings {
		next[k] = single.Apply(v)
	}
	next[name] = term
	return &Substitution{bindings: next}
}

// Apply performs capture-free recursive replacement of bound
// variables in term: Var(x) becomes σ(x) if x is bound, otherwise it
// is returned unchanged; Fun recurses over its arguments.
func (s *Substitution) Apply(term Term) Term {
	switch t := term.(type) {
	case Var:
		if bound, ok := s.bindings[t.Name]; ok {
			return bound
		}
		return t
	case Fun:
		if len(t.Args) == 0 {
			return t
		}
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = s.Apply(a)
		}
		return Fun{Name: t.Name, Args: args}
	default:
		return term
	}
}

// ApplyLiteral applies s to a literal's atom.
func (s *Substitution) ApplyLiteral(l Literal) Literal {
	return Literal{Positive: l.Positive, Atom: s.ApplyPred(l.Atom)}
}

// ApplyPred applies s to a predicate's arguments.
func (s *Substitution) ApplyPred(p Pred) Pred {
	if len(p.Args) == 0 {
		return p
	}
	args := make([]Term, len(p.Args))
	for i, a := range p.Args {
		args[i] = s.Apply(a)
	}
	return Pred{Name: p.Name, Args: args}
}

// ApplyFormula applies s to a formula, recursing through connectives
// and renaming a quantifier's bound variable first if the
// substitution's range would otherwise capture it.
func (s *Substitution) ApplyFormula(f Formula, namer *Namer) Formula {
	switch n := f.(type) {
	case Pred:
		return s.ApplyPred(n)
	case Not:
		return Not{Formula: s.ApplyFormula(n.Formula, namer)}
	case And:
		return And{A: s.ApplyFormula(n.A, namer), B: s.ApplyFormula(n.B, namer)}
	case Or:
		return Or{A: s.ApplyFormula(n.A, namer), B: s.ApplyFormula(n.B, namer)}
	case Implies:
		return Implies{A: s.ApplyFormula(n.A, namer), B: s.ApplyFormula(n.B, namer)}
	case ForAll:
		bound, body, inner := s.applyUnderBinder(n.Bound, n.Body, namer)
		return ForAll{Bound: bound, Body: inner.ApplyFormula(body, namer)}
	case Exists:
		bound, body, inner := s.applyUnderBinder(n.Bound, n.Body, namer)
		return Exists{Bound: bound, Body: inner.ApplyFormula(body, namer)}
	default:
		return f
	}
}

// applyUnderBinder prepares to recurse under a quantifier binding v:
// if v is in the substitution's domain, its binding is irrelevant
// inside the body (v is locally bound) and is removed for the
// recursive call; if any range term mentions v freely, v is renamed
// to a fresh variable throughout body first to avoid capture.
func (s *Substitution) applyUnderBinder(v Var, body Formula, namer *Namer) (Var, Formula, *Substitution) {
	capturing := false
	for _, t := range s.bindings {
		if FreeVarsTerm(t).Contains(v.Name) {
			capturing = true
			break
		}
	}

	inner := s
	if _, bound := s.bindings[v.Name]; bound {
		next := make(map[string]Term, len(s.bindings))
		for k, val := range s.bindings {
			if k != v.Name {
				next[k] = val
			}
		}
		inner = &Substitution{bindings: next}
	}

	if !capturing {
		return v, body, inner
	}

	fresh := namer.Fresh(v.Name)
	renamed := renameVarInFormula(body, v.Name, fresh)
	return fresh, renamed, inner
}

// renameVarInFormula substitutes every free occurrence of a variable
// named old with replacement, without consulting a Substitution
// (used purely for capture-avoiding alpha-renaming, so it must not
// stop at quantifiers that happen to share the replacement's name).
func renameVarInFormula(f Formula, old string, replacement Var) Formula {
	rename := NewSubstitution().Extend(old, replacement)
	return applyRename(f, rename, old)
}

func applyRename(f Formula, rename *Substitution, old string) Formula {
	switch n := f.(type) {
	case Pred:
		return rename.ApplyPred(n)
	case Not:
		return Not{Formula: applyRename(n.Formula, rename, old)}
	case And:
		return And{A: applyRename(n.A, rename, old), B: applyRename(n.B, rename, old)}
	case Or:
		return Or{A: applyRename(n.A, rename, old), B: applyRename(n.B, rename, old)}
	case Implies:
		return Implies{A: applyRename(n.A, rename, old), B: applyRename(n.B, rename, old)}
	case ForAll:
		if n.Bound.Name == old {
			return n
		}
		return ForAll{Bound: n.Bound, Body: applyRename(n.Body, rename, old)}
	case Exists:
		if n.Bound.Name == old {
			return n
		}
		return Exists{Bound: n.Bound, Body: applyRename(n.Body, rename, old)}
	default:
		return f
	}
}

// Compose returns σ such that Apply(σ, t) == Apply(s1, Apply(s2, t))
// for all t: s1 is applied to every range term of s2, then s1's own
// bindings are added where s2 did not already supply one. A variable
// bound in both maps keeps s2's binding (with s1 applied to it): s2
// has already replaced that variable before s1 would see it.
func Compose(s1, s2 *Substitution) *Substitution {
	next := make(map[string]Term, len(s1.bindings)+len(s2.bindings))
	for k, v := range s2.bindings {
		next[k] = s1.Apply(v)
	}
	for k, v := range s1.bindings {
		if _, exists := next[k]; !exists {
			next[k] = v
		}
	}
	return &Substitution{bindings: next}
}
