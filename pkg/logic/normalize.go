package logic

// Clausify runs the full CNF normalisation pipeline over each input
// formula (an axiom, a lemma, or the negated goal) and returns the
// union of their clause sets. Each stage preserves satisfiability,
// not logical equivalence, since Skolemization does not.
//
// Pipeline, per formula:
//  1. Eliminate implication.
//  2. Push negation inward (NNF), including double-negation
//     elimination and the quantifier-negation duals.
//  3. Standardise variables apart so every quantifier (and every free
//     variable) in the formula gets a name unique across the whole
//     session.
//  4. Skolemize: replace each existentially bound variable with a
//     fresh function of the universally bound variables enclosing it.
//  5. Drop the (now purely universal) quantifiers.
//  6. Distribute ∨ over ∧ to reach CNF.
//  7. Extract clauses, discard tautologies, and standardise apart a
//     second time so no two clauses share a variable.
func Clausify(formulas []Formula, namer *Namer) []Clause {
	var all []Clause
	for _, f := range formulas {
		all = append(all, clausifyOne(f, namer)...)
	}
	return all
}

func clausifyOne(orig Formula, namer *Namer) []Clause {
	f := eliminateImplication(orig)
	f = nnf(f, false)
	f = standardizeApart(f, namer)
	f = skolemize(f, namer, nil)
	f = dropUniversals(f)
	f = distributeCNF(f)

	var clauses []Clause
	for _, conjunct := range flattenAnd(f) {
		lits := flattenOr(conjunct)
		c := Clause{Literals: lits, Provenance: Provenance{Rule: RuleInput, Source: orig}}
		if c.IsTautology() {
			continue
		}
		clauses = append(clauses, standardizeClauseApart(c, namer))
	}
	return clauses
}

// eliminateImplication rewrites A → B as ¬A ∨ B throughout f.
func eliminateImplication(f Formula) Formula {
	switch n := f.(type) {
	case Pred:
		return n
	case Not:
		return Not{Formula: eliminateImplication(n.Formula)}
	case And:
		return And{A: eliminateImplication(n.A), B: eliminateImplication(n.B)}
	case Or:
		return Or{A: eliminateImplication(n.A), B: eliminateImplication(n.B)}
	case Implies:
		return Or{A: Not{Formula: eliminateImplication(n.A)}, B: eliminateImplication(n.B)}
	case ForAll:
		return ForAll{Bound: n.Bound, Body: eliminateImplication(n.Body)}
	case Exists:
		return Exists{Bound: n.Bound, Body: eliminateImplication(n.Body)}
	default:
		return f
	}
}

// nnf pushes negation inward via De Morgan's laws and the quantifier
// duals ¬∀x.A ⇒ ∃x.¬A, ¬∃x.A ⇒ ∀x.¬A. neg tracks
// whether an odd number of enclosing negations still need to be
// applied; recursing through Not by flipping neg also implements
// double-negation elimination, since ¬¬A never gets wrapped in an
// explicit Not node.
func nnf(f Formula, neg bool) Formula {
	switch n := f.(type) {
	case Pred:
		if neg {
			return Not{Formula: n}
		}
		return n
	case Not:
		return nnf(n.Formula, !neg)
	case And:
		if neg {
			return Or{A: nnf(n.A, true), B: nnf(n.B, true)}
		}
		return And{A: nnf(n.A, false), B: nnf(n.B, false)}
	case Or:
		if neg {
			return And{A: nnf(n.A, true), B: nnf(n.B, true)}
		}
		return Or{A: nnf(n.A, false), B: nnf(n.B, false)}
	case ForAll:
		if neg {
			return Exists{Bound: n.Bound, Body: nnf(n.Body, true)}
		}
		return ForAll{Bound: n.Bound, Body: nnf(n.Body, false)}
	case Exists:
		if neg {
			return ForAll{Bound: n.Bound, Body: nnf(n.Body, true)}
		}
		return Exists{Bound: n.Bound, Body: nnf(n.Body, false)}
	default:
		return f
	}
}

// standardizeApart renames every variable occurrence in f — bound or
// free — to a name unique to this session, using namer for freshness.
// Free variables get one fresh name each,
// consistent across the whole formula; each quantifier introduces its
// own fresh name that shadows correctly within its body.
func standardizeApart(f Formula, namer *Namer) Formula {
	scope := make(map[string]Var, FreeVars(f).Size())
	for _, name := range FreeVars(f).Slice() {
		scope[name] = namer.Fresh(name)
	}
	return standardizeApartRec(f, namer, scope)
}

func standardizeApartRec(f Formula, namer *Namer, scope map[string]Var) Formula {
	switch n := f.(type) {
	case Pred:
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = renameTerm(a, scope)
		}
		return Pred{Name: n.Name, Args: args}
	case Not:
		return Not{Formula: standardizeApartRec(n.Formula, namer, scope)}
	case And:
		return And{A: standardizeApartRec(n.A, namer, scope), B: standardizeApartRec(n.B, namer, scope)}
	case Or:
		return Or{A: standardizeApartRec(n.A, namer, scope), B: standardizeApartRec(n.B, namer, scope)}
	case Implies:
		return Implies{A: standardizeApartRec(n.A, namer, scope), B: standardizeApartRec(n.B, namer, scope)}
	case ForAll:
		fresh := namer.Fresh(n.Bound.Name)
		return ForAll{Bound: fresh, Body: standardizeApartRec(n.Body, namer, withVar(scope, n.Bound.Name, fresh))}
	case Exists:
		fresh := namer.Fresh(n.Bound.Name)
		return Exists{Bound: fresh, Body: standardizeApartRec(n.Body, namer, withVar(scope, n.Bound.Name, fresh))}
	default:
		return f
	}
}

func renameTerm(t Term, scope map[string]Var) Term {
	switch n := t.(type) {
	case Var:
		if fresh, ok := scope[n.Name]; ok {
			return fresh
		}
		return n
	case Fun:
		if len(n.Args) == 0 {
			return n
		}
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = renameTerm(a, scope)
		}
		return Fun{Name: n.Name, Args: args}
	default:
		return t
	}
}

func withVar(scope map[string]Var, name string, fresh Var) map[string]Var {
	next := make(map[string]Var, len(scope)+1)
	for k, v := range scope {
		next[k] = v
	}
	next[name] = fresh
	return next
}

// skolemize replaces each existentially bound variable with a fresh
// Skolem function of the enclosing universally bound variables.
// universals accumulates the ForAll variables in scope
// on the path from the root; ForAll nodes are kept (they are dropped
// in a later, separate step) and Exists nodes are eliminated.
func skolemize(f Formula, namer *Namer, universals []Var) Formula {
	switch n := f.(type) {
	case Pred:
		return n
	case Not:
		return Not{Formula: skolemize(n.Formula, namer, universals)}
	case And:
		return And{A: skolemize(n.A, namer, universals), B: skolemize(n.B, namer, universals)}
	case Or:
		return Or{A: skolemize(n.A, namer, universals), B: skolemize(n.B, namer, universals)}
	case ForAll:
		return ForAll{Bound: n.Bound, Body: skolemize(n.Body, namer, withVarAppended(universals, n.Bound))}
	case Exists:
		args := make([]Term, len(universals))
		for i, u := range universals {
			args[i] = u
		}
		skolemFun := Fun{Name: namer.SkolemFunc(), Args: args}
		replaced := NewSubstitution().Extend(n.Bound.Name, skolemFun).ApplyFormula(n.Body, namer)
		return skolemize(replaced, namer, universals)
	default:
		return f
	}
}

func withVarAppended(list []Var, v Var) []Var {
	out := make([]Var, len(list)+1)
	copy(out, list)
	out[len(list)] = v
	return out
}

// dropUniversals strips every ForAll wrapper from f: after NNF and
// Skolemization, every remaining quantifier is
// universal, and standardisation apart has already made each bound
// variable's name unique, so dropping a ForAll wherever it occurs —
// not only at an outermost prefix — leaves its variable correctly
// free (and so implicitly universal at the clause level) without any
// risk of capture.
func dropUniversals(f Formula) Formula {
	switch n := f.(type) {
	case Pred:
		return n
	case Not:
		return Not{Formula: dropUniversals(n.Formula)}
	case And:
		return And{A: dropUniversals(n.A), B: dropUniversals(n.B)}
	case Or:
		return Or{A: dropUniversals(n.A), B: dropUniversals(n.B)}
	case ForAll:
		return dropUniversals(n.Body)
	default:
		return f
	}
}

// distributeCNF distributes ∨ over ∧ over a quantifier-free matrix of
// Pred, Not(Pred), And and Or nodes.
func distributeCNF(f Formula) Formula {
	switch n := f.(type) {
	case And:
		return And{A: distributeCNF(n.A), B: distributeCNF(n.B)}
	case Or:
		return distributeOr(distributeCNF(n.A), distributeCNF(n.B))
	default:
		return f
	}
}

func distributeOr(a, b Formula) Formula {
	if andA, ok := a.(And); ok {
		return And{A: distributeOr(andA.A, b), B: distributeOr(andA.B, b)}
	}
	if andB, ok := b.(And); ok {
		return And{A: distributeOr(a, andB.A), B: distributeOr(a, andB.B)}
	}
	return Or{A: a, B: b}
}

// flattenAnd returns the top-level conjuncts of a CNF formula.
func flattenAnd(f Formula) []Formula {
	if n, ok := f.(And); ok {
		return append(flattenAnd(n.A), flattenAnd(n.B)...)
	}
	return []Formula{f}
}

// flattenOr returns the literals of a single CNF clause.
func flattenOr(f Formula) []Literal {
	if n, ok := f.(Or); ok {
		return append(flattenOr(n.A), flattenOr(n.B)...)
	}
	return []Literal{formulaToLiteral(f)}
}

func formulaToLiteral(f Formula) Literal {
	if n, ok := f.(Not); ok {
		return Neg(n.Formula.(Pred))
	}
	return Pos(f.(Pred))
}

// standardizeClauseApart renames every variable in c to a name fresh
// to this session, applying standardisation apart a second time at
// clause granularity: two top-level conjuncts of the same input
// formula can still share a standardised-apart variable (e.g. `forall
// x. (P(x) and Q(x))` yields two clauses both mentioning the same x),
// so each extracted clause gets its own final renaming.
func standardizeClauseApart(c Clause, namer *Namer) Clause {
	names := c.FreeVars()
	if len(names) == 0 {
		return c
	}
	rename := NewSubstitution()
	for _, name := range names {
		rename = rename.Extend(name, namer.Fresh(name))
	}
	return c.ApplySubst(rename)
}
