package logic

import "strings"

// Literal is a signed atom: a predicate together with its polarity.
// Complement flips polarity.
type Literal struct {
	Positive bool
	Atom     Pred
}

// Neg is a convenience constructor for a negative literal.
func Neg(atom Pred) Literal { return Literal{Positive: false, Atom: atom} }

// Pos is a convenience constructor for a positive literal.
func Pos(atom Pred) Literal { return Literal{Positive: true, Atom: atom} }

// Negate returns the complementary literal (same atom, opposite
// polarity).
func (l Literal) Negate() Literal {
	return Literal{Positive: !l.Positive, Atom: l.Atom}
}

// Equal reports structural equality, including polarity.
func (l Literal) Equal(other Literal) bool {
	return l.Positive == other.Positive && l.Atom.Equal(other.Atom)
}

func (l Literal) String() string {
	if l.Positive {
		return l.Atom.String()
	}
	return "¬" + l.Atom.String()
}

// Rule names the inference that produced a Clause.
type Rule int

const (
	// RuleInput marks a clause that came directly from clausifying an
	// input formula (an axiom, a lemma, or the negated goal).
	RuleInput Rule = iota
	// RuleResolution marks a clause produced by binary resolution.
	RuleResolution
	// RuleFactor marks a clause produced by factoring.
	RuleFactor
)

func (r Rule) String() string {
	switch r {
	case RuleInput:
		return "Input"
	case RuleResolution:
		return "Resolution"
	case RuleFactor:
		return "Factor"
	default:
		return "Unknown"
	}
}

// ClauseID is a stable per-session identifier for a clause, assigned
// in creation order so it can be used to name clauses in a recorded
// proof and to break selection ties by FIFO order.
type ClauseID int

// Provenance records how a clause was derived, sufficient to replay
// the derivation.
type Provenance struct {
	Rule Rule

	// Source is set only for RuleInput: the formula the clause was
	// extracted from.
	Source Formula

	// Parents are set only for RuleResolution (two parents) and
	// RuleFactor (one parent).
	Parents []ClauseID

	// Subst is the unifying substitution used to derive the clause
	// from its parents.
	Subst *Substitution
}

// Clause is a disjunction of literals with clause-local variables,
// implicitly universally quantified, carrying provenance for proof
// reconstruction. The empty clause (no literals) is ⊥, signalling a
// refutation.
type Clause struct {
	ID         ClauseID
	Literals   []Literal
	Provenance Provenance
}

// IsEmpty reports whether c is the empty clause ⊥.
func (c Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// String renders the clause as a disjunction, or "⊥" when empty.
func (c Clause) String() string {
	if c.IsEmpty() {
		return "⊥"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

// IsTautology reports whether the clause contains both a literal and
// its complement, which makes it trivially true and safe to discard
// during normalisation or saturation.
func (c Clause) IsTautology() bool {
	for i := range c.Literals {
		for j := range c.Literals {
			if i == j {
				continue
			}
			if c.Literals[i].Positive != c.Literals[j].Positive &&
				c.Literals[i].Atom.Equal(c.Literals[j].Atom) {
				return true
			}
		}
	}
	return false
}

// ApplySubst returns a copy of c with s applied to every literal,
// preserving provenance.
func (c Clause) ApplySubst(s *Substitution) Clause {
	lits := make([]Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = s.ApplyLiteral(l)
	}
	return Clause{ID: c.ID, Literals: lits, Provenance: c.Provenance}
}

// FreeVars returns the set of variable names occurring in c.
func (c Clause) FreeVars() []string {
	seen := make(map[string]bool)
	var names []string
	for _, l := range c.Literals {
		for _, a := range l.Atom.Args {
			for _, n := range FreeVarsTerm(a).Slice() {
				if !seen[n] {
					seen[n] = true
					names = append(names, n)
				}
			}
		}
	}
	return names
}
