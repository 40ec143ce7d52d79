// Package logic implements a first-order logic theorem prover: an
// immutable term/formula model, capture-avoiding substitution,
// Robinson unification, CNF normalisation (negation normal form,
// Skolemization, clause extraction), and a given-clause saturation loop that
// attempts to refute the negation of a goal against a set of axioms
// and lemmas.
//
// The package has no notion of surface syntax or an interactive
// session; see internal/syntax and internal/repl for those
// collaborators. The single contractual entry point is ProveFormula.
package logic

import (
	"fmt"
	"strings"
)

// Term is any first-order term: a variable or a function application
// (a zero-arity function is a constant). Terms are immutable values;
// equality is structural.
type Term interface {
	fmt.Stringer

	// Equal reports whether two terms are structurally identical.
	Equal(other Term) bool

	// isTerm restricts Term to the types defined in this package.
	isTerm()
}

// Var is a logical variable, identified by name. Two variables are
// the same variable iff their names are equal; clause-local variables
// are kept distinct by standardising names apart (see Clausify).
type Var struct {
	Name string
}

func (v Var) String() string { return v.Name }

func (v Var) Equal(other Term) bool {
	o, ok := other.(Var)
	return ok && v.Name == o.Name
}

func (Var) isTerm() {}

// Fun is a function symbol applied to an ordered argument list. An
// empty Args slice denotes a constant. Skolem functions use the
// reserved "sk_" name prefix (see IsSkolem) so they never collide
// with a user symbol produced by the surface parser, which only
// accepts alphanumeric identifiers.
type Fun struct {
	Name string
	Args []Term
}

func (f Fun) String() string {
	if len(f.Args) == 0 {
		return f.Name
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (f Fun) Equal(other Term) bool {
	o, ok := other.(Fun)
	if !ok || f.Name != o.Name || len(f.Args) != len(o.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (Fun) isTerm() {}

// skolemPrefix names the reserved class of function symbols
// introduced by Skolemization. The surface grammar only admits
// alphanumeric identifiers, so this prefix can never be produced by
// user input.
const skolemPrefix = "sk_"

// IsSkolem reports whether f was introduced by Skolemization rather
// than appearing in the original input.
func (f Fun) IsSkolem() bool {
	return strings.HasPrefix(f.Name, skolemPrefix)
}

// Const creates a zero-arity Fun, i.e. a constant symbol.
func Const(name string) Fun {
	return Fun{Name: name}
}
