package logic

import "fmt"

// Namer is a per-session fresh-name supplier for variables and
// Skolem functions. It is never global: the supply of fresh names is
// scoped to a proving session rather than shared process-wide, so
// that two sessions never advance each other's counter and a
// session's output is reproducible in isolation: two fresh Namers
// hand out the same sequence of names.
//
// The zero value is ready to use.
type Namer struct {
	counter int
}

// separator cannot appear in a surface identifier (the grammar only
// admits alphanumeric tokens), so every name minted here is
// guaranteed disjoint from anything the parser collaborator can
// produce.
const separator = "~"

// Fresh returns a new variable whose name is derived from base but
// guaranteed not to collide with any name seen so far in this
// session.
func (n *Namer) Fresh(base string) Var {
	n.counter++
	if base == "" {
		base = "_"
	}
	return Var{Name: fmt.Sprintf("%s%s%d", base, separator, n.counter)}
}

// SkolemFunc returns a fresh function symbol in the reserved sk_
// naming class.
func (n *Namer) SkolemFunc() string {
	n.counter++
	return fmt.Sprintf("%s%d", skolemPrefix, n.counter)
}
