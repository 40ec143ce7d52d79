package logic

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// canonicalTerm renders a term into a form suitable for hashing: all
// variable names are replaced by their structural position so that
// two alpha-variants serialise identically, matching the clause-local,
// implicitly universally quantified semantics of a clause's variables.
func canonicalTerm(t Term, varIndex map[string]int) string {
	switch n := t.(type) {
	case Var:
		idx, ok := varIndex[n.Name]
		if !ok {
			idx = len(varIndex)
			varIndex[n.Name] = idx
		}
		return "$" + strconv.Itoa(idx)
	case Fun:
		var b strings.Builder
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(canonicalTerm(a, varIndex))
		}
		b.WriteByte(')')
		return b.String()
	default:
		return ""
	}
}

func canonicalLiteral(l Literal, varIndex map[string]int) string {
	var b strings.Builder
	if !l.Positive {
		b.WriteByte('-')
	}
	b.WriteString(l.Atom.Name)
	b.WriteByte('(')
	for i, a := range l.Atom.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(canonicalTerm(a, varIndex))
	}
	b.WriteByte(')')
	return b.String()
}

// CanonicalString renders a clause into a variable-position-normalised
// string: literals are sorted so that clause order (a clause is an
// unordered multiset of literals) does not affect the result, and
// variables are renamed to their first-occurrence index in that
// sorted order.
//
// This is the basis for the structural hash that lets a clause key a
// set, and for the duplicate-clause index the saturation loop uses.
func (c Clause) CanonicalString() string {
	varIndex := make(map[string]int)
	rendered := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		// First pass with a scratch index just to get a sort key
		// independent of discovery order within a single literal.
		rendered[i] = canonicalLiteral(l, map[string]int{})
	}
	sort.Strings(rendered)

	// Second pass over literals in the now-fixed sorted order,
	// assigning variable indices by first occurrence so that
	// alpha-variants hash identically.
	final := make([]string, len(c.Literals))
	order := sortedLiteralOrder(c.Literals)
	for i, idx := range order {
		final[i] = canonicalLiteral(c.Literals[idx], varIndex)
	}
	return strings.Join(final, "|")
}

// sortedLiteralOrder returns the permutation of literal indices that
// sorts them by their variable-position-independent string form.
func sortedLiteralOrder(lits []Literal) []int {
	type keyed struct {
		idx int
		key string
	}
	keys := make([]keyed, len(lits))
	for i, l := range lits {
		keys[i] = keyed{idx: i, key: canonicalLiteral(l, map[string]int{})}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].key < keys[j].key })
	order := make([]int, len(keys))
	for i, k := range keys {
		order[i] = k.idx
	}
	return order
}

// Hash returns a canonical structural hash of the clause, computed
// with xxhash over the canonical string form. Two clauses that are
// equal up to literal order and variable renaming hash identically.
func (c Clause) Hash() uint64 {
	return xxhash.Sum64String(c.CanonicalString())
}
