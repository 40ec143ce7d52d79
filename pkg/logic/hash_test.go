package logic

import "testing"

func TestCanonicalStringIgnoresLiteralOrder(t *testing.T) {
	x, y := Var{Name: "x"}, Var{Name: "y"}
	c1 := Clause{Literals: []Literal{
		Pos(Pred{Name: "P", Args: []Term{x}}),
		Neg(Pred{Name: "Q", Args: []Term{y}}),
	}}
	c2 := Clause{Literals: []Literal{
		Neg(Pred{Name: "Q", Args: []Term{y}}),
		Pos(Pred{Name: "P", Args: []Term{x}}),
	}}

	if c1.CanonicalString() != c2.CanonicalString() {
		t.Errorf("reordering literals should not change the canonical string: %q vs %q", c1.CanonicalString(), c2.CanonicalString())
	}
	if c1.Hash() != c2.Hash() {
		t.Error("reordering literals should not change the hash")
	}
}

func TestCanonicalStringIgnoresVariableNaming(t *testing.T) {
	c1 := Clause{Literals: []Literal{Pos(Pred{Name: "P", Args: []Term{Var{Name: "x"}}})}}
	c2 := Clause{Literals: []Literal{Pos(Pred{Name: "P", Args: []Term{Var{Name: "zzz"}}})}}

	if c1.CanonicalString() != c2.CanonicalString() {
		t.Errorf("alpha-variant clauses should share a canonical string: %q vs %q", c1.CanonicalString(), c2.CanonicalString())
	}
}

func TestCanonicalStringDistinguishesDifferentClauses(t *testing.T) {
	c1 := Clause{Literals: []Literal{Pos(Pred{Name: "P", Args: []Term{Var{Name: "x"}}})}}
	c2 := Clause{Literals: []Literal{Neg(Pred{Name: "P", Args: []Term{Var{Name: "x"}}})}}

	if c1.CanonicalString() == c2.CanonicalString() {
		t.Error("literals of opposite polarity must not share a canonical string")
	}
}
