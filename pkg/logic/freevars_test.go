package logic

import "testing"

func TestFreeVarsTerm(t *testing.T) {
	term := Fun{Name: "f", Args: []Term{Var{Name: "x"}, Const("a"), Var{Name: "y"}}}
	got := FreeVarsTerm(term)
	if got.Size() != 2 || !got.Contains("x") || !got.Contains("y") {
		t.Errorf("FreeVarsTerm(%s) = %v, want {x, y}", term, got.Slice())
	}
}

func TestFreeVarsQuantifierRemovesBoundVariable(t *testing.T) {
	x, y := Var{Name: "x"}, Var{Name: "y"}
	f := ForAll{Bound: x, Body: Pred{Name: "P", Args: []Term{x, y}}}
	got := FreeVars(f)
	if got.Contains("x") {
		t.Error("the bound variable x should not be free in ∀x. P(x, y)")
	}
	if !got.Contains("y") {
		t.Error("y should remain free in ∀x. P(x, y)")
	}
}

func TestFreeVarsConnectivesUnion(t *testing.T) {
	x, y, z := Var{Name: "x"}, Var{Name: "y"}, Var{Name: "z"}
	f := And{
		A: Pred{Name: "P", Args: []Term{x}},
		B: Or{A: Pred{Name: "Q", Args: []Term{y}}, B: Pred{Name: "R", Args: []Term{z}}},
	}
	got := FreeVars(f)
	for _, name := range []string{"x", "y", "z"} {
		if !got.Contains(name) {
			t.Errorf("expected %q to be free in %s", name, f)
		}
	}
}
