package logic

import "testing"

func TestSubstitutionApply(t *testing.T) {
	x, y := Var{Name: "x"}, Var{Name: "y"}
	s := NewSubstitution().Extend("x", Const("a")).Extend("y", Fun{Name: "f", Args: []Term{x}})

	got := s.Apply(Fun{Name: "g", Args: []Term{x, y}})
	want := Fun{Name: "g", Args: []Term{Const("a"), Fun{Name: "f", Args: []Term{Const("a")}}}}
	if !got.Equal(want) {
		t.Errorf("Apply = %s, want %s", got, want)
	}
}

func TestExtendKeepsIdempotentForm(t *testing.T) {
	x, y := Var{Name: "x"}, Var{Name: "y"}
	// y -> f(x), then x -> a: the binding for y must be re-substituted
	// so y now maps straight to f(a), not f(x).
	s := NewSubstitution().Extend("y", Fun{Name: "f", Args: []Term{x}}).Extend("x", Const("a"))

	bound, ok := s.Lookup("y")
	if !ok {
		t.Fatal("y should still be bound")
	}
	want := Fun{Name: "f", Args: []Term{Const("a")}}
	if !bound.Equal(want) {
		t.Errorf("Lookup(y) = %s, want %s", bound, want)
	}
	// Apply in a single pass must agree.
	if got := s.Apply(y); !got.Equal(want) {
		t.Errorf("Apply(y) = %s, want %s", got, want)
	}
}

func TestApplyFormulaAvoidsCapture(t *testing.T) {
	x, y := Var{Name: "x"}, Var{Name: "y"}
	// sigma: x -> y. Applied to (exists y. P(x, y)), the bound y must be
	// renamed before substitution, or the free y in the range would be
	// captured.
	s := NewSubstitution().Extend("x", y)
	body := Exists{Bound: y, Body: Pred{Name: "P", Args: []Term{x, y}}}
	namer := &Namer{}

	got := s.ApplyFormula(body, namer).(Exists)
	if got.Bound.Name == "y" {
		t.Fatal("the bound variable should have been renamed to avoid capture")
	}

	pred := got.Body.(Pred)
	if !pred.Args[0].Equal(y) {
		t.Errorf("first argument should become y, got %s", pred.Args[0])
	}
	if pred.Args[1].Equal(y) {
		t.Error("second argument should be the freshly renamed bound variable, not free y")
	}
}

func TestApplyFormulaSkipsVariableShadowedByBinder(t *testing.T) {
	x := Var{Name: "x"}
	s := NewSubstitution().Extend("x", Const("a"))
	// forall x. P(x): x is locally bound here, so sigma's binding for x
	// must not apply inside the body.
	body := ForAll{Bound: x, Body: Pred{Name: "P", Args: []Term{x}}}
	namer := &Namer{}

	got := s.ApplyFormula(body, namer).(ForAll)
	pred := got.Body.(Pred)
	if !pred.Args[0].Equal(x) {
		t.Errorf("shadowed x should be left alone, got %s", pred.Args[0])
	}
}

func TestCompose(t *testing.T) {
	x, y := Var{Name: "x"}, Var{Name: "y"}
	s2 := NewSubstitution().Extend("x", y)
	s1 := NewSubstitution().Extend("y", Const("a"))

	composed := Compose(s1, s2)
	got := composed.Apply(x)
	want := Const("a")
	if !got.Equal(want) {
		t.Errorf("Compose(s1, s2) applied to x = %s, want %s", got, want)
	}
}
