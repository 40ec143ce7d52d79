package logic

import "testing"

func TestUnifyVariableWithConstant(t *testing.T) {
	x := Var{Name: "x"}
	s, ok := Unify(x, Const("a"), nil)
	if !ok {
		t.Fatal("unifying a variable with a constant should succeed")
	}
	if got, _ := s.Lookup("x"); !got.Equal(Const("a")) {
		t.Errorf("x should be bound to a, got %s", got)
	}
}

func TestUnifyFunctionArguments(t *testing.T) {
	x, y := Var{Name: "x"}, Var{Name: "y"}
	lhs := Fun{Name: "f", Args: []Term{x, Const("b")}}
	rhs := Fun{Name: "f", Args: []Term{Const("a"), y}}

	s, ok := Unify(lhs, rhs, nil)
	if !ok {
		t.Fatal("f(x, b) and f(a, y) should unify")
	}
	if got, _ := s.Lookup("x"); !got.Equal(Const("a")) {
		t.Errorf("x should be bound to a, got %s", got)
	}
	if got, _ := s.Lookup("y"); !got.Equal(Const("b")) {
		t.Errorf("y should be bound to b, got %s", got)
	}
}

func TestUnifyOccursCheckFails(t *testing.T) {
	x := Var{Name: "x"}
	_, ok := Unify(x, Fun{Name: "f", Args: []Term{x}}, nil)
	if ok {
		t.Error("unifying x with f(x) must fail the occurs check")
	}
}

func TestUnifyDifferentArityFails(t *testing.T) {
	_, ok := Unify(Fun{Name: "f", Args: []Term{Const("a")}}, Fun{Name: "f", Args: []Term{Const("a"), Const("b")}}, nil)
	if ok {
		t.Error("functions of different arity should not unify")
	}
}

func TestUnifyDifferentNameFails(t *testing.T) {
	_, ok := Unify(Const("a"), Const("b"), nil)
	if ok {
		t.Error("distinct constants should not unify")
	}
}

func TestUnifyThreadsAccumulator(t *testing.T) {
	x, y, z := Var{Name: "x"}, Var{Name: "y"}, Var{Name: "z"}
	acc, ok := Unify(x, y, nil)
	if !ok {
		t.Fatal("x and y should unify")
	}
	acc, ok = Unify(y, z, acc)
	if !ok {
		t.Fatal("y and z should unify, threading the earlier binding")
	}
	if got := acc.Apply(x); !got.Equal(z) {
		t.Errorf("chained unification should leave x resolving to z, got %s", got)
	}
}

func TestUnifyLiteralsRequiresOppositePolarity(t *testing.T) {
	p := Pos(Pred{Name: "P", Args: []Term{Const("a")}})
	q := Pos(Pred{Name: "P", Args: []Term{Const("a")}})
	if _, ok := UnifyLiterals(p, q, nil); ok {
		t.Error("two positive literals should never resolve against each other")
	}

	neg := Neg(Pred{Name: "P", Args: []Term{Var{Name: "x"}}})
	if _, ok := UnifyLiterals(p, neg, nil); !ok {
		t.Error("P(a) and ¬P(x) should unify")
	}
}
