package logic

import (
	"context"
	"testing"
)

func TestResolventsBasic(t *testing.T) {
	x := Var{Name: "x"}
	namer := &Namer{}
	// P(x) or Q(x), and not P(a): resolving on P should give Q(a).
	c1 := Clause{ID: 1, Literals: []Literal{
		Pos(Pred{Name: "P", Args: []Term{x}}),
		Pos(Pred{Name: "Q", Args: []Term{x}}),
	}}
	c2 := Clause{ID: 2, Literals: []Literal{Neg(Pred{Name: "P", Args: []Term{Const("a")}})}}

	got := resolvents(c1, c2, namer)
	if len(got) != 1 {
		t.Fatalf("expected exactly one resolvent, got %d", len(got))
	}
	if len(got[0].Literals) != 1 || got[0].Literals[0].Atom.Name != "Q" {
		t.Errorf("resolvent should be Q(a), got %s", got[0])
	}
}

func TestResolventsNoComplementaryPair(t *testing.T) {
	c1 := Clause{ID: 1, Literals: []Literal{Pos(Pred{Name: "P"})}}
	c2 := Clause{ID: 2, Literals: []Literal{Pos(Pred{Name: "Q"})}}
	if got := resolvents(c1, c2, &Namer{}); len(got) != 0 {
		t.Errorf("clauses with no complementary literals should produce no resolvents, got %d", len(got))
	}
}

func TestResolventsDropsTautology(t *testing.T) {
	x := Var{Name: "x"}
	namer := &Namer{}
	c1 := Clause{ID: 1, Literals: []Literal{
		Pos(Pred{Name: "P", Args: []Term{x}}),
		Pos(Pred{Name: "Q"}),
	}}
	c2 := Clause{ID: 2, Literals: []Literal{
		Neg(Pred{Name: "P", Args: []Term{Const("a")}}),
		Neg(Pred{Name: "Q"}),
	}}
	// Resolving on P leaves Q or ¬Q: a tautology that must be dropped.
	for _, r := range resolvents(c1, c2, namer) {
		if r.IsTautology() {
			t.Errorf("resolvents must never be tautologies, got %s", r)
		}
	}
}

func TestFactorsMergesUnifiableLiterals(t *testing.T) {
	x := Var{Name: "x"}
	c := Clause{ID: 1, Literals: []Literal{
		Pos(Pred{Name: "P", Args: []Term{x}}),
		Pos(Pred{Name: "P", Args: []Term{Const("a")}}),
		Pos(Pred{Name: "Q"}),
	}}
	got := factors(c)
	if len(got) == 0 {
		t.Fatal("P(x) and P(a) should be factorable")
	}
	if len(got[0].Literals) != 2 {
		t.Errorf("the factor should merge the two P literals into one, got %s", got[0])
	}
}

func TestSubsumesMoreGeneralClauseSubsumesInstance(t *testing.T) {
	x := Var{Name: "x"}
	general := Clause{Literals: []Literal{Pos(Pred{Name: "P", Args: []Term{x}})}}
	specific := Clause{Literals: []Literal{
		Pos(Pred{Name: "P", Args: []Term{Const("a")}}),
		Pos(Pred{Name: "Q"}),
	}}
	if !subsumes(general, specific) {
		t.Error("P(x) should subsume P(a) ∨ Q")
	}
	if subsumes(specific, general) {
		t.Error("P(a) ∨ Q should not subsume the more general P(x)")
	}
}

func TestSubsumesRejectsDifferentPredicate(t *testing.T) {
	c1 := Clause{Literals: []Literal{Pos(Pred{Name: "P"})}}
	c2 := Clause{Literals: []Literal{Pos(Pred{Name: "Q"})}}
	if subsumes(c1, c2) {
		t.Error("unrelated predicates must not subsume each other")
	}
}

func TestSessionInsertDiscardsExactDuplicate(t *testing.T) {
	s := NewSession(&Namer{}, DefaultSaturationConfig())
	c := Clause{Literals: []Literal{Pos(Pred{Name: "P", Args: []Term{Const("a")}})}}
	s.Seed([]Clause{c, c})
	if len(s.clauses) != 1 {
		t.Errorf("inserting the same clause twice should keep only one copy, got %d", len(s.clauses))
	}
}

func TestSessionRunFindsRefutation(t *testing.T) {
	// P(a), and not P(a): two unit clauses resolving directly to the
	// empty clause.
	namer := &Namer{}
	s := NewSession(namer, DefaultSaturationConfig())
	s.Seed([]Clause{
		{Literals: []Literal{Pos(Pred{Name: "P", Args: []Term{Const("a")}})}},
		{Literals: []Literal{Neg(Pred{Name: "P", Args: []Term{Const("a")}})}},
	})
	result := s.Run(context.Background())
	if !result.Proved {
		t.Fatal("P(a) and ¬P(a) should saturate to the empty clause")
	}
	if !result.Refutation.IsEmpty() {
		t.Error("the refutation clause should be empty")
	}
}

func TestSessionRunSaturatesWithoutRefutation(t *testing.T) {
	namer := &Namer{}
	s := NewSession(namer, DefaultSaturationConfig())
	s.Seed([]Clause{
		{Literals: []Literal{Pos(Pred{Name: "P", Args: []Term{Const("a")}})}},
		{Literals: []Literal{Pos(Pred{Name: "Q", Args: []Term{Const("b")}})}},
	})
	result := s.Run(context.Background())
	if result.Proved {
		t.Error("two unrelated unit clauses should not produce a refutation")
	}
}

func TestSessionRunParallelMatchesSerialOutcome(t *testing.T) {
	seed := func() []Clause {
		x := Var{Name: "x"}
		return []Clause{
			{Literals: []Literal{Neg(Pred{Name: "Man", Args: []Term{x}}), Pos(Pred{Name: "Mortal", Args: []Term{x}})}},
			{Literals: []Literal{Pos(Pred{Name: "Man", Args: []Term{Const("socrates")}})}},
			{Literals: []Literal{Neg(Pred{Name: "Mortal", Args: []Term{Const("socrates")}})}},
		}
	}

	serial := NewSession(&Namer{}, DefaultSaturationConfig())
	serial.Seed(seed())
	serialResult := serial.Run(context.Background())

	config := DefaultSaturationConfig()
	config.Parallel = true
	config.Workers = 4
	parallelSession := NewSession(&Namer{}, config)
	parallelSession.Seed(seed())
	parallelResult := parallelSession.Run(context.Background())

	if serialResult.Proved != parallelResult.Proved {
		t.Fatalf("parallel mode changed the outcome: serial proved=%v, parallel proved=%v",
			serialResult.Proved, parallelResult.Proved)
	}
	if !parallelResult.Proved {
		t.Fatal("expected both sessions to find a refutation")
	}
}
