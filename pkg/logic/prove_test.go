package logic

import (
	"context"
	"testing"
)

// TestProveFormulaSocrates is the textbook syllogism: every man is
// mortal, Socrates is a man, therefore Socrates is mortal.
func TestProveFormulaSocrates(t *testing.T) {
	x := Var{Name: "x"}
	socrates := Const("socrates")
	man := func(t Term) Pred { return Pred{Name: "Man", Args: []Term{t}} }
	mortal := func(t Term) Pred { return Pred{Name: "Mortal", Args: []Term{t}} }

	axioms := []Formula{
		ForAll{Bound: x, Body: Implies{A: man(x), B: mortal(x)}},
		man(socrates),
	}
	goal := mortal(socrates)

	namer := &Namer{}
	proof, ok := ProveFormula(context.Background(), namer, axioms, goal, DefaultSaturationConfig())
	if !ok {
		t.Fatal("expected a proof that Socrates is mortal")
	}
	if len(proof.Steps) == 0 {
		t.Error("a successful proof should record at least one step")
	}
	if !proof.Steps[len(proof.Steps)-1].Clause.IsEmpty() {
		t.Error("the final step of a proof should be the empty clause")
	}
}

func TestProveFormulaUnrelatedGoalFails(t *testing.T) {
	socrates := Const("socrates")
	axioms := []Formula{Pred{Name: "Man", Args: []Term{socrates}}}
	goal := Pred{Name: "Bird", Args: []Term{socrates}}

	namer := &Namer{}
	_, ok := ProveFormula(context.Background(), namer, axioms, goal, DefaultSaturationConfig())
	if ok {
		t.Error("an unrelated goal should not be provable from the given axiom")
	}
}

func TestProveFormulaExistentialWitness(t *testing.T) {
	x := Var{Name: "x"}
	loves := func(a, b Term) Pred { return Pred{Name: "Loves", Args: []Term{a, b}} }
	// Everybody loves someone; does John love Mary? Not derivable
	// without naming Mary specifically, so this should fail to prove,
	// exercising Skolemization through a negative result.
	axioms := []Formula{
		ForAll{Bound: x, Body: Exists{Bound: Var{Name: "y"}, Body: loves(x, Var{Name: "y"})}},
	}
	goal := loves(Const("john"), Const("mary"))

	namer := &Namer{}
	cfg := DefaultSaturationConfig()
	cfg.MaxIterations = 200
	_, ok := ProveFormula(context.Background(), namer, axioms, goal, cfg)
	if ok {
		t.Error("loving *someone* does not entail loving Mary specifically")
	}
}
