package logic

import "testing"

func TestReconstructProofOrdersParentsFirst(t *testing.T) {
	input1 := Clause{ID: 1, Literals: []Literal{Pos(Pred{Name: "P"})}, Provenance: Provenance{Rule: RuleInput}}
	input2 := Clause{ID: 2, Literals: []Literal{Neg(Pred{Name: "P"})}, Provenance: Provenance{Rule: RuleInput}}
	empty := Clause{ID: 3, Literals: nil, Provenance: Provenance{Rule: RuleResolution, Parents: []ClauseID{1, 2}}}

	result := SaturationResult{
		Proved:     true,
		Refutation: &empty,
		Clauses: map[ClauseID]Clause{
			1: input1,
			2: input2,
			3: empty,
		},
	}

	proof := ReconstructProof(result)
	if len(proof.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(proof.Steps))
	}
	last := proof.Steps[len(proof.Steps)-1]
	if last.Clause.ID != 3 {
		t.Errorf("the empty clause should be the last step, got clause %d", last.Clause.ID)
	}
	seen := map[ClauseID]bool{}
	for _, step := range proof.Steps {
		for _, parent := range step.Parents {
			if !seen[parent] {
				t.Errorf("clause %d used parent %d before it was derived", step.Clause.ID, parent)
			}
		}
		seen[step.Clause.ID] = true
	}
}

func TestReconstructProofPanicsWithoutRefutation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ReconstructProof should panic when the result has no refutation")
		}
	}()
	ReconstructProof(SaturationResult{Proved: false})
}
