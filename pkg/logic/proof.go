package logic

import "fmt"

// Step is one line of a recorded proof: a clause together with the
// rule and parents that produced it.
type Step struct {
	Clause  Clause
	Rule    Rule
	Parents []ClauseID
}

func (s Step) String() string {
	if len(s.Parents) == 0 {
		return fmt.Sprintf("%d. %s  [%s]", s.Clause.ID, s.Clause, s.Rule)
	}
	return fmt.Sprintf("%d. %s  [%s %v]", s.Clause.ID, s.Clause, s.Rule, s.Parents)
}

// Proof is an ordered derivation from input clauses to the empty
// clause, suitable for display or replay.
type Proof struct {
	Steps []Step
}

func (p Proof) String() string {
	out := ""
	for i, s := range p.Steps {
		if i > 0 {
			out += "\n"
		}
		out += s.String()
	}
	return out
}

// ReconstructProof walks the Parents links of result.Refutation back
// through result.Clauses and returns the derivation in the order a
// reader can check it: every clause's parents appear before it.
// ReconstructProof panics if result.Proved is false, since there is
// nothing to reconstruct.
func ReconstructProof(result SaturationResult) Proof {
	if !result.Proved || result.Refutation == nil {
		panic("logic: ReconstructProof called on a non-refutation result")
	}

	order := make([]ClauseID, 0, len(result.Clauses))
	visited := make(map[ClauseID]bool)
	var visit func(id ClauseID)
	visit = func(id ClauseID) {
		if visited[id] {
			return
		}
		visited[id] = true
		c, ok := result.Clauses[id]
		if !ok {
			return
		}
		for _, parent := range c.Provenance.Parents {
			visit(parent)
		}
		order = append(order, id)
	}
	visit(result.Refutation.ID)

	steps := make([]Step, len(order))
	for i, id := range order {
		c := result.Clauses[id]
		steps[i] = Step{Clause: c, Rule: c.Provenance.Rule, Parents: c.Provenance.Parents}
	}
	return Proof{Steps: steps}
}
