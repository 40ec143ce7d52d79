package logic

import "context"

// ProveFormula attempts to prove goal from axioms by refutation: it
// clausifies axioms together with the negation of goal, seeds a
// saturation Session with the result, and runs it to completion or
// budget exhaustion. It reports whether a proof was found and, if so,
// the derivation from input clauses to the empty clause.
//
// namer must be used for every formula the caller ever passes to
// ProveFormula (or Clausify) within one proving session — reusing the
// same session-scoped instance across axioms, lemmas and repeated
// goal attempts keeps every variable and Skolem function name unique.
func ProveFormula(ctx context.Context, namer *Namer, axioms []Formula, goal Formula, config SaturationConfig) (Proof, bool) {
	formulas := make([]Formula, 0, len(axioms)+1)
	formulas = append(formulas, axioms...)
	formulas = append(formulas, Not{Formula: goal})

	clauses := Clausify(formulas, namer)

	session := NewSession(namer, config)
	session.Seed(clauses)
	result := session.Run(ctx)
	if !result.Proved {
		return Proof{}, false
	}
	return ReconstructProof(result), true
}
