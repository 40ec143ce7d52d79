package logic

import (
	"context"
	"time"

	"github.com/kteknomo/folprover/internal/parallel"
)

// # Given-clause saturation
//
// A Session holds two clause pools:
//
//	active:  clauses already resolved against every other active clause
//	passive: clauses waiting to be selected as the next "given clause"
//
// Each iteration pops the cheapest passive clause (the given clause),
// factors it, resolves it against every clause already in active, and
// moves it into active. Resolvents and factors go back into passive
// after a subsumption check, which both discards anything already
// implied by an existing clause and drops existing clauses the new
// one makes redundant. Saturation ends when the empty clause is
// derived (refutation found), passive runs dry (no refutation
// exists, or none was found within budget), or a budget is exceeded.

// SaturationConfig bounds a saturation run so it always terminates.
// The zero value means "unbounded" for every field; DefaultSaturationConfig
// returns sane defaults for interactive use.
type SaturationConfig struct {
	// MaxClauses caps the number of clauses ever kept (active + passive).
	// Zero means unlimited.
	MaxClauses int

	// MaxIterations caps the number of given-clause steps. Zero means
	// unlimited.
	MaxIterations int

	// Deadline caps wall-clock time spent in Run. Zero means unlimited.
	Deadline time.Duration

	// Parallel generates a given clause's resolvents against the
	// active set concurrently instead of one at a time (spec §5: a
	// permitted extension). Results are always merged back in active-
	// clause order before insertion, so enabling it changes only how
	// the resolvents are computed, never the outcome or the proof
	// that's reported.
	Parallel bool

	// Workers caps concurrency when Parallel is set. Zero means
	// runtime.NumCPU().
	Workers int
}

// DefaultSaturationConfig returns budgets generous enough for the
// worked examples and small hand-written problems, but still finite.
func DefaultSaturationConfig() SaturationConfig {
	return SaturationConfig{
		MaxClauses:    100_000,
		MaxIterations: 50_000,
		Deadline:      30 * time.Second,
	}
}

// SaturationResult is the outcome of a Run.
type SaturationResult struct {
	// Proved is true iff the empty clause was derived.
	Proved bool

	// Refutation is the empty clause, set only when Proved is true.
	Refutation *Clause

	// Iterations counts the given-clause steps taken.
	Iterations int

	// Clauses holds every clause kept during the run, keyed by ID, so a
	// proof recorder can walk provenance back to the inputs.
	Clauses map[ClauseID]Clause

	// Generated counts every resolvent/factor produced by the loop,
	// including ones later discarded. Subsumed counts how many of
	// those (plus input clauses) were discarded as tautologies,
	// duplicates, or subsumption victims. Both are diagnostic only;
	// callers needing them for observability (spec §7) read them off
	// the result rather than from any logging inside this package.
	Generated int
	Subsumed  int
}

// Session runs one saturation attempt. It is not safe for concurrent
// use; callers needing parallel exploration should give each goroutine
// its own Session and its own Namer, since Namer is not safe for
// concurrent use either.
type Session struct {
	namer  *Namer
	config SaturationConfig

	nextID  ClauseID
	active  []Clause
	passive []Clause

	clauses map[ClauseID]Clause
	byHash  map[uint64][]ClauseID

	generated int
	subsumed  int

	pool *parallel.Pool
}

// NewSession creates an empty saturation session. namer must be the
// same Namer used to clausify the input formulas, so that clauses
// produced during the run never collide with a standardised-apart
// input variable or Skolem function.
func NewSession(namer *Namer, config SaturationConfig) *Session {
	s := &Session{
		namer:   namer,
		config:  config,
		clauses: make(map[ClauseID]Clause),
		byHash:  make(map[uint64][]ClauseID),
	}
	if config.Parallel {
		s.pool = parallel.New(config.Workers)
	}
	return s
}

// Seed adds a batch of initial clauses (from Clausify) to the
// session, assigning each a fresh ClauseID.
func (s *Session) Seed(clauses []Clause) {
	for _, c := range clauses {
		s.insert(c)
	}
}

// Run drives the given-clause loop until a refutation is found, the
// passive set is exhausted, or a budget in s.config is exceeded. ctx
// cancellation is checked once per iteration.
func (s *Session) Run(ctx context.Context) SaturationResult {
	if s.config.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Deadline)
		defer cancel()
	}

	iterations := 0
	for {
		select {
		case <-ctx.Done():
			return s.result(false, nil, iterations)
		default:
		}
		if s.config.MaxIterations > 0 && iterations >= s.config.MaxIterations {
			return s.result(false, nil, iterations)
		}
		if s.config.MaxClauses > 0 && len(s.clauses) >= s.config.MaxClauses {
			return s.result(false, nil, iterations)
		}

		given, ok := s.selectGiven()
		if !ok {
			return s.result(false, nil, iterations)
		}
		if given.IsEmpty() {
			return s.result(true, &given, iterations)
		}
		iterations++

		for _, f := range factors(given) {
			s.generated++
			s.insert(f)
		}
		if s.config.Parallel {
			// Each active clause's resolvents are computed
			// independently, so Map's index-order guarantee is enough
			// to make insertion order (and therefore ClauseID
			// assignment) identical to the serial path.
			batches, _ := parallel.Map(ctx, s.pool, len(s.active), func(i int) []Clause {
				return resolvents(given, s.active[i], s.namer)
			})
			for _, batch := range batches {
				for _, r := range batch {
					s.generated++
					s.insert(r)
				}
			}
		} else {
			for _, other := range s.active {
				for _, r := range resolvents(given, other, s.namer) {
					s.generated++
					s.insert(r)
				}
			}
		}
		for _, r := range resolvents(given, given, s.namer) {
			s.generated++
			s.insert(r)
		}
		s.active = append(s.active, given)
	}
}

func (s *Session) result(proved bool, empty *Clause, iterations int) SaturationResult {
	return SaturationResult{
		Proved:     proved,
		Refutation: empty,
		Iterations: iterations,
		Clauses:    s.clauses,
		Generated:  s.generated,
		Subsumed:   s.subsumed,
	}
}

// selectGiven pops the cheapest passive clause: fewest literals first,
// then fewest symbols, then lowest ClauseID (FIFO) to make selection
// order — and so the whole run — deterministic.
func (s *Session) selectGiven() (Clause, bool) {
	if len(s.passive) == 0 {
		return Clause{}, false
	}
	best := 0
	for i := 1; i < len(s.passive); i++ {
		if lessGiven(s.passive[i], s.passive[best]) {
			best = i
		}
	}
	c := s.passive[best]
	s.passive = append(s.passive[:best], s.passive[best+1:]...)
	return c, true
}

func lessGiven(a, b Clause) bool {
	aLits, aSyms := clauseWeight(a)
	bLits, bSyms := clauseWeight(b)
	if aLits != bLits {
		return aLits < bLits
	}
	if aSyms != bSyms {
		return aSyms < bSyms
	}
	return a.ID < b.ID
}

func clauseWeight(c Clause) (literals, symbols int) {
	for _, l := range c.Literals {
		symbols += atomSize(l.Atom)
	}
	return len(c.Literals), symbols
}

func atomSize(p Pred) int {
	size := 1
	for _, a := range p.Args {
		size += termNodeSize(a)
	}
	return size
}

func termNodeSize(t Term) int {
	switch n := t.(type) {
	case Fun:
		size := 1
		for _, a := range n.Args {
			size += termNodeSize(a)
		}
		return size
	default:
		return 1
	}
}

// insert assigns c a ClauseID and adds it to passive, unless it is a
// tautology, an exact duplicate of a clause already kept, or subsumed
// by one. Any kept clause it subsumes in turn is removed from active
// and passive.
func (s *Session) insert(c Clause) {
	if c.IsTautology() {
		s.subsumed++
		return
	}
	h := c.Hash()
	canon := c.CanonicalString()
	for _, id := range s.byHash[h] {
		if s.clauses[id].CanonicalString() == canon {
			s.subsumed++
			return
		}
	}
	for _, existing := range s.active {
		if subsumes(existing, c) {
			s.subsumed++
			return
		}
	}
	for _, existing := range s.passive {
		if subsumes(existing, c) {
			s.subsumed++
			return
		}
	}

	s.active = removeSubsumedBy(s.active, c)
	s.passive = removeSubsumedBy(s.passive, c)

	s.nextID++
	c.ID = s.nextID
	s.clauses[c.ID] = c
	s.byHash[h] = append(s.byHash[h], c.ID)
	s.passive = append(s.passive, c)
}

func removeSubsumedBy(clauses []Clause, by Clause) []Clause {
	kept := clauses[:0:0]
	for _, c := range clauses {
		if !subsumes(by, c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// resolvents returns every binary resolvent of c1 and c2: for each
// pair of opposite-polarity literals whose atoms unify, the clause
// formed from the remaining literals of both sides under the
// unifier, with the resolved pair removed and exact duplicate
// literals merged. Tautologies are discarded. If c1 and c2 are the
// same clause (by ID), one side is standardised apart first so a
// clause can resolve against itself.
func resolvents(c1, c2 Clause, namer *Namer) []Clause {
	if c1.ID == c2.ID {
		c2 = standardizeClauseApart(c2, namer)
	}
	var out []Clause
	for i, l1 := range c1.Literals {
		for j, l2 := range c2.Literals {
			subst, ok := UnifyLiterals(l1, l2, nil)
			if !ok {
				continue
			}
			lits := make([]Literal, 0, len(c1.Literals)+len(c2.Literals)-2)
			for k, l := range c1.Literals {
				if k != i {
					lits = append(lits, subst.ApplyLiteral(l))
				}
			}
			for k, l := range c2.Literals {
				if k != j {
					lits = append(lits, subst.ApplyLiteral(l))
				}
			}
			lits = dedupLiterals(lits)
			resolvent := Clause{
				Literals:   lits,
				Provenance: Provenance{Rule: RuleResolution, Parents: []ClauseID{c1.ID, c2.ID}, Subst: subst},
			}
			if resolvent.IsTautology() {
				continue
			}
			out = append(out, resolvent)
		}
	}
	return out
}

// factors returns every factor of c: for each pair of same-polarity
// literals whose atoms unify, the clause with the pair merged into
// one literal under the unifier. Factoring is what lets resolution
// stay complete without generating every tautological resolvent of a
// clause against itself.
func factors(c Clause) []Clause {
	var out []Clause
	for i := range c.Literals {
		for j := i + 1; j < len(c.Literals); j++ {
			li, lj := c.Literals[i], c.Literals[j]
			if li.Positive != lj.Positive {
				continue
			}
			subst, ok := UnifyAtoms(li.Atom, lj.Atom, nil)
			if !ok {
				continue
			}
			lits := make([]Literal, 0, len(c.Literals)-1)
			for k, l := range c.Literals {
				if k == j {
					continue
				}
				lits = append(lits, subst.ApplyLiteral(l))
			}
			lits = dedupLiterals(lits)
			factored := Clause{
				Literals:   lits,
				Provenance: Provenance{Rule: RuleFactor, Parents: []ClauseID{c.ID}, Subst: subst},
			}
			if factored.IsTautology() {
				continue
			}
			out = append(out, factored)
		}
	}
	return out
}

func dedupLiterals(lits []Literal) []Literal {
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		dup := false
		for _, kept := range out {
			if l.Equal(kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}

// subsumes reports whether c1 subsumes c2: whether there is a
// substitution binding only c1's variables under which every literal
// of c1 appears among c2's literals. A subsumed clause adds nothing a
// shorter, more general clause doesn't already give the saturation
// loop, so it is safe to discard.
func subsumes(c1, c2 Clause) bool {
	if len(c1.Literals) > len(c2.Literals) {
		return false
	}
	return trySubsume(c1.Literals, c2.Literals, NewSubstitution())
}

func trySubsume(remaining, target []Literal, subst *Substitution) bool {
	if len(remaining) == 0 {
		return true
	}
	first := remaining[0]
	for _, candidate := range target {
		if candidate.Positive != first.Positive ||
			candidate.Atom.Name != first.Atom.Name ||
			len(candidate.Atom.Args) != len(first.Atom.Args) {
			continue
		}
		if next, ok := matchAtom(first.Atom, candidate.Atom, subst); ok {
			if trySubsume(remaining[1:], target, next) {
				return true
			}
		}
	}
	return false
}

// matchAtom extends subst so that pattern, with subst applied, equals
// ground. Unlike Unify, only pattern's variables may be bound: a
// variable occurring in ground is treated as an opaque symbol. This
// one-directional matching is what subsumption checking requires.
func matchAtom(pattern, ground Pred, subst *Substitution) (*Substitution, bool) {
	if pattern.Name != ground.Name || len(pattern.Args) != len(ground.Args) {
		return nil, false
	}
	current := subst
	for i := range pattern.Args {
		var ok bool
		current, ok = matchTerm(pattern.Args[i], ground.Args[i], current)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func matchTerm(pattern, ground Term, subst *Substitution) (*Substitution, bool) {
	switch p := pattern.(type) {
	case Var:
		if bound, ok := subst.Lookup(p.Name); ok {
			return subst, bound.Equal(ground)
		}
		return subst.Extend(p.Name, ground), true
	case Fun:
		g, ok := ground.(Fun)
		if !ok || g.Name != p.Name || len(g.Args) != len(p.Args) {
			return nil, false
		}
		current := subst
		for i := range p.Args {
			var innerOK bool
			current, innerOK = matchTerm(p.Args[i], g.Args[i], current)
			if !innerOK {
				return nil, false
			}
		}
		return current, true
	default:
		return nil, false
	}
}
