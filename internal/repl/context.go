// Package repl implements the interactive command loop that
// spec.md §1 and §6 place outside the proof engine's core: the
// axiom/lemma session context, the `axioms`/`lemmas`/`axiom`/`lemma`/
// `remove`/`reset`/`quit` commands, and invalidation of lemmas whose
// axiom dependency was removed. It is grounded on the `interactive()`
// and `prove()` functions of the original Python implementation
// (original_source/TheoremProver.py), re-expressed the way a Go
// command-line tool built on github.com/hashicorp/cli manages state:
// an explicit, mutable session value rather than module-level globals.
package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-set/v3"

	"github.com/kteknomo/folprover/internal/syntax"
	"github.com/kteknomo/folprover/pkg/logic"
)

// commands are the reserved first words of a line; a bare formula
// must not start with one of these, and none of them may appear
// anywhere else in a line (mirroring the Python "Unexpected keyword"
// check in interactive()).
var commands = set.From([]string{"axiom", "lemma", "axioms", "lemmas", "remove", "reset", "quit"})

// Kind classifies what Execute did, so a caller (the CLI, a test) can
// render or inspect the outcome without string-matching Message.
type Kind int

const (
	KindAxiomAdded Kind = iota
	KindAxiomDuplicate
	KindLemmaProven
	KindLemmaUnprovable
	KindLemmaDuplicate
	KindRemoved
	KindNotFound
	KindReset
	KindListing
	KindProven
	KindUnprovable
	KindQuit
)

// Result is the outcome of executing one line.
type Result struct {
	Kind    Kind
	Message string
	// Lines holds the axioms or lemmas listed, for Kind == KindListing.
	Lines []string
	// Proof is populated when Kind is KindProven or KindLemmaProven.
	Proof logic.Proof
}

// lemma records a proven formula together with the exact set of
// axiom keys (see Context.key) that were in scope when it was proven,
// so that removing any one of them invalidates the lemma.
type lemma struct {
	formula Formula
	deps    *set.Set[string]
}

// Formula is a type alias kept local to this package so call sites
// read naturally; it is exactly logic.Formula.
type Formula = logic.Formula

// Context owns one proving session's accumulated axioms and lemmas.
// It is not safe for concurrent use; an interactive loop or a single
// CLI invocation owns one Context at a time, matching spec §5's
// "a proof session owns its clause collections."
type Context struct {
	logger hclog.Logger
	config logic.SaturationConfig
	namer  *logic.Namer

	axiomOrder []string
	axioms     map[string]Formula

	lemmaOrder []string
	lemmas     map[string]*lemma
}

// NewContext creates an empty session. logger may be hclog.NewNullLogger()
// if the caller does not want diagnostic output.
func NewContext(logger hclog.Logger, config logic.SaturationConfig) *Context {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Context{
		logger:     logger,
		config:     config,
		namer:      &logic.Namer{},
		axioms:     make(map[string]Formula),
		lemmas:     make(map[string]*lemma),
		axiomOrder: nil,
	}
}

// key returns the canonical identity of a formula, using the
// pretty-printer (spec §6's "auxiliary operation... a pretty-printer
// for diagnostics") as a structural key: two formulas parsed from
// differently-spaced input that print identically are the same
// axiom or lemma, matching the Python implementation's use of the
// formula object itself as a set/dict key.
func key(f Formula) string { return f.String() }

// Execute parses and runs one line of input, updating the session's
// axioms and lemmas as a side effect. It mirrors TheoremProver.py's
// interactive() command dispatch: axioms/lemmas list the current
// context, axiom/lemma/remove/reset mutate it, quit signals the
// caller should stop reading input, and anything else is parsed as a
// bare formula and proven against the accumulated context.
func (c *Context) Execute(ctx context.Context, line string) (Result, error) {
	tokens := syntax.Lex(line)
	if len(tokens) == 0 {
		return Result{}, fmt.Errorf("repl: empty input")
	}
	// Commands are recognised only in exact lowercase, the same as
	// TheoremProver.py's interactive(): a capitalised token is never a
	// command, so a predicate legitimately named e.g. Axiom(x) is
	// never shadowed.
	head := tokens[0]
	if !commands.Contains(head) {
		head = ""
	}
	for _, tok := range tokens[1:] {
		if commands.Contains(tok) {
			return Result{}, fmt.Errorf("repl: unexpected keyword %q", tok)
		}
	}

	switch head {
	case "quit":
		if len(tokens) > 1 {
			return Result{}, fmt.Errorf("repl: unexpected %q after quit", tokens[1])
		}
		return Result{Kind: KindQuit, Message: "now I exit interactive mode"}, nil
	case "axioms":
		if len(tokens) > 1 {
			return Result{}, fmt.Errorf("repl: unexpected %q after axioms", tokens[1])
		}
		return Result{Kind: KindListing, Lines: append([]string(nil), c.axiomOrder...)}, nil
	case "lemmas":
		if len(tokens) > 1 {
			return Result{}, fmt.Errorf("repl: unexpected %q after lemmas", tokens[1])
		}
		return Result{Kind: KindListing, Lines: append([]string(nil), c.lemmaOrder...)}, nil
	case "axiom":
		return c.addAxiom(rejoin(tokens[1:]))
	case "lemma":
		return c.addLemma(ctx, rejoin(tokens[1:]))
	case "remove":
		return c.remove(rejoin(tokens[1:]))
	case "reset":
		if len(tokens) > 1 {
			return Result{}, fmt.Errorf("repl: unexpected %q after reset", tokens[1])
		}
		c.Reset()
		return Result{Kind: KindReset, Message: "axioms and lemmas reset"}, nil
	default:
		return c.proveLine(ctx, rejoin(tokens))
	}
}

// rejoin turns a token slice back into text the parser can re-lex.
// Lex never looks at whitespace beyond using it as a separator, so
// joining with single spaces round-trips exactly.
func rejoin(tokens []string) string { return strings.Join(tokens, " ") }

func (c *Context) addAxiom(text string) (Result, error) {
	f, err := syntax.ParseFormula(text)
	if err != nil {
		return Result{}, err
	}
	k := key(f)
	if _, exists := c.axioms[k]; exists {
		return Result{Kind: KindAxiomDuplicate, Message: fmt.Sprintf("Axiom already present: %s.", f)}, nil
	}
	c.axioms[k] = f
	c.axiomOrder = append(c.axiomOrder, k)
	c.logger.Debug("axiom added", "formula", k)
	return Result{Kind: KindAxiomAdded, Message: fmt.Sprintf("Axiom added: %s.", f)}, nil
}

func (c *Context) addLemma(ctx context.Context, text string) (Result, error) {
	f, err := syntax.ParseFormula(text)
	if err != nil {
		return Result{}, err
	}
	k := key(f)
	if _, exists := c.lemmas[k]; exists {
		return Result{Kind: KindLemmaDuplicate, Message: fmt.Sprintf("Lemma already present: %s.", f)}, nil
	}

	proof, proven := logic.ProveFormula(ctx, c.namer, c.contextFormulas(), f, c.config)
	if !proven {
		c.logger.Debug("lemma unprovable", "formula", k)
		return Result{Kind: KindLemmaUnprovable, Message: fmt.Sprintf("Lemma unprovable: %s.", f)}, nil
	}

	deps := set.From(append([]string(nil), c.axiomOrder...))
	c.lemmas[k] = &lemma{formula: f, deps: deps}
	c.lemmaOrder = append(c.lemmaOrder, k)
	c.logger.Debug("lemma proven", "formula", k, "steps", len(proof.Steps))
	return Result{Kind: KindLemmaProven, Message: fmt.Sprintf("Lemma proven: %s.", f), Proof: proof}, nil
}

func (c *Context) remove(text string) (Result, error) {
	f, err := syntax.ParseFormula(text)
	if err != nil {
		return Result{}, err
	}
	k := key(f)

	if _, ok := c.axioms[k]; ok {
		delete(c.axioms, k)
		c.axiomOrder = removeKey(c.axiomOrder, k)

		var invalidated []string
		for _, lk := range c.lemmaOrder {
			if c.lemmas[lk].deps.Contains(k) {
				invalidated = append(invalidated, lk)
			}
		}
		for _, lk := range invalidated {
			delete(c.lemmas, lk)
			c.lemmaOrder = removeKey(c.lemmaOrder, lk)
		}

		msg := fmt.Sprintf("Axiom removed: %s.", f)
		switch len(invalidated) {
		case 0:
		case 1:
			msg += fmt.Sprintf(" This lemma was proven using that axiom and was also removed:\n  %s", invalidated[0])
		default:
			msg += "\nThese lemmas were proven using that axiom and were also removed:\n"
			msg += "  " + strings.Join(invalidated, "\n  ")
		}
		return Result{Kind: KindRemoved, Message: msg}, nil
	}

	if _, ok := c.lemmas[k]; ok {
		delete(c.lemmas, k)
		c.lemmaOrder = removeKey(c.lemmaOrder, k)
		return Result{Kind: KindRemoved, Message: fmt.Sprintf("Lemma removed: %s.", f)}, nil
	}

	return Result{Kind: KindNotFound, Message: fmt.Sprintf("Not an axiom: %s.", f)}, nil
}

func (c *Context) proveLine(ctx context.Context, text string) (Result, error) {
	f, err := syntax.ParseFormula(text)
	if err != nil {
		return Result{}, err
	}
	proof, proven := logic.ProveFormula(ctx, c.namer, c.contextFormulas(), f, c.config)
	if !proven {
		return Result{Kind: KindUnprovable, Message: fmt.Sprintf("Formula unprovable: %s.", f)}, nil
	}
	return Result{Kind: KindProven, Message: fmt.Sprintf("Formula proven: %s.", f), Proof: proof}, nil
}

// contextFormulas returns axioms ∪ keys(lemmas), the set spec.md §6
// says the collaborator passes as proveFormula's context argument.
func (c *Context) contextFormulas() []Formula {
	out := make([]Formula, 0, len(c.axioms)+len(c.lemmas))
	for _, k := range c.axiomOrder {
		out = append(out, c.axioms[k])
	}
	for _, k := range c.lemmaOrder {
		out = append(out, c.lemmas[k].formula)
	}
	return out
}

// Reset discards every axiom and lemma, starting a fresh session. A
// fresh Namer is installed too, so naming restarts from the beginning
// and later proofs reuse Skolem and variant names from before the
// reset; nothing collides, since no clause from before it survives.
func (c *Context) Reset() {
	c.axioms = make(map[string]Formula)
	c.axiomOrder = nil
	c.lemmas = make(map[string]*lemma)
	c.lemmaOrder = nil
	c.namer = &logic.Namer{}
}

// Axioms returns the axiom texts in insertion order.
func (c *Context) Axioms() []string { return append([]string(nil), c.axiomOrder...) }

// Lemmas returns the lemma texts in insertion order.
func (c *Context) Lemmas() []string { return append([]string(nil), c.lemmaOrder...) }

func removeKey(keys []string, target string) []string {
	out := keys[:0:0]
	for _, k := range keys {
		if k != target {
			out = append(out, k)
		}
	}
	return out
}

// RunScript executes a batch of lines (e.g. a saved session file or
// a list of statements supplied programmatically) against c, in
// order, grounded on TheoremProver.py's prove(statement) wrapper
// around interactive(). Unlike Execute, a line that fails to parse or
// validate does not stop the batch: every line's error is collected
// so the caller sees every problem in the script at once, the way
// prove() accumulates output for every statement regardless of
// earlier failures.
func RunScript(ctx context.Context, c *Context, lines []string) ([]Result, error) {
	results := make([]Result, 0, len(lines))
	var errs *multierror.Error
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		res, err := c.Execute(ctx, line)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %q: %w", i+1, line, err))
			continue
		}
		results = append(results, res)
		if res.Kind == KindQuit {
			break
		}
	}
	return results, errs.ErrorOrNil()
}
