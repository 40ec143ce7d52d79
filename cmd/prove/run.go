package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/kteknomo/folprover/internal/repl"
	"github.com/kteknomo/folprover/pkg/logic"
)

// RunCommand executes a script of axiom/lemma/formula statements, one
// per line, against a fresh session and reports every line's outcome.
// It is the batch counterpart of TheoremProver.py's prove(statement):
// a malformed line does not stop the run, it is reported alongside
// everything that did succeed.
type RunCommand struct {
	UI cli.Ui
}

func (c *RunCommand) Help() string {
	return strings.TrimSpace(`
Usage: prove run <file>

  Runs every line of <file> as a statement (axiom, lemma, remove,
  reset, or bare formula) against a fresh session, in order, and
  prints the outcome of each. Parse or prove-step errors on one line
  are reported but do not stop the remaining lines from running.
`)
}

func (c *RunCommand) Synopsis() string {
	return "Run a script of statements from a file"
}

func (c *RunCommand) Run(args []string) int {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		c.UI.Error("run requires exactly one file argument")
		return 1
	}

	contents, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		c.UI.Error(fmt.Sprintf("reading %s: %v", flags.Arg(0), err))
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{Name: "prove", Level: hclog.Warn})
	session := repl.NewContext(logger, logic.DefaultSaturationConfig())
	results, err := repl.RunScript(context.Background(), session, strings.Split(string(contents), "\n"))
	for _, res := range results {
		render(c.UI, res)
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
