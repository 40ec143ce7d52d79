package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/kteknomo/folprover/internal/repl"
	"github.com/kteknomo/folprover/pkg/logic"
)

// InteractiveCommand reads statements from the UI's input stream one
// line at a time, feeding each into a repl.Context until the user
// types quit or closes stdin. It is the Go counterpart of
// TheoremProver.py's interactive() loop.
type InteractiveCommand struct {
	UI cli.Ui
}

func (c *InteractiveCommand) Help() string {
	return strings.TrimSpace(`
Usage: prove interactive

  Starts an interactive session for declaring axioms, proving lemmas,
  and checking formulas against the accumulated context.

  Commands:
    axiom <formula>   add an axiom
    lemma <formula>   prove a formula and keep it in context
    axioms            list the current axioms
    lemmas            list the proven lemmas
    remove <formula>  remove an axiom or lemma
    reset             clear all axioms and lemmas
    quit              end the session

  Anything else is parsed as a formula and checked against the
  current axioms and lemmas without being kept.
`)
}

func (c *InteractiveCommand) Synopsis() string {
	return "Start an interactive axiom/lemma session"
}

func (c *InteractiveCommand) Run(args []string) int {
	logger := hclog.New(&hclog.LoggerOptions{Name: "prove", Level: hclog.Warn})
	session := repl.NewContext(logger, logic.DefaultSaturationConfig())
	ctx := context.Background()

	reader, ok := c.UI.(*cli.BasicUi)
	var scanner *bufio.Scanner
	if ok {
		scanner = bufio.NewScanner(reader.Reader)
	} else {
		scanner = bufio.NewScanner(strings.NewReader(""))
	}

	c.UI.Output("Enter axioms, lemmas, or formulas to check. Type 'quit' to exit.")
	for {
		c.UI.Output("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		res, err := session.Execute(ctx, line)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error: %v", err))
			continue
		}
		render(c.UI, res)
		if res.Kind == repl.KindQuit {
			break
		}
	}
	return 0
}
