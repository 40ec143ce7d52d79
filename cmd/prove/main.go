// Command prove is the executable entry point around pkg/logic and
// internal/repl: an interactive session for accumulating axioms and
// lemmas, plus a batch mode for running a saved script of statements.
// Command dispatch follows the same cli.CLI/cli.Command shape the
// rest of the ecosystem built on github.com/hashicorp/cli uses.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := newColorUI()

	c := cli.NewCLI("prove", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"interactive": func() (cli.Command, error) { return &InteractiveCommand{UI: ui}, nil },
		"run":         func() (cli.Command, error) { return &RunCommand{UI: ui}, nil },
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}
