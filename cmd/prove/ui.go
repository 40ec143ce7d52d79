package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/cli"

	"github.com/kteknomo/folprover/internal/repl"
)

func newColorUI() cli.Ui {
	return &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
}

var (
	proven  = color.New(color.FgGreen, color.Bold)
	denied  = color.New(color.FgYellow)
	added   = color.New(color.FgCyan)
	removed = color.New(color.FgMagenta)
)

// render turns one repl.Result into the line printed to ui, colored by
// outcome the way a human reading a long session would want to scan
// it: green for a closed proof, yellow for a saturation that never
// found one, and everything else in its own muted color.
func render(ui cli.Ui, res repl.Result) {
	switch res.Kind {
	case repl.KindProven, repl.KindLemmaProven:
		ui.Output(proven.Sprint(res.Message))
		for _, step := range res.Proof.Steps {
			ui.Output("  " + step.String())
		}
	case repl.KindUnprovable, repl.KindLemmaUnprovable:
		ui.Output(denied.Sprint(res.Message))
	case repl.KindAxiomAdded, repl.KindAxiomDuplicate, repl.KindLemmaDuplicate:
		ui.Output(added.Sprint(res.Message))
	case repl.KindRemoved, repl.KindReset:
		ui.Output(removed.Sprint(res.Message))
	case repl.KindListing:
		if len(res.Lines) == 0 {
			ui.Output("(none)")
			return
		}
		for _, line := range res.Lines {
			ui.Output("  " + line)
		}
	case repl.KindNotFound:
		ui.Warn(res.Message)
	default:
		ui.Output(res.Message)
	}
}
