package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ascent/renderer"
	"github.com/google/subcommands"
)

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list all tracked goals and their scores" }
func (*goalsCmd) Usage() string {
	return `asc goals

  Lists every tracked goal with its cadence, due date and current progress
  score.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeLedger()
	printMarkdown(renderer.GoalsMarkdown(ledger.Goals()))
	return subcommands.ExitSuccess
}
