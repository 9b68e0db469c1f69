package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ascent/renderer"
	"github.com/google/subcommands"
)

type climbCmd struct{}

func (*climbCmd) Name() string     { return "climb" }
func (*climbCmd) Synopsis() string { return "display the climb chart of a goal" }
func (*climbCmd) Usage() string {
	return `asc climb <goal-id>

  Displays the full progress history of a goal as a climb chart: every
  update with its badge, the reached peaks, and the current streak.
`
}

func (c *climbCmd) SetFlags(f *flag.FlagSet) {}

func (c *climbCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one goal id.")
		return subcommands.ExitUsageError
	}

	ledger := DecodeLedger()
	report, err := ledger.NewClimbReport(f.Arg(0), milestones())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ClimbMarkdown(report))
	return subcommands.ExitSuccess
}
