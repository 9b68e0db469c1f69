package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ascent"
	"github.com/etnz/ascent/date"
	"github.com/google/subcommands"
)

type updateCmd struct {
	percentage int
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "report today's completion for a goal" }
func (*updateCmd) Usage() string {
	return `asc update -p <percentage> <goal-id>

  Reports the completion percentage of a goal for today:
  - 100: full completion, the score compounds by 1%.
  -  50: partial completion, the score compounds by 0.5%.
  -   0: skipped period, the score divides back by 1%.

  The new score is written to the goal and a history entry is appended.

Usage Examples:
# Report a full completion for goal G1.
$ asc update -p 100 G1
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.percentage, "p", 100, "Completion percentage: 0, 50 or 100")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one goal id.")
		return subcommands.ExitUsageError
	}

	ledger := DecodeLedger()
	goal, err := ledger.SubmitUpdate(f.Arg(0), c.percentage, date.Today())
	if errors.Is(err, ascent.ErrInvalidPercentage) {
		return usageError(err)
	}
	if err != nil {
		return fail(err)
	}
	if err := EncodeLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Updated %s: progress score is now %s.\n", goal.Name, goal.Progress.StringFixed(4))
	return subcommands.ExitSuccess
}
