package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ascent"
	"github.com/etnz/ascent/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	name      string
	due       string
	frequency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new goal to track" }
func (*addCmd) Usage() string {
	return `asc add -name <name> -due <date> [-freq <frequency>]

  Adds a new goal:
  - name: The display name of the goal (e.g., "Run 5k"). Must not be blank.
  - due: The due date in YYYY-MM-DD format.
  - freq: The update cadence: Daily, Weekly or Monthly (default Daily).

  The goal starts with a progress score of 1.0 and a seed history entry
  dated today.

Usage Examples:
# Track a daily running goal until the end of the year.
$ asc add -name "Run 5k" -due 2026-12-31 -freq Daily
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal display name (required)")
	f.StringVar(&c.due, "due", "", "Goal due date, YYYY-MM-DD (required)")
	f.StringVar(&c.frequency, "freq", "Daily", "Update cadence: Daily, Weekly or Monthly")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	due, err := date.Parse(c.due)
	if err != nil {
		return usageError(err)
	}
	freq, err := ascent.ParseFrequency(c.frequency)
	if err != nil {
		return usageError(err)
	}

	ledger := DecodeLedger()
	goal, err := ledger.CreateGoal(c.name, due, freq, date.Today())
	if err != nil {
		return usageError(err)
	}
	if err := EncodeLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Goal %q added as %s.\n", goal.Name, goal.ID)
	return subcommands.ExitSuccess
}
