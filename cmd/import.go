package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ascent"
	"github.com/etnz/ascent/date"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a batch of goals from a CSV file" }
func (*importCmd) Usage() string {
	return `asc import <file.csv>

  Imports goals from a CSV file with at minimum the columns
  GoalID,GoalName,DueDate,Frequency. Extra columns are ignored.

  Each imported goal is seeded like a created one (score 1.0, seed history
  entry), except that its id is taken verbatim from the file. All imported
  goals share today's date as their start of tracking. The import is
  all-or-nothing: a malformed file leaves the ledger untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one CSV file to import.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	rows, err := ascent.ReadImport(file)
	if err != nil {
		return usageError(err)
	}

	ledger := DecodeLedger()
	ledger.ImportGoals(rows, date.Today())
	if err := EncodeLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Imported %d goals.\n", len(rows))
	return subcommands.ExitSuccess
}
