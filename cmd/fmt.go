package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the data files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `asc fmt

  Reads both CSV files and writes them back in canonical form: dates in
  ISO-8601, history sorted per decode rules, the legacy Completed column
  dropped, and the Change column backfilled where a pre-Change file lacked
  it.

Usage Examples:
# Rewrites goals.csv and history.csv in place.
$ asc fmt
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := DecodeLedger()
	if err := EncodeLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d goals and %d history entries.\n",
		len(ledger.Goals()), len(ledger.Entries()))
	return subcommands.ExitSuccess
}
