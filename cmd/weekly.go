package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/ascent/date"
	"github.com/etnz/ascent/renderer"
	"github.com/google/subcommands"
)

type weeklyCmd struct {
	date  string
	watch int
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display this week's progress overview" }
func (*weeklyCmd) Usage() string {
	return `asc weekly [-d <date>] [-w n]

  Displays the goals whose tracking began in the current ISO week, with
  their scores as a bar chart. Note that the week is the week a goal was
  added, not the week it was last updated.
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the week (defaults to today)")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := date.Today()
	if c.date != "" {
		var err error
		if today, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	for {
		ledger := DecodeLedger()
		md := renderer.WeeklyMarkdown(ledger.NewWeeklyReport(today))
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(md)

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
