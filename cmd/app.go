// Package cmd implements the CLI application to track goals.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ascent"
	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Commands is the list of subcommands registered by the main package.
// A main package calls Register() and Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&importCmd{},
	&updateCmd{},
	&goalsCmd{},
	&climbCmd{},
	&weeklyCmd{},
	&fmtCmd{},
	&topicCmd{},
	&coachCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// appConfig holds the environment defaults; flags override them.
type appConfig struct {
	// DataPath is the directory holding goals.csv and history.csv.
	DataPath string `envconfig:"DATA_PATH" default:"."`
	// Milestones are the score thresholds annotated as peaks, in ascending order.
	Milestones []float64 `envconfig:"MILESTONES"`
}

var config = loadConfig()

func loadConfig() appConfig {
	var cfg appConfig
	if err := envconfig.Process("ASCENT", &cfg); err != nil {
		log.Printf("warning: ignoring environment configuration: %v", err)
		cfg = appConfig{DataPath: "."}
	}
	return cfg
}

var dataPath = flag.String("data-path", config.DataPath, "Directory holding the goals and history CSV files")

// DecodeLedger loads the ledger from the app data path. A missing or
// unreadable file yields an empty table rather than an error.
func DecodeLedger() *ascent.Ledger {
	return ascent.Load(*dataPath)
}

// EncodeLedger persists the ledger into the app data path, rewriting both
// CSV files fully.
func EncodeLedger(l *ascent.Ledger) error {
	return ascent.Save(*dataPath, l)
}

// milestones returns the configured peak thresholds, defaulting to the
// standard ones.
func milestones() []decimal.Decimal {
	if len(config.Milestones) == 0 {
		return ascent.DefaultMilestones
	}
	ms := make([]decimal.Decimal, 0, len(config.Milestones))
	for _, m := range config.Milestones {
		ms = append(ms, decimal.NewFromFloat(m))
	}
	return ms
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// Fall back to the raw markdown, which is readable enough.
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}

// fail prints an error to stderr and returns the failure status. Usage
// errors have their own helper below.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
