package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sdiallo/boutique"
	"github.com/sdiallo/boutique/renderer"
)

// breakdownCmd holds the flags for the 'breakdown' subcommand.
type breakdownCmd struct {
	date string
	all  bool
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display the expense breakdown by category" }
func (*breakdownCmd) Usage() string {
	return `btk breakdown [-d <date>] [-all]

  Sums expenses per category over the calendar month containing the given
  date, or over the whole ledger with -all.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "A day of the month to analyze (defaults to today).")
	f.BoolVar(&c.all, "all", false, "Analyze the whole ledger instead of one month.")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var entries []boutique.Entry
	if c.all {
		entries = openStore().Load().Entries
	} else {
		day, err := parseDayFlag(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		entries = newManager().EntriesForMonth(day)
	}

	printMarkdown(renderer.BreakdownMarkdown(boutique.ExpenseBreakdown(entries)))
	return subcommands.ExitSuccess
}
