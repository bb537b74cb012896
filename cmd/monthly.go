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

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	date string
	top  int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a one-month business review" }
func (*monthlyCmd) Usage() string {
	return `btk monthly [-d <date>] [-n <top>]

  Reviews the calendar month containing the given date: totals, profit,
  expenses by category and the best-earning products.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "A day of the month to review (defaults to today).")
	f.IntVar(&c.top, "n", 5, "Number of products in the top list, -1 for all.")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDayFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	doc := openStore().Load()
	printMarkdown(renderer.MonthlyMarkdown(boutique.NewMonthSummary(doc, day, c.top)))
	return subcommands.ExitSuccess
}
