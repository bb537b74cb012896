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

// healthCmd holds the flags for the 'health' subcommand.
type healthCmd struct {
	date string
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "display the business health score" }
func (*healthCmd) Usage() string {
	return `btk health [-d <date>]

  Composes the trailing week's profitability, record-keeping consistency,
  expense control and momentum into one score from 0 to 10.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference day (defaults to today).")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDayFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	doc := openStore().Load()
	h := boutique.HealthScore(doc.Entries, doc.Settings.DailyTarget, day)
	printMarkdown(renderer.HealthMarkdown(h))
	return subcommands.ExitSuccess
}
