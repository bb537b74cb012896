package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sdiallo/boutique"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	date     string
	amount   float64
	qty      int
	category string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing entry" }
func (*editCmd) Usage() string {
	return `btk edit <entry_id> [-a <amount>] [-q <quantity>] [-d <date>] [-c <category>]

  Replaces the given fields of an entry. The previous stock impact of the
  entry is undone before the new values are applied, so stock stays
  consistent with the history.

Usage Examples:
$ btk edit 1c1ad383 -q 3 -a 150000
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "New date.")
	f.Float64Var(&c.amount, "a", -1, "New amount.")
	f.IntVar(&c.qty, "q", -1, "New quantity.")
	f.StringVar(&c.category, "c", "", "New category (expenses only).")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one entry id is required.")
		return subcommands.ExitUsageError
	}

	m := newManager()
	e, err := m.ByID(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.date != "" {
		day, err := parseDayFlag(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		e.Date = day
	}
	if c.amount >= 0 {
		e.Amount = boutique.M(c.amount)
	}
	if c.qty >= 0 {
		e.Quantity = c.qty
	}
	if c.category != "" {
		category, err := boutique.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		e.Category = category
	}

	if err := m.Update(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating entry: %v\n", err)
		return subcommands.ExitFailure
	}

	printEntrySaved("Updated", e)
	return subcommands.ExitSuccess
}
