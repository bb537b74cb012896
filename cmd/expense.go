package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sdiallo/boutique"
)

// expenseCmd holds the flags for the 'expense' subcommand.
type expenseCmd struct {
	date     string
	category string
	amount   float64
	product  string
	qty      int
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `btk expense -c <category> -a <amount> [-d <date>] [-p <product_id> -q <quantity>]

  Records an expense. A Stock expense restocks the referenced product by the
  given quantity; -p and -q are only valid with -c Stock.

  Categories: Stock, Transport, Loyer, Salaire, Internet, Autre.

Usage Examples:
$ btk expense -c Transport -a 10000
$ btk expense -c Stock -a 120000 -p riz25 -q 10
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the expense (defaults to today).")
	f.StringVar(&c.category, "c", "", "Expense category.")
	f.Float64Var(&c.amount, "a", 0, "Expense amount.")
	f.StringVar(&c.product, "p", "", "Product id to restock (Stock category only).")
	f.IntVar(&c.qty, "q", 0, "Units stocked in (Stock category only).")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDayFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := boutique.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e := boutique.NewExpense(day, category, boutique.M(c.amount), c.product, c.qty)
	if err := newManager().Add(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording expense: %v\n", err)
		return subcommands.ExitFailure
	}

	printEntrySaved("Recorded", e)
	return subcommands.ExitSuccess
}
