package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sdiallo/boutique"
	"github.com/sdiallo/boutique/date"
)

// saleCmd holds the flags for the 'sale' subcommand.
type saleCmd struct {
	date    string
	product string
	qty     int
	amount  float64
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "record a sale" }
func (*saleCmd) Usage() string {
	return `btk sale -p <product_id> -q <quantity> [-a <amount>] [-d <date>]

  Records the sale of a product and deducts the quantity from stock. When -a
  is omitted the total is prefilled from the product's average unit price.

Usage Examples:
$ btk sale -p riz25 -q 2 -a 100000
$ btk sale -p riz25 -q 1
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the sale (defaults to today).")
	f.StringVar(&c.product, "p", "", "Product id.")
	f.IntVar(&c.qty, "q", 1, "Units sold.")
	f.Float64Var(&c.amount, "a", 0, "Total sale amount. Defaults to quantity times the product's average price.")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDayFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.product == "" {
		fmt.Fprintln(os.Stderr, "Error: -p is required.")
		return subcommands.ExitUsageError
	}

	m := newManager()
	amount := boutique.M(c.amount)
	if amount.IsZero() {
		item, ok := boutique.FindStock(openStore().Load().Stock, c.product)
		if !ok || item.UnitPrice.IsZero() {
			fmt.Fprintf(os.Stderr, "Error: no known price for %q, provide -a.\n", c.product)
			return subcommands.ExitUsageError
		}
		amount = item.UnitPrice.MulInt(c.qty)
	}

	e := boutique.NewSale(day, c.product, c.qty, amount)
	if err := m.Add(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording sale: %v\n", err)
		return subcommands.ExitFailure
	}

	printEntrySaved("Recorded", e)
	return subcommands.ExitSuccess
}

// parseDayFlag parses a -d flag value, defaulting to today.
func parseDayFlag(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}
