package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sdiallo/boutique"
)

// productCmd holds the flags for the 'product' subcommand.
type productCmd struct {
	add       string
	remove    string
	qty       int
	threshold int
}

func (*productCmd) Name() string     { return "product" }
func (*productCmd) Synopsis() string { return "manage the tracked products" }
func (*productCmd) Usage() string {
	return `btk product [-add <name> [-q <quantity>] [-t <threshold>]] [-rm <product_id>]

  Without flags, lists the tracked products with their ids. -add registers a
  new product, -rm removes one. Removing a product keeps its past entries:
  history is never rewritten.

Usage Examples:
$ btk product -add "Riz 25kg" -q 10 -t 2
$ btk product
$ btk product -rm 1c1ad383
`
}

func (c *productCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a product to register.")
	f.StringVar(&c.remove, "rm", "", "Id of a product to remove.")
	f.IntVar(&c.qty, "q", 0, "Initial quantity for -add.")
	f.IntVar(&c.threshold, "t", 0, "Low-stock alert level for -add.")
}

func (c *productCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.add != "" && c.remove != "" {
		fmt.Fprintln(os.Stderr, "Error: -add and -rm cannot be used together.")
		return subcommands.ExitUsageError
	}

	m := newManager()
	switch {
	case c.add != "":
		item := boutique.NewStockItem(c.add, c.qty, c.threshold)
		if err := m.AddProduct(item); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding product: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added product %q with id %s\n", item.Name, item.ID)

	case c.remove != "":
		if err := m.DeleteProduct(c.remove); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing product: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed product %s (its entries are kept)\n", c.remove)

	default:
		doc := openStore().Load()
		if len(doc.Stock) == 0 {
			fmt.Println("No products tracked yet.")
			return subcommands.ExitSuccess
		}
		for _, it := range doc.Stock {
			fmt.Printf("%s  %s (on hand: %d, alert: %d)\n", it.ID, it.Name, it.Quantity, it.Threshold)
		}
	}
	return subcommands.ExitSuccess
}
