package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sdiallo/boutique"
	"github.com/sdiallo/boutique/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	top int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the stock report" }
func (*reportCmd) Usage() string {
	return `btk report [-n <top>]

  Displays current stock levels, low-stock alerts, and the best sellers by
  units and by revenue.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "n", 5, "Number of products in the best-seller lists, -1 for all.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc := openStore().Load()
	printMarkdown(renderer.StockMarkdown(boutique.NewStockReport(doc, c.top)))
	return subcommands.ExitSuccess
}
