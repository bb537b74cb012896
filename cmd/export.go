package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sdiallo/boutique"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export entries and stock as a portable JSON payload" }
func (*exportCmd) Usage() string {
	return `btk export [-o <file>]

  Writes entries and stock as one versioned JSON payload, to stdout or to a
  file, ready to be imported on another device.

Usage Examples:
$ btk export -o backup.json
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Destination file (defaults to stdout).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc := openStore().Load()

	w := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := boutique.Export(w, doc, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %d entries and %d products to %s\n", len(doc.Entries), len(doc.Stock), c.output)
	}
	return subcommands.ExitSuccess
}
