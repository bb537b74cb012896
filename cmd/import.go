package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sdiallo/boutique"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace entries and stock from an exported payload" }
func (*importCmd) Usage() string {
	return `btk import <file>

  Reads a payload produced by 'btk export' and replaces the current entries
  and stock with it. Shop settings are kept. The payload is validated in full
  before anything is touched.

Usage Examples:
$ btk import backup.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one payload file is required.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	payload, err := boutique.Import(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading payload: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := newManager().Restore(payload); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring payload: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d entries and %d products\n", len(payload.Entries), len(payload.Stock))
	return subcommands.ExitSuccess
}
