package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an entry and undo its stock impact" }
func (*deleteCmd) Usage() string {
	return `btk delete <entry_id>...

  Removes entries from the ledger. Deleting a sale puts the units back in
  stock; deleting a Stock expense removes them again.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one entry id is required.")
		return subcommands.ExitUsageError
	}

	m := newManager()
	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		if err := m.Delete(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", id, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Deleted entry %s\n", id)
	}
	return status
}
