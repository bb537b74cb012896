package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// resetCmd holds the flags for the 'reset' subcommand.
type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete the data file" }
func (*resetCmd) Usage() string {
	return `btk reset -force

  Deletes the data file entirely: settings, entries and stock. There is no
  undo; export first if in doubt.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm the deletion.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Refusing to delete without -force.")
		return subcommands.ExitUsageError
	}

	s := openStore()
	if err := s.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", s.Path(), err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s\n", s.Path())
	return subcommands.ExitSuccess
}
