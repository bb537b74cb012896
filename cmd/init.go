package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sdiallo/boutique"
)

// initCmd holds the flags for the 'init' subcommand.
type initCmd struct {
	name   string
	target float64
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create or update the shop settings" }
func (*initCmd) Usage() string {
	return `btk init -name <shop_name> [-target <amount>]

  Creates the data file if needed and records the shop name and the optional
  daily profit target. Running it again updates the settings in place.

Usage Examples:
$ btk init -name "Boutique Awa" -target 50000
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the shop.")
	f.Float64Var(&c.target, "target", 0, "Daily profit target, 0 for none.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	if c.target < 0 {
		fmt.Fprintln(os.Stderr, "Error: -target cannot be negative.")
		return subcommands.ExitUsageError
	}

	m := newManager()
	settings := boutique.Settings{Name: c.name, DailyTarget: boutique.M(c.target)}
	if err := m.UpdateSettings(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Shop %q ready in %s\n", c.name, dataFilePath())
	return subcommands.ExitSuccess
}
