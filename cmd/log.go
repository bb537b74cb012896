package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	date  string
	month bool
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list recorded entries" }
func (*logCmd) Usage() string {
	return `btk log [-d <date>] [-m]

  Lists entries in chronological order. By default the whole ledger is shown;
  -d restricts to one day, -m to the calendar month containing that day.

Usage Examples:
$ btk log -d 2025-6-1
$ btk log -m
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day to list (defaults to today when filtering).")
	f.BoolVar(&c.month, "m", false, "List the whole calendar month instead of one day.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m := newManager()

	if c.date == "" && !c.month {
		renderLog(openStore().Load().Entries)
		return subcommands.ExitSuccess
	}

	day, err := parseDayFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.month {
		renderLog(m.EntriesForMonth(day))
	} else {
		renderLog(m.EntriesForDate(day))
	}
	return subcommands.ExitSuccess
}
