package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sdiallo/boutique/cmd"
)

func main() {
	// Shell completion: when invoked by the shell's completion machinery this
	// prints candidates and exits.
	completions := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{"f": predict.Files("*.json"), "v": predict.Nothing},
	}
	for _, c := range cmd.Commands {
		completions.Sub[c.Name()] = &complete.Command{}
	}
	completions.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
