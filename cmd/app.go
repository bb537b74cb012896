// Package cmd implements the CLI application to manage the shop ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sdiallo/boutique"
	"github.com/sdiallo/boutique/pkg/logger"
	"github.com/sdiallo/boutique/renderer"
	"go.uber.org/zap"
)

// Commands lists every subcommand of the tool.
// A main package registers them on a Commander and executes the selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&saleCmd{},
	&expenseCmd{},
	&editCmd{},
	&deleteCmd{},
	&logCmd{},
	&summaryCmd{},
	&monthlyCmd{},
	&productCmd{},
	&reportCmd{},
	&breakdownCmd{},
	&healthCmd{},
	&exportCmd{},
	&importCmd{},
	&resetCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("f", "", "Path to the data file. Defaults to $BOUTIQUE_FILE, then boutique.json.")
var verbose = flag.Bool("v", false, "Log diagnostics to stderr.")

// dataFilePath resolves the data file location: the -f flag wins, then the
// BOUTIQUE_FILE environment variable (a .env file in the working directory is
// honored), then the default boutique.json.
func dataFilePath() string {
	if *dataFile != "" {
		return *dataFile
	}
	// Missing .env files are the normal case.
	_ = godotenv.Load()
	if path := os.Getenv("BOUTIQUE_FILE"); path != "" {
		return path
	}
	return "boutique.json"
}

// appLogger returns the zap logger shared by the store and the manager.
// Diagnostics are opt-in: day-to-day use keeps stdout clean markdown.
func appLogger() *zap.Logger {
	if !*verbose {
		return zap.NewNop()
	}
	return logger.Must(logger.New())
}

// openStore opens the store over the resolved data file.
func openStore() *boutique.Store {
	log := appLogger()
	return boutique.NewStore(dataFilePath(), logger.Named(log, "store"))
}

// newManager builds the ledger manager every mutating command goes through.
func newManager() *boutique.Manager {
	log := appLogger()
	return boutique.NewManager(boutique.NewStore(dataFilePath(), logger.Named(log, "store")), logger.Named(log, "ledger"))
}

// printMarkdown renders a markdown string for the terminal.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(source)
		return
	}
	fmt.Print(out)
}

// printEntrySaved is the shared confirmation line of the mutating commands.
func printEntrySaved(verb string, e boutique.Entry) {
	fmt.Printf("%s %s entry %s: %s on %s\n", verb, e.Type, e.ID, e.Amount, e.Date)
}

// renderLog prints an entry listing with product names resolved.
func renderLog(entries []boutique.Entry) {
	doc := openStore().Load()
	printMarkdown(renderer.EntriesMarkdown(entries, doc.Stock))
}
