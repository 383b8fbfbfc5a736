// Package cmd implements the CLI application to track a personal portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/tyildiz/invtrack"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&insightsCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var registryFile = flag.String("registry", "portfolio.csv", "Path to the asset registry file (CSV format)")
var logFile = flag.String("log", "history.jsonl", "Path to the value history file (JSONL format)")
var homeCurrency = flag.String("currency", "TRY", "Reporting currency for all values")

// DecodeAssets reads the asset registry from the app registry file. The
// registry is the single source of truth: without it there is nothing to do.
func DecodeAssets() ([]invtrack.Asset, error) {
	f, err := os.Open(*registryFile)
	if err != nil {
		return nil, fmt.Errorf("could not open registry file %q: %w", *registryFile, err)
	}
	defer f.Close()
	return invtrack.DecodeRegistry(f, *homeCurrency)
}

// DecodeHistory reads the value history from the app log file. A missing or
// corrupt history is not fatal: the run proceeds with an empty one, it only
// costs the trailing returns.
func DecodeHistory() *invtrack.Log {
	f, err := os.Open(*logFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning, cannot open history file %q (%v), starting empty", *logFile, err)
		}
		return invtrack.NewLog()
	}
	defer f.Close()

	l, err := invtrack.DecodeLog(f)
	if err != nil {
		log.Printf("warning, cannot decode history file %q (%v), starting empty", *logFile, err)
		return invtrack.NewLog()
	}
	return l
}

// EncodeHistory writes the whole value history back to the app log file.
func EncodeHistory(l *invtrack.Log) error {
	f, err := os.Create(*logFile)
	if err != nil {
		return fmt.Errorf("could not create history file %q: %w", *logFile, err)
	}
	if err := invtrack.EncodeLog(f, l); err != nil {
		f.Close()
		return fmt.Errorf("could not write history file %q: %w", *logFile, err)
	}
	return f.Close()
}

// printMarkdown renders a markdown document nicely on the terminal, falling
// back to the raw text when the terminal renderer fails.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
