package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tyildiz/invtrack/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the last recorded day without fetching anything" }
func (*summaryCmd) Usage() string {
	return `ivt summary

  Displays the most recent recorded values, straight from the history file.
  No provider is contacted, so it works offline.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.SummaryMarkdown(DecodeHistory()))
	return subcommands.ExitSuccess
}
