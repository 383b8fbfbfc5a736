package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tyildiz/invtrack/renderer"
)

type historyCmd struct {
	ticker string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display recorded asset value history" }
func (*historyCmd) Usage() string {
	return `ivt history [-t <ticker>]

  Displays the recorded daily values, for one asset or for all of them.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "asset ticker to report on, all assets by default")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.HistoryMarkdown(DecodeHistory(), c.ticker))
	return subcommands.ExitSuccess
}
