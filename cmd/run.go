package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/tyildiz/invtrack"
	"github.com/tyildiz/invtrack/date"
	"github.com/tyildiz/invtrack/renderer"
	"github.com/tyildiz/invtrack/tefas"
	"github.com/tyildiz/invtrack/yahoo"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	date     string
	throttle time.Duration
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "value the whole portfolio and record today's snapshot" }
func (*runCmd) Usage() string {
	return `ivt run [-d <date>] [-throttle <duration>]

  Values every asset in the registry at current prices, reports the trailing
  returns against the recorded history, and records the day's values.
  Re-running on the same day replaces that day's records.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "valuation date (defaults to today)")
	f.DurationVar(&c.throttle, "throttle", 500*time.Millisecond, "pause between provider calls")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on date.Date
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid date %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	assets, err := DecodeAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading registry: %v\n", err)
		return subcommands.ExitFailure
	}

	prior := DecodeHistory()

	quotes := yahoo.New()
	tracker := &invtrack.Tracker{
		Valuator: &invtrack.Valuator{
			Quotes:   quotes,
			Funds:    tefas.New(),
			Rates:    invtrack.NewRates(*homeCurrency, quotes),
			On:       on,
			Throttle: c.throttle,
		},
	}

	report, err := tracker.Run(assets, prior)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	// The report is worth showing even if persisting fails afterwards.
	printMarkdown(renderer.ReportMarkdown(report))

	prior.ReplaceDay(report.On, report.Snapshot)
	if err := EncodeHistory(prior); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording history: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
