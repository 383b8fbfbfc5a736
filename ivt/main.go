// Command ivt values a personal investment portfolio and tracks its history.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tyildiz/invtrack/cmd"
)

func main() {
	// Provider credentials (GEMINI_API_KEY) live in a local .env file.
	godotenv.Load()

	// Install with: COMP_INSTALL=1 ivt
	completion().Complete("ivt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"run": {Flags: map[string]complete.Predictor{
				"d":        predict.Nothing,
				"throttle": predict.Nothing,
			}},
			"history": {Flags: map[string]complete.Predictor{
				"t": predict.Nothing,
			}},
			"summary":  {},
			"insights": {},
			"topic": {Args: predict.Set{
				"readme", "registry", "history", "returns",
			}},
		},
		Flags: map[string]complete.Predictor{
			"registry": predict.Files("*.csv"),
			"log":      predict.Files("*.jsonl"),
			"currency": predict.Set{"TRY", "USD", "EUR"},
		},
	}
}
