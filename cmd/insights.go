package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tyildiz/invtrack/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// insightsCmd asks Gemini to comment on the recorded portfolio history.
type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "ask the AI assistant about the portfolio" }
func (*insightsCmd) Usage() string {
	return `ivt insights [question...]

  Sends the recorded history to Gemini and prints its commentary. With no
  question it gives a general assessment of the recent evolution.
  Requires GEMINI_API_KEY in the environment (a .env file works too).
`
}

func (*insightsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := "How did this portfolio evolve recently, and is anything worth my attention?"
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	l := DecodeHistory()
	prompt := fmt.Sprintf(`You are a careful personal-finance assistant.
Below is the owner's recorded portfolio value history, in %s, as markdown.
Answer the question using only these figures; never invent prices.

%s

%s

Question: %s`, *homeCurrency, renderer.SummaryMarkdown(l), renderer.HistoryMarkdown(l, ""), question)

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating insights:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(result.Text())
	return subcommands.ExitSuccess
}
