package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
	"github.com/tyildiz/invtrack"
)

// HistoryMarkdown renders the persisted value series. With a ticker it renders
// that asset's series only; otherwise every record, asset by asset.
func HistoryMarkdown(l *invtrack.Log, ticker string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if ticker != "" {
		doc.H1(fmt.Sprintf("History for %s", ticker))
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Date", "Value"},
			Rows:   [][]string{},
		}
		if h := l.History(ticker); h != nil {
			for on, v := range h.Values() {
				table.Rows = append(table.Rows, []string{on.String(), v.String()})
			}
		}
		doc.Table(table)
		return doc.String()
	}

	doc.H1("History")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Ticker", "Value"},
		Rows:   [][]string{},
	}
	for s := range l.Snapshots() {
		table.Rows = append(table.Rows, []string{s.Date.String(), s.Ticker, s.Value.String()})
	}
	doc.Table(table)
	return doc.String()
}

// SummaryMarkdown renders the last persisted day without touching any
// provider: one row per asset plus the day's total.
func SummaryMarkdown(l *invtrack.Log) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	on := l.LatestDay()
	if on.IsZero() {
		doc.H1("Summary")
		doc.PlainText("No history recorded yet.")
		return doc.String()
	}

	doc.H1(fmt.Sprintf("Summary for %s", on))
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Value"},
		Rows:   [][]string{},
	}
	total := decimal.Zero
	for _, s := range l.Day(on) {
		table.Rows = append(table.Rows, []string{s.Ticker, s.Value.String()})
		total = total.Add(s.Value)
	}
	doc.Table(table)
	doc.PlainTextf("Total: %s", total.String())
	return doc.String()
}
