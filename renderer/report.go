// Package renderer turns reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tyildiz/invtrack"
)

func ReportMarkdown(r *invtrack.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio on %s", r.On))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Value", "Cost", "Gain / Loss", "1D", "1W", "1M"},
		Rows:   [][]string{},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			row.Ticker,
			row.Value.String(),
			row.Cost.String(),
			row.ProfitLoss().SignedString(),
			row.Returns[invtrack.Day].Percent().SignedString(),
			row.Returns[invtrack.Week].Percent().SignedString(),
			row.Returns[invtrack.Month].Percent().SignedString(),
		})
	}
	doc.Table(table)

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Value"),
			md.Bold(r.Totals.Value.String()),
		},
		Rows: [][]string{
			{"Total Cost", r.Totals.Cost.String()},
			{"Gain / Loss", r.Totals.ProfitLoss.SignedString()},
			{"Return", r.Totals.Return.SignedString()},
		},
	})

	return doc.String()
}
