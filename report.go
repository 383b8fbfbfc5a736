package invtrack

import (
	"github.com/tyildiz/invtrack/date"
)

// Row is one asset's enriched result for the day: its valuation plus the
// trailing returns derived from prior history.
type Row struct {
	Valuation
	Returns Returns
}

// Totals aggregates the whole portfolio for one run.
type Totals struct {
	Value      Money
	Cost       Money
	ProfitLoss Money
	Return     Percent
}

// Report is the outcome of one daily run: per-asset rows, portfolio totals,
// and the day's snapshot ready to be merged into the history log.
type Report struct {
	On     date.Date
	Rows   []Row
	Totals Totals

	// Snapshot holds one record per asset for the day. It must be merged
	// into the persisted log with ReplaceDay so that same-day re-runs
	// replace rather than duplicate.
	Snapshot []Snapshot
}

// Tracker runs the valuation pipeline over the whole registry, one asset at a
// time in registry order.
type Tracker struct {
	Valuator *Valuator
}

// Run valuates every asset and derives its performance against the prior
// history. Performance never sees the values being computed in the same run:
// the day's snapshot is returned for the caller to merge afterwards.
//
// A missing exchange rate aborts immediately with no result; per-asset price
// failures have already been degraded to zero inside the Valuator.
func (t *Tracker) Run(assets []Asset, prior *Log) (*Report, error) {
	on := t.Valuator.day()
	home := t.Valuator.Rates.Home()

	report := &Report{
		On:     on,
		Totals: Totals{Value: M(0, home), Cost: M(0, home), ProfitLoss: M(0, home)},
	}

	for _, asset := range assets {
		valuation, err := t.Valuator.Value(asset)
		if err != nil {
			return nil, err
		}

		row := Row{
			Valuation: valuation,
			Returns:   PerformanceOf(prior, asset.Ticker(), on, valuation.Value),
		}
		report.Rows = append(report.Rows, row)

		report.Totals.Value = report.Totals.Value.Add(valuation.Value)
		report.Totals.Cost = report.Totals.Cost.Add(valuation.Cost)

		report.Snapshot = append(report.Snapshot, Snapshot{
			Date:   on,
			Ticker: asset.Ticker(),
			Value:  valuation.Value.Amount(),
		})
	}

	report.Totals.ProfitLoss = report.Totals.Value.Sub(report.Totals.Cost)
	if !report.Totals.Cost.IsZero() {
		report.Totals.Return = Percent(100 * report.Totals.ProfitLoss.AsFloat() / report.Totals.Cost.AsFloat())
	}
	return report, nil
}
