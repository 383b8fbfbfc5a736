package invtrack

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/tyildiz/invtrack/date"
)

// Snapshot is one persisted history record: the value of one asset, in home
// currency, on one calendar day.
type Snapshot struct {
	Date   date.Date       `json:"date"`
	Ticker string          `json:"ticker"`
	Value  decimal.Decimal `json:"value"`
}

// Log is the historical record of daily asset values. It holds at most one
// value per (date, ticker) pair; appending over an existing pair replaces it.
// The engine treats it as append-only: days are replaced wholesale, never
// edited in place.
type Log struct {
	byTicker map[string]*date.History[decimal.Decimal]
	tickers  []string // first-seen order, for stable encoding
}

// NewLog returns an empty history log.
func NewLog() *Log {
	return &Log{byTicker: make(map[string]*date.History[decimal.Decimal])}
}

// Append records one snapshot, replacing any existing value at the same
// (date, ticker).
func (l *Log) Append(s Snapshot) {
	h, ok := l.byTicker[s.Ticker]
	if !ok {
		h = new(date.History[decimal.Decimal])
		l.byTicker[s.Ticker] = h
		l.tickers = append(l.tickers, s.Ticker)
	}
	h.Append(s.Date, s.Value)
}

// ReplaceDay removes every record on the given day and then appends the new
// snapshots. Re-running on the same day is therefore idempotent: the day ends
// up holding exactly the given snapshots.
func (l *Log) ReplaceDay(on date.Date, snapshots []Snapshot) {
	for _, h := range l.byTicker {
		h.Delete(on)
	}
	for _, s := range snapshots {
		s.Date = on
		l.Append(s)
	}
}

// History returns the recorded series for one ticker, or nil when the asset
// has never been logged.
func (l *Log) History(ticker string) *date.History[decimal.Decimal] {
	return l.byTicker[ticker]
}

// Len returns the total number of records in the log.
func (l *Log) Len() int {
	n := 0
	for _, h := range l.byTicker {
		n += h.Len()
	}
	return n
}

// LatestDay returns the most recent day with at least one record.
func (l *Log) LatestDay() date.Date {
	var latest date.Date
	for _, h := range l.byTicker {
		if on, _ := h.Latest(); on.After(latest) {
			latest = on
		}
	}
	return latest
}

// Day returns all snapshots recorded on the given day, in first-seen ticker
// order.
func (l *Log) Day(on date.Date) []Snapshot {
	var snaps []Snapshot
	for _, ticker := range l.tickers {
		if v, ok := l.byTicker[ticker].Get(on); ok {
			snaps = append(snaps, Snapshot{Date: on, Ticker: ticker, Value: v})
		}
	}
	return snaps
}

// Snapshots iterates over every record, ticker by ticker in first-seen order,
// chronologically within each ticker.
func (l *Log) Snapshots() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for _, ticker := range slices.Clone(l.tickers) {
			for on, v := range l.byTicker[ticker].Values() {
				if !yield(Snapshot{Date: on, Ticker: ticker, Value: v}) {
					return
				}
			}
		}
	}
}
