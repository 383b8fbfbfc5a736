package invtrack

import (
	"github.com/tyildiz/invtrack/date"
)

// Window is a trailing lookback period, in calendar days.
type Window int

// The reported trailing windows.
const (
	Day   Window = 1
	Week  Window = 7
	Month Window = 30
)

// Windows lists the reported windows in display order.
var Windows = []Window{Day, Week, Month}

func (w Window) String() string {
	switch w {
	case Day:
		return "1D"
	case Week:
		return "1W"
	case Month:
		return "1M"
	default:
		return "?"
	}
}

// Performance holds the reference and current value for one trailing window.
// Its zero value reports zero change and zero return, which is exactly what an
// asset with no history must report.
type Performance struct {
	Reference, Current Money
}

// Change is the absolute return over the window.
func (p Performance) Change() Money { return p.Current.Sub(p.Reference) }

// Percent is the relative return over the window. A zero reference yields
// zero, never a division error.
func (p Performance) Percent() Percent {
	if p.Reference.IsZero() {
		return 0
	}
	return Percent(100 * p.Change().AsFloat() / p.Reference.AsFloat())
}

// Returns maps each trailing window to its performance.
type Returns map[Window]Performance

// PerformanceOf derives the trailing returns of one asset from its recorded
// history and its freshly computed current value.
//
// For each window the reference is the closest value on or before
// 'on - window' days: an exact match when one exists, otherwise the nearest
// earlier sample, never interpolated and never a future one. When the asset
// has history but none of it is that old, the oldest known value serves as a
// best-effort baseline, so young assets degrade to "compare against first
// known value". With no history at all, every window reports exactly zero.
func PerformanceOf(prior *Log, ticker string, on date.Date, current Money) Returns {
	returns := make(Returns, len(Windows))

	history := prior.History(ticker)
	if history == nil || history.Len() == 0 {
		for _, w := range Windows {
			returns[w] = Performance{}
		}
		return returns
	}

	for _, w := range Windows {
		target := on.Add(-int(w))
		value, ok := history.ValueAsOf(target)
		if !ok {
			_, value = history.Oldest()
		}
		returns[w] = Performance{
			Reference: M(value, current.Currency()),
			Current:   current,
		}
	}
	return returns
}
