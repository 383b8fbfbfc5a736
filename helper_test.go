package invtrack

import (
	"errors"

	"github.com/tyildiz/invtrack/date"
)

// TRY and USD are shorthands for amounts in the test currencies.
func TRY(v float64) Money { return M(v, "TRY") }
func USD(v float64) Money { return M(v, "USD") }

// stubRates quotes fixed conversion rates, keyed by "FROMTO" pairs, and
// counts upstream calls to observe memoization.
type stubRates struct {
	quotes map[string]float64
	calls  int
}

func (s *stubRates) Rate(from, to string) (float64, error) {
	s.calls++
	if v, ok := s.quotes[from+to]; ok {
		return v, nil
	}
	return 0, errors.New("no quote")
}

// usdRates is a converter into TRY quoting USD at the given rate.
func usdRates(rate float64) *Rates {
	return NewRates("TRY", &stubRates{quotes: map[string]float64{"USDTRY": rate}})
}

// stubQuotes serves fixed close prices by symbol.
type stubQuotes map[string]float64

func (s stubQuotes) LatestClose(symbol string) (float64, error) {
	if v, ok := s[symbol]; ok {
		return v, nil
	}
	return 0, errors.New("unknown symbol")
}

// stubFunds serves fund prices per (code, day).
type stubFunds map[string]map[date.Date]float64

func (s stubFunds) PriceOn(code string, day date.Date) (float64, error) {
	if v, ok := s[code][day]; ok {
		return v, nil
	}
	return 0, errors.New("no price published")
}
