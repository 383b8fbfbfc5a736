package invtrack

import (
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// ErrRateUnavailable reports that the foreign exchange rate could not be
// obtained. No meaningful valuation is possible without it, so callers must
// abort the run before writing anything.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// RateProvider quotes the conversion rate between two currencies.
type RateProvider interface {
	// Rate returns how many units of 'to' one unit of 'from' is worth.
	Rate(from, to string) (float64, error)
}

// Rates converts foreign amounts into the home currency. Each rate is fetched
// once per run and memoized; the cache lives no longer than the run itself so
// every run gets fresh quotes.
type Rates struct {
	home     string
	provider RateProvider
	cache    map[string]decimal.Decimal
}

// NewRates creates a run-scoped converter into the given home currency.
func NewRates(home string, provider RateProvider) *Rates {
	return &Rates{
		home:     home,
		provider: provider,
		cache:    make(map[string]decimal.Decimal),
	}
}

// Home returns the reporting currency.
func (r *Rates) Home() string { return r.home }

// Rate returns the conversion rate from the given currency to the home
// currency. The home currency converts at exactly 1.
func (r *Rates) Rate(currency string) (decimal.Decimal, error) {
	if currency == r.home || currency == "" {
		return decimal.NewFromInt(1), nil
	}
	if rate, ok := r.cache[currency]; ok {
		return rate, nil
	}
	quote, err := r.provider.Rate(currency, r.home)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s/%s: %v", ErrRateUnavailable, currency, r.home, err)
	}
	if quote <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %s/%s quoted %v", ErrRateUnavailable, currency, r.home, quote)
	}
	rate := decimal.NewFromFloat(quote)
	r.cache[currency] = rate
	log.Printf("rate %s/%s = %s", currency, r.home, rate)
	return rate, nil
}

// ToHome converts an amount into the home currency, applying the rate exactly
// once. Amounts already in home currency pass through untouched.
func (r *Rates) ToHome(m Money) (Money, error) {
	if m.Currency() == r.home || m.Currency() == "" {
		return M(m.Amount(), r.home), nil
	}
	rate, err := r.Rate(m.Currency())
	if err != nil {
		return Money{}, err
	}
	return m.Convert(rate, r.home), nil
}
