package invtrack

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tyildiz/invtrack/date"
)

// ErrPriceUnavailable reports that a market or fund price is missing for one
// asset. It is recoverable: the asset's value degrades to zero for the run.
var ErrPriceUnavailable = errors.New("price unavailable")

// QuoteProvider supplies the latest close price for a market-quoted symbol.
type QuoteProvider interface {
	LatestClose(symbol string) (float64, error)
}

// FundProvider supplies the published net-asset-value price of a fund for a
// single calendar day.
type FundProvider interface {
	PriceOn(code string, day date.Date) (float64, error)
}

// fundLookback is how many calendar days PriceOn is retried backwards to skip
// week-ends and holidays.
const fundLookback = 5

// Valuator computes the current value and total cost of a single asset in the
// home currency. Price failures degrade that asset to a zero value; only a
// missing exchange rate is fatal.
type Valuator struct {
	Quotes QuoteProvider
	Funds  FundProvider
	Rates  *Rates

	// On is the valuation day; the zero value means today.
	On date.Date

	// Throttle is an optional pause before each provider call, to stay
	// below upstream call-rate limits.
	Throttle time.Duration
}

// Valuation is the outcome of valuing one asset, everything in home currency.
type Valuation struct {
	Ticker string
	Value  Money
	Cost   Money
}

// ProfitLoss is the current value minus the total cost.
func (v Valuation) ProfitLoss() Money { return v.Value.Sub(v.Cost) }

func (v *Valuator) day() date.Date {
	if v.On.IsZero() {
		return date.Today()
	}
	return v.On
}

func (v *Valuator) pause() {
	if v.Throttle > 0 {
		time.Sleep(v.Throttle)
	}
}

// Value computes the valuation for one asset. The returned error is reserved
// for run-fatal conditions (ErrRateUnavailable); everything else is contained
// to the asset and logged.
func (v *Valuator) Value(a Asset) (Valuation, error) {
	switch asset := a.(type) {
	case Manual:
		return v.manual(asset)
	case MarketAsset:
		return v.market(asset)
	case FundAsset:
		return v.fund(asset)
	case DepositAsset:
		return v.deposit(asset)
	case StaticAsset:
		// No price source and no declared value: worth nothing this run.
		cost, err := v.Rates.ToHome(asset.UnitCost.Mul(asset.Quantity))
		if err != nil {
			return Valuation{}, err
		}
		return Valuation{Ticker: asset.Ticker(), Value: M(0, v.Rates.Home()), Cost: cost}, nil
	default:
		return Valuation{}, fmt.Errorf("unsupported asset variant %T for %q", a, a.Ticker())
	}
}

// manual takes the declared value, converted if quoted in a foreign currency.
// The declared cost is already in home currency.
func (v *Valuator) manual(a Manual) (Valuation, error) {
	value, err := v.Rates.ToHome(a.Value)
	if err != nil {
		return Valuation{}, err
	}
	cost := a.Cost
	if cost.Currency() == "" {
		cost = M(0, v.Rates.Home())
	}
	return Valuation{Ticker: a.Ticker(), Value: value, Cost: cost}, nil
}

func (v *Valuator) market(a MarketAsset) (Valuation, error) {
	cost, err := v.Rates.ToHome(a.UnitCost.Mul(a.Quantity))
	if err != nil {
		return Valuation{}, err
	}

	v.pause()
	price, perr := v.Quotes.LatestClose(a.Ticker())
	if perr != nil || price <= 0 {
		log.Printf("%v: no close for %s (%v), value degraded to 0", ErrPriceUnavailable, a.Ticker(), perr)
		return Valuation{Ticker: a.Ticker(), Value: M(0, v.Rates.Home()), Cost: cost}, nil
	}

	value, err := v.Rates.ToHome(M(price, a.Currency()).Mul(a.Quantity))
	if err != nil {
		return Valuation{}, err
	}
	return Valuation{Ticker: a.Ticker(), Value: value, Cost: cost}, nil
}

// fund asks the provider for the most recent published price, walking
// backward one calendar day at a time over non-trading days.
func (v *Valuator) fund(a FundAsset) (Valuation, error) {
	cost, err := v.Rates.ToHome(a.UnitCost.Mul(a.Quantity))
	if err != nil {
		return Valuation{}, err
	}

	price := 0.0
	for try, day := 0, v.day().Add(-1); try < fundLookback; try, day = try+1, day.Add(-1) {
		v.pause()
		p, perr := v.Funds.PriceOn(a.Ticker(), day)
		if perr == nil && p > 0 {
			price = p
			break
		}
	}
	if price <= 0 {
		log.Printf("%v: no fund price for %s in the last %d days, value degraded to 0",
			ErrPriceUnavailable, a.Ticker(), fundLookback)
		return Valuation{Ticker: a.Ticker(), Value: M(0, v.Rates.Home()), Cost: cost}, nil
	}

	value, err := v.Rates.ToHome(M(price, a.Currency()).Mul(a.Quantity))
	if err != nil {
		return Valuation{}, err
	}
	return Valuation{Ticker: a.Ticker(), Value: value, Cost: cost}, nil
}

// deposit accrues simple, non-compounding daily interest over whole elapsed
// days. A start date of today or later earns nothing yet.
func (v *Valuator) deposit(a DepositAsset) (Valuation, error) {
	days := 0
	if !a.Start.IsZero() {
		if d := v.day().DaysSince(a.Start); d > 0 {
			days = d
		}
	}
	// principal * annualRate/100/365 * days
	interest := a.Principal.Scale(
		decimal.NewFromFloat(float64(a.AnnualRate)).
			Div(decimal.NewFromInt(36500)).
			Mul(decimal.NewFromInt(int64(days))))
	value, err := v.Rates.ToHome(a.Principal.Add(interest))
	if err != nil {
		return Valuation{}, err
	}
	cost, err := v.Rates.ToHome(a.Principal)
	if err != nil {
		return Valuation{}, err
	}
	return Valuation{Ticker: a.Ticker(), Value: value, Cost: cost}, nil
}
