package invtrack

import (
	"math"
	"testing"

	"github.com/tyildiz/invtrack/date"
)

var testDay = date.New(2025, 8, 23)

func testValuator(quotes stubQuotes, funds stubFunds, rates *Rates) *Valuator {
	return &Valuator{Quotes: quotes, Funds: funds, Rates: rates, On: testDay}
}

func TestValuator_MarketAsset(t *testing.T) {
	v := testValuator(stubQuotes{"THYAO": 120}, nil, usdRates(30))
	a := NewMarketAsset(KindStock, "THYAO", "TRY", Q(10), TRY(100))

	got, err := v.Value(a)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if want := TRY(1200); !got.Value.Equal(want) {
		t.Errorf("Value = %v, want %v", got.Value, want)
	}
	if want := TRY(1000); !got.Cost.Equal(want) {
		t.Errorf("Cost = %v, want %v", got.Cost, want)
	}
	if want := TRY(200); !got.ProfitLoss().Equal(want) {
		t.Errorf("ProfitLoss = %v, want %v", got.ProfitLoss(), want)
	}
}

func TestValuator_ForeignMarketAsset(t *testing.T) {
	// quantity 5, bought at 50 USD, now 60 USD, rate 30: conversion applied
	// exactly once on each side.
	v := testValuator(stubQuotes{"AAPL": 60}, nil, usdRates(30))
	a := NewMarketAsset(KindStock, "AAPL", "USD", Q(5), USD(50))

	got, err := v.Value(a)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if want := TRY(9000); !got.Value.Equal(want) {
		t.Errorf("Value = %v, want %v", got.Value, want)
	}
	if want := TRY(7500); !got.Cost.Equal(want) {
		t.Errorf("Cost = %v, want %v", got.Cost, want)
	}
}

func TestValuator_MissingPriceDegradesToZero(t *testing.T) {
	v := testValuator(stubQuotes{}, nil, usdRates(30))
	a := NewMarketAsset(KindStock, "GONE", "TRY", Q(10), TRY(100))

	got, err := v.Value(a)
	if err != nil {
		t.Fatalf("Value() error = %v, price failures must not abort the run", err)
	}
	if !got.Value.IsZero() {
		t.Errorf("Value = %v, want 0 for a missing price", got.Value)
	}
	// The cost side is still computed.
	if want := TRY(1000); !got.Cost.Equal(want) {
		t.Errorf("Cost = %v, want %v", got.Cost, want)
	}
}

func TestValuator_MissingRateIsFatal(t *testing.T) {
	v := testValuator(stubQuotes{"AAPL": 60}, nil, NewRates("TRY", &stubRates{}))
	a := NewMarketAsset(KindStock, "AAPL", "USD", Q(5), USD(50))

	if _, err := v.Value(a); err == nil {
		t.Error("Value() expected a fatal error for a missing exchange rate")
	}
}

func TestValuator_ManualOverride(t *testing.T) {
	// The declared value wins regardless of the wrapped variant, even though
	// a live quote exists.
	v := testValuator(stubQuotes{"BTC": 99999}, nil, usdRates(30))

	inner := NewMarketAsset(KindCrypto, "BTC", "USD", Q(1), USD(20000))
	a := NewManual(inner, USD(25000), TRY(600000))

	got, err := v.Value(a)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if want := TRY(750000); !got.Value.Equal(want) {
		t.Errorf("Value = %v, want %v (declared 25000 USD at 30)", got.Value, want)
	}
	// Declared cost is already home currency, taken as-is.
	if want := TRY(600000); !got.Cost.Equal(want) {
		t.Errorf("Cost = %v, want %v", got.Cost, want)
	}
}

func TestValuator_ManualOverrideHomeCurrency(t *testing.T) {
	v := testValuator(nil, nil, usdRates(30))
	a := NewManual(NewStaticAsset("HOUSE", "TRY", Q(1), TRY(0)), TRY(5000000), TRY(3000000))

	got, err := v.Value(a)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if want := TRY(5000000); !got.Value.Equal(want) {
		t.Errorf("Value = %v, want %v (no conversion for home currency)", got.Value, want)
	}
}

func TestValuator_Fund(t *testing.T) {
	t.Run("walks back over non-trading days", func(t *testing.T) {
		// Price published three days ago only; the walk must find it.
		funds := stubFunds{"AFT": {testDay.Add(-3): 2.5}}
		v := testValuator(nil, funds, usdRates(30))
		a := NewFundAsset("AFT", "TRY", Q(1000), TRY(2))

		got, err := v.Value(a)
		if err != nil {
			t.Fatalf("Value() error = %v", err)
		}
		if want := TRY(2500); !got.Value.Equal(want) {
			t.Errorf("Value = %v, want %v", got.Value, want)
		}
		if want := TRY(2000); !got.Cost.Equal(want) {
			t.Errorf("Cost = %v, want %v", got.Cost, want)
		}
	})

	t.Run("gives up after the lookback window", func(t *testing.T) {
		// A price six days back is out of the 5-day walk.
		funds := stubFunds{"AFT": {testDay.Add(-6): 2.5}}
		v := testValuator(nil, funds, usdRates(30))
		a := NewFundAsset("AFT", "TRY", Q(1000), TRY(2))

		got, err := v.Value(a)
		if err != nil {
			t.Fatalf("Value() error = %v", err)
		}
		if !got.Value.IsZero() {
			t.Errorf("Value = %v, want 0 when no price is published in the window", got.Value)
		}
	})
}

func TestValuator_Deposit(t *testing.T) {
	rates := usdRates(30)

	t.Run("one year at 12%", func(t *testing.T) {
		v := testValuator(nil, nil, rates)
		a := NewDepositAsset("VADELI", "TRY", TRY(10000), Percent(12), testDay.Add(-365))

		got, err := v.Value(a)
		if err != nil {
			t.Fatalf("Value() error = %v", err)
		}
		// 10000 + 10000*0.12/365*365 = 11200, within rounding.
		if got, want, delta := got.Value.AsFloat(), 11200.0, 0.01; math.Abs(got-want) > delta {
			t.Errorf("Value = %v, want %v (within %v)", got, want, delta)
		}
		if want := TRY(10000); !got.Cost.Equal(want) {
			t.Errorf("Cost = %v, want %v", got.Cost, want)
		}
	})

	t.Run("starts today", func(t *testing.T) {
		v := testValuator(nil, nil, rates)
		a := NewDepositAsset("VADELI", "TRY", TRY(10000), Percent(12), testDay)

		got, err := v.Value(a)
		if err != nil {
			t.Fatalf("Value() error = %v", err)
		}
		if want := TRY(10000); !got.Value.Equal(want) {
			t.Errorf("Value = %v, want exactly the principal on day zero", got.Value)
		}
	})

	t.Run("starts in the future", func(t *testing.T) {
		v := testValuator(nil, nil, rates)
		a := NewDepositAsset("VADELI", "TRY", TRY(10000), Percent(12), testDay.Add(10))

		got, err := v.Value(a)
		if err != nil {
			t.Fatalf("Value() error = %v", err)
		}
		if want := TRY(10000); !got.Value.Equal(want) {
			t.Errorf("Value = %v, want the principal for a future start", got.Value)
		}
	})

	t.Run("monotonically non-decreasing in elapsed days", func(t *testing.T) {
		prev := 0.0
		for days := 0; days <= 100; days += 10 {
			v := testValuator(nil, nil, rates)
			a := NewDepositAsset("VADELI", "TRY", TRY(10000), Percent(12), testDay.Add(-days))
			got, err := v.Value(a)
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if f := got.Value.AsFloat(); f < prev {
				t.Fatalf("value decreased from %v to %v at %d days", prev, f, days)
			} else {
				prev = f
			}
		}
	})
}

func TestValuator_StaticAssetWithoutOverride(t *testing.T) {
	v := testValuator(nil, nil, usdRates(30))
	a := NewStaticAsset("ART", "TRY", Q(2), TRY(500))

	got, err := v.Value(a)
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if !got.Value.IsZero() {
		t.Errorf("Value = %v, want 0 without a declared value", got.Value)
	}
	if want := TRY(1000); !got.Cost.Equal(want) {
		t.Errorf("Cost = %v, want %v", got.Cost, want)
	}
}
