package invtrack

import (
	"github.com/tyildiz/invtrack/date"
)

// AssetKind is a typed string identifying how an asset is valued.
type AssetKind string

// Asset kinds used in the registry.
const (
	KindStock   AssetKind = "stock"   // market-quoted equity
	KindCrypto  AssetKind = "crypto"  // market-quoted coin
	KindForex   AssetKind = "forex"   // market-quoted currency position
	KindFund    AssetKind = "fund"    // fund with a published net asset value
	KindDeposit AssetKind = "deposit" // interest-accruing time deposit
	KindManual  AssetKind = "manual"  // valued only by a declared amount
)

// Asset is one row of the registry. Exactly one valuation path applies
// per variant; a Manual wrapper takes precedence over any of them.
type Asset interface {
	Kind() AssetKind
	Ticker() string
	Currency() string // quotation currency of prices and purchase cost
}

type baseAsset struct {
	kind     AssetKind
	ticker   string
	currency string
}

func (a baseAsset) Kind() AssetKind  { return a.kind }
func (a baseAsset) Ticker() string   { return a.ticker }
func (a baseAsset) Currency() string { return a.currency }

// MarketAsset is a stock, crypto coin or FX-spot position priced from the
// market-data provider.
type MarketAsset struct {
	baseAsset
	Quantity Quantity
	UnitCost Money // purchase price per unit, in the quotation currency
}

// NewMarketAsset creates a market-quoted asset. kind must be one of
// KindStock, KindCrypto or KindForex.
func NewMarketAsset(kind AssetKind, ticker, currency string, quantity Quantity, unitCost Money) MarketAsset {
	return MarketAsset{
		baseAsset: baseAsset{kind: kind, ticker: ticker, currency: currency},
		Quantity:  quantity,
		UnitCost:  unitCost,
	}
}

// FundAsset is a fund position priced from the fund-price provider.
// Fund prices are published per calendar day with gaps on non-trading days.
type FundAsset struct {
	baseAsset
	Quantity Quantity
	UnitCost Money
}

// NewFundAsset creates a fund-quoted asset.
func NewFundAsset(ticker, currency string, quantity Quantity, unitCost Money) FundAsset {
	return FundAsset{
		baseAsset: baseAsset{kind: KindFund, ticker: ticker, currency: currency},
		Quantity:  quantity,
		UnitCost:  unitCost,
	}
}

// DepositAsset is a time deposit accruing simple daily interest.
type DepositAsset struct {
	baseAsset
	Principal  Money   // in the quotation currency
	AnnualRate Percent // yearly interest, e.g. Percent(12) for 12%
	Start      date.Date
}

// NewDepositAsset creates an interest-accruing deposit.
func NewDepositAsset(ticker, currency string, principal Money, rate Percent, start date.Date) DepositAsset {
	return DepositAsset{
		baseAsset:  baseAsset{kind: KindDeposit, ticker: ticker, currency: currency},
		Principal:  principal,
		AnnualRate: rate,
		Start:      start,
	}
}

// StaticAsset has no price source at all. Without a Manual wrapper its
// current value is zero; the cost side is still computed from the registry.
type StaticAsset struct {
	baseAsset
	Quantity Quantity
	UnitCost Money
}

// NewStaticAsset creates an asset that is only ever valued by hand.
func NewStaticAsset(ticker, currency string, quantity Quantity, unitCost Money) StaticAsset {
	return StaticAsset{
		baseAsset: baseAsset{kind: KindManual, ticker: ticker, currency: currency},
		Quantity:  quantity,
		UnitCost:  unitCost,
	}
}

// Manual wraps any asset variant with a declared current value, overriding
// its normal valuation path. The declared cost is already in the home
// currency, mirroring how it is kept in the registry.
type Manual struct {
	Asset
	Value Money // declared current value, in the asset's quotation currency
	Cost  Money // declared total cost, in the home currency; zero when absent
}

// NewManual wraps an asset with a declared value and cost.
func NewManual(inner Asset, value, cost Money) Manual {
	return Manual{Asset: inner, Value: value, Cost: cost}
}
