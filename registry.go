package invtrack

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tyildiz/invtrack/date"
)

// The registry is a plain CSV sheet, one asset per row. Columns mirror the
// spreadsheet it is maintained in; numeric cells that do not parse are
// coerced to zero rather than failing the whole run.
const (
	colTicker      = "ticker"
	colType        = "asset_type"
	colQuantity    = "quantity"
	colPrice       = "purchase_price"
	colCurrency    = "currency"
	colRate        = "annual_interest_rate"
	colStart       = "start_date"
	colManualValue = "manual_current_value"
	colManualCost  = "manual_total_cost"
)

// DecodeRegistry reads all asset rows from a CSV stream. The home currency is
// needed because declared manual costs are kept in home currency in the sheet.
func DecodeRegistry(r io.Reader, home string) ([]Asset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read registry header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols[colTicker]; !ok {
		return nil, fmt.Errorf("registry is missing the %q column", colTicker)
	}

	var assets []Asset
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read registry line %d: %w", line, err)
		}
		row := registryRow{cols: cols, record: record}
		if row.text(colTicker) == "" {
			continue // blank filler row
		}
		assets = append(assets, row.asset(home))
	}
	return assets, nil
}

// registryRow wraps one CSV record with lenient typed accessors.
type registryRow struct {
	cols   map[string]int
	record []string
}

func (r registryRow) text(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// num coerces a cell to a decimal, defaulting to zero on anything unparseable.
func (r registryRow) num(col string) decimal.Decimal {
	s := r.text(col)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Printf("registry: ignoring unparseable %s %q for %s", col, s, r.text(colTicker))
		return decimal.Zero
	}
	return d
}

// asset builds the tagged variant for this row, wrapping it with a Manual
// override when a positive declared value is present.
func (r registryRow) asset(home string) Asset {
	ticker := r.text(colTicker)
	currency := strings.ToUpper(r.text(colCurrency))
	if currency == "" {
		currency = home
	}
	quantity := Q(r.num(colQuantity))
	unitCost := M(r.num(colPrice), currency)

	var a Asset
	switch kind := normalizeKind(r.text(colType)); kind {
	case KindStock, KindCrypto, KindForex:
		a = NewMarketAsset(kind, ticker, currency, quantity, unitCost)
	case KindFund:
		a = NewFundAsset(ticker, currency, quantity, unitCost)
	case KindDeposit:
		rate := Percent(r.num(colRate).InexactFloat64())
		start, err := date.Parse(r.text(colStart))
		if err != nil {
			log.Printf("registry: deposit %s has no usable start date (%v), accruing from today", ticker, err)
			start = date.Date{}
		}
		a = NewDepositAsset(ticker, currency, M(quantity.Decimal(), currency), rate, start)
	default:
		a = NewStaticAsset(ticker, currency, quantity, unitCost)
	}

	if manual := r.num(colManualValue); manual.IsPositive() {
		a = NewManual(a, M(manual, currency), M(r.num(colManualCost), home))
	}
	return a
}

// normalizeKind maps the free-form type cell to an asset kind. Labels from
// older sheets ("Stock (US)", "Fund (TEFAS)", "Time Deposit", "Döviz") are
// still understood.
func normalizeKind(label string) AssetKind {
	switch s := strings.ToLower(strings.TrimSpace(label)); {
	case strings.HasPrefix(s, "stock"):
		return KindStock
	case strings.HasPrefix(s, "crypto"):
		return KindCrypto
	case strings.HasPrefix(s, "forex"), strings.HasPrefix(s, "fx"), s == "döviz", s == "doviz":
		return KindForex
	case strings.HasPrefix(s, "fund"), strings.HasPrefix(s, "tefas"):
		return KindFund
	case strings.HasPrefix(s, "deposit"), strings.HasPrefix(s, "time deposit"), s == "vadeli":
		return KindDeposit
	case strings.HasPrefix(s, "manual"):
		return KindManual
	default:
		if s != "" {
			log.Printf("registry: unknown asset type %q, treating as manual-only", label)
		}
		return KindManual
	}
}
