package invtrack

import "github.com/shopspring/decimal"

// Quantity is a unit count: shares, fund parts, coins, or a deposit principal.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from any numeric value.
func Q[T float32 | float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) IsPositive() bool      { return q.value.IsPositive() }
func (q Quantity) String() string        { return q.value.String() }

// Decimal returns the raw decimal value.
func (q Quantity) Decimal() decimal.Decimal { return q.value }
