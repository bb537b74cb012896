package boutique

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Currency is the single bookkeeping currency. West-African CFA francs have
// no fractional unit, so every amount is a whole number.
const Currency = "XOF"

// Money represents a monetary amount in the bookkeeping currency.
type Money struct {
	value decimal.Decimal
}

// M builds a Money amount from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		return decimal.Zero
	}
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MulInt scales the amount by a unit count.
func (m Money) MulInt(n int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))}
}

// DivInt divides the amount by a unit count, rounded to the nearest whole franc.
func (m Money) DivInt(n int) Money {
	if n == 0 {
		return Money{}
	}
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n))).Round(0)}
}

// AsFloat returns the amount as a float64 for ratio computations; exactness
// is only required on stored amounts, not on derived signals.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// String formats the amount with the XOF currency formatter.
func (m Money) String() string {
	cur := *money.New(0, Currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the amount with an explicit sign, or "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(0).MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
