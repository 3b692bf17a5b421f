package folio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value for display purposes.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
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
	}
	return decimal.Zero
}

func (m Money) Currency() string  { return m.cur }
func (m Money) IsZero() bool      { return m.value.IsZero() }
func (m Money) IsPositive() bool  { return m.value.IsPositive() }
func (m Money) Neg() Money        { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: m.cur} }
func (m Money) AsFloat() float64  { return m.value.InexactFloat64() }

// String returns the string representation of the money value,
// formatted with the currency conventions when the currency is known.
// Unknown currencies (including the mixed-currency sentinel) fall back
// to a plain "<value> <code>" form.
func (m Money) String() string {
	if cur := money.GetCurrency(m.cur); cur != nil {
		dec := m.value.Shift(int32(cur.Fraction))
		return cur.Formatter().Format(dec.Round(0).IntPart())
	}
	return m.value.Round(0).String() + " " + m.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return "-" + m.Neg().String()
}
