package services

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Money is an optional price in a request body. It accepts a JSON number,
// a numeric string, an empty string or null; the admin forms send prices
// straight from text inputs.
type Money struct {
	decimal.NullDecimal
}

func (m *Money) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		m.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	return m.NullDecimal.UnmarshalJSON(trimmed)
}

// OrZero returns the value, or zero when unset.
func (m Money) OrZero() decimal.Decimal {
	if !m.Valid {
		return decimal.Zero
	}
	return m.Decimal
}

func MoneyOf(d decimal.Decimal) Money {
	return Money{decimal.NewNullDecimal(d)}
}
