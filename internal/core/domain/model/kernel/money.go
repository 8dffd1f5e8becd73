package kernel

import (
	"strings"

	"pratofit/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for BRL amounts. It wraps shopspring/decimal so
// totals stay exact under repeated additions; all amounts are kept at a
// two-digit scale. The zero value is a valid R$ 0,00 — a delivery fee that
// has not been resolved yet is exactly that.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns R$ 0,00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromFloat builds a Money from a float amount, rounded to cents.
// Intended for static configuration values such as zone fees and kit prices.
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount).Round(2)}
}

// NewMoneyFromString parses a decimal string such as "85.00".
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: d.Round(2)}, nil
}

// Add returns the exact sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the exact difference of both amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual reports whether both amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// StringFixed renders the amount with a dot decimal separator and two
// fraction digits, e.g. "7.00".
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}

// BRL renders the amount in Brazilian currency format, e.g. "R$ 1.085,00".
func (m Money) BRL() string {
	fixed := m.amount.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
