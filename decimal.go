package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal returns the amount as an exact decimal in major units:
// M(1001, "USD").Decimal() is 10.01.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// FromDecimal builds a Money from a decimal amount in major units.
// The decimal must carry at most two fractional digits (ErrInvalidCents)
// and fit in int64 cents (ErrOverflow); no rounding is ever applied.
func FromDecimal(d decimal.Decimal, currency string) (Money, error) {
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return Money{}, fmt.Errorf("amount %s has more than two fractional digits: %w", d, ErrInvalidCents)
	}
	if !cents.BigInt().IsInt64() {
		return Money{}, fmt.Errorf("amount %s: %w", d, ErrOverflow)
	}
	return Money{cents: cents.IntPart(), cur: currency}, nil
}

// Scale multiplies the amount by an exact decimal factor. The result is
// rounded half away from zero to whole cents.
func (m Money) Scale(q decimal.Decimal) (Money, error) {
	cents := decimal.New(m.cents, 0).Mul(q).Round(0)
	if !cents.BigInt().IsInt64() {
		return Money{}, fmt.Errorf("%s times %s: %w", m, q, ErrOverflow)
	}
	return Money{cents: cents.IntPart(), cur: m.cur}, nil
}
