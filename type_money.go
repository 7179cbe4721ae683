package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Money represents a monetary value: a signed count of subunits (cents)
// and the 3-character code of its currency. Values are immutable.
type Money struct {
	cents int64
	cur   string
}

// M builds a Money directly from a subunit count and a currency code.
// It performs no validation; the code is stored as given. Use Parse for
// untrusted input.
func M(cents int64, currency string) Money {
	return Money{cents: cents, cur: currency}
}

// Parse reads the canonical form "<dollars>.<cc> <code>", e.g. "10.00 USD".
// The fractional part may be omitted ("10 USD" is "10.00 USD") but when
// present it must be exactly two digits. The currency must be exactly
// three characters; it is stored as given, without registry validation.
//
// A leading '-' on the dollars part applies to the whole amount:
// "-10.05 USD" is -1005 cents.
//
// Failures wrap one of the package sentinel errors, so callers can match
// them with errors.Is.
func Parse(input string) (Money, error) {
	amount, code, found := strings.Cut(input, " ")
	if !found || amount == "" || code == "" || strings.Contains(code, " ") {
		return Money{}, fmt.Errorf("%q does not split into an amount and a currency: %w", input, ErrInvalidFormat)
	}

	dollars, cents, found := strings.Cut(amount, ".")
	if !found {
		cents = "00"
	} else if strings.Contains(cents, ".") {
		return Money{}, fmt.Errorf("amount %q holds more than one '.': %w", amount, ErrInvalidFormat)
	}

	// The fractional length is checked before the currency length, so an
	// input broken on both counts reports the cents problem.
	if len(cents) != 2 {
		return Money{}, fmt.Errorf("fractional part %q in %q must be two digits: %w", cents, input, ErrInvalidCents)
	}
	if utf8.RuneCountInString(code) != 3 {
		return Money{}, fmt.Errorf("currency %q in %q must be a 3-character code: %w", code, input, ErrInvalidCurrency)
	}

	d, err := strconv.ParseInt(dollars, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Money{}, fmt.Errorf("dollars part %q in %q: %w", dollars, input, ErrOverflow)
		}
		return Money{}, fmt.Errorf("dollars part %q in %q: %w", dollars, input, ErrInvalidNumber)
	}
	c, ok := parseFraction(cents)
	if !ok {
		return Money{}, fmt.Errorf("fractional part %q in %q: %w", cents, input, ErrInvalidNumber)
	}

	// The sign belongs to the whole amount, not only to the dollars term.
	// "-0.50" carries a sign that ParseInt loses, hence the prefix check.
	neg := strings.HasPrefix(dollars, "-")
	if d == math.MinInt64 {
		return Money{}, fmt.Errorf("amount %q: %w", amount, ErrOverflow)
	}
	if d < 0 {
		d = -d
	}
	if d > (math.MaxInt64-c)/100 {
		return Money{}, fmt.Errorf("amount %q: %w", amount, ErrOverflow)
	}
	total := d*100 + c
	if neg {
		total = -total
	}
	return Money{cents: total, cur: code}, nil
}

// parseFraction parses a two-digit fractional part. strconv would accept
// a leading sign there, so both bytes are required to be digits.
func parseFraction(s string) (int64, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int64(s[0]-'0')*10 + int64(s[1]-'0'), true
}

// MustParse is the assume-valid constructor for trusted literals: it
// panics with the parse error on any failure. Production code paths
// should prefer Parse.
func MustParse(input string) Money {
	m, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the canonical form of the amount: an integer dollars
// part, a '.', exactly two fractional digits, a space and the currency
// code. Negative amounts carry a single leading '-' and keep the
// fractional digits non-negative: -5 cents is "-0.05".
func (m Money) String() string {
	sign, u := "", uint64(m.cents)
	if m.cents < 0 {
		// two's-complement absolute value, valid for MinInt64 too.
		sign, u = "-", uint64(-(m.cents+1))+1
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, u/100, u%100, m.cur)
}

// GoString renders the construction expression that reproduces the value,
// e.g. `money.MustParse("10.00 USD")`. It is the debug form printed by
// the %#v verb and only wraps the canonical String form.
func (m Money) GoString() string {
	return "money.MustParse(" + strconv.Quote(m.String()) + ")"
}

// Add returns the sum of two amounts of the same currency. Currencies
// must match exactly (byte equality, case-sensitive); the addition is
// checked and fails with ErrOverflow instead of wrapping around.
func (m Money) Add(n Money) (Money, error) {
	if m.cur != n.cur {
		return Money{}, fmt.Errorf("cannot add %s to %s: %w", n.cur, m.cur, ErrCurrencyMismatch)
	}
	sum := m.cents + n.cents
	if (m.cents > 0 && n.cents > 0 && sum < 0) || (m.cents < 0 && n.cents < 0 && sum >= 0) {
		return Money{}, fmt.Errorf("%s + %s: %w", m, n, ErrOverflow)
	}
	return Money{cents: sum, cur: m.cur}, nil
}

// Simple wrappers around the value.

func (m Money) Cents() int64       { return m.cents }
func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.cents == n.cents && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.cents == 0 }
func (m Money) IsPositive() bool   { return m.cents > 0 }
func (m Money) IsNegative() bool   { return m.cents < 0 }
func (m Money) Neg() Money         { return Money{cents: -m.cents, cur: m.cur} }

// MarshalText encodes the amount in its canonical string form.
func (m Money) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText decodes an amount from its canonical string form.
func (m *Money) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = p
	return nil
}
