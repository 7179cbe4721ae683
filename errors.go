package money

import "errors"

// Sentinel errors returned by Parse, Add and the decimal conversions.
// Callers match them with errors.Is; the messages they are wrapped in
// carry the offending input.
var (
	// ErrInvalidFormat reports an input that does not split into an
	// amount and a currency, or an amount with more than one '.'.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidCents reports a fractional part that is not exactly two
	// characters long.
	ErrInvalidCents = errors.New("invalid cents")

	// ErrInvalidCurrency reports a currency code that is not exactly
	// three characters long.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidNumber reports a dollars or cents part that is not a
	// base-10 integer.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrCurrencyMismatch reports an operation mixing two currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrOverflow reports an amount that does not fit in int64 cents.
	ErrOverflow = errors.New("amount overflow")
)
