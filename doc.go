// Package money provides a small, exact monetary amount type.
//
// An amount is an integer number of subunits (cents) paired with a
// 3-character currency code, and reads and writes a single canonical
// textual form:
//
//	<dollars>.<two-digit-cents> <code>     e.g. "10.00 USD"
//
// The core functionalities include:
//   - Parsing: Parse accepts the canonical form (the fractional part may
//     be omitted, "10 USD" means "10.00 USD") and reports typed,
//     errors.Is-matchable failures.
//   - Formatting: String always renders exactly two fractional digits,
//     so parse and format round-trip.
//   - Arithmetic: Add sums amounts of the same currency with checked
//     64-bit arithmetic; mixing currencies is an error, never silent.
//   - Decimal interop: exact conversions to and from
//     shopspring/decimal values for callers that compute in decimals.
//
// Values are immutable; every operation returns a new value. The package
// serves as the foundational logic for the `mny` command-line tool.
package money
