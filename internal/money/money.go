// Package money formats decimal amounts for display in the configured
// currency. Arithmetic stays on decimal.Decimal; go-money is only consulted
// for currency metadata and formatting.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders an amount in the given ISO 4217 currency, e.g. "£1,250.00".
// An unknown code falls back to go-money's default currency handling.
func Format(amount decimal.Decimal, code string) string {
	cur := *money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.Round(0).IntPart())
}

// FormatSigned renders like Format but with an explicit "+" on positive
// amounts and "-" for zero, matching the run-comparison display.
func FormatSigned(amount decimal.Decimal, code string) string {
	if amount.IsZero() {
		return "-"
	}
	if amount.IsPositive() {
		return "+" + Format(amount, code)
	}
	return Format(amount, code)
}
