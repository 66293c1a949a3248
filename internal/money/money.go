// Package money handles presentation-boundary formatting. The aggregation
// engine works in raw numeric units; currency symbols, rounding and
// percent strings are applied only when rendering CSV/PDF output or
// invoice totals.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Currency struct {
	Code   string
	Symbol string
}

var (
	INR = Currency{"INR", "₹"}
	USD = Currency{"USD", "$"}
	EUR = Currency{"EUR", "€"}
	GBP = Currency{"GBP", "£"}
)

// FromProfile maps a profile currency string like "USD ($)" to a known
// currency. Unknown or empty strings default to INR.
func FromProfile(currency string) Currency {
	switch {
	case strings.Contains(currency, "USD"):
		return USD
	case strings.Contains(currency, "EUR"):
		return EUR
	case strings.Contains(currency, "GBP"):
		return GBP
	default:
		return INR
	}
}

// Format renders an amount with the currency symbol. Whole amounts drop
// the fraction; everything else keeps two decimal places.
func (c Currency) Format(amount float64) string {
	return c.Symbol + Plain(amount)
}

// Plain renders an amount with the whole/two-decimal rule but no symbol.
func Plain(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	if d.IsInteger() {
		return d.StringFixed(0)
	}
	return d.StringFixed(2)
}

// FormatPercent renders a ratio as a two-decimal percentage, e.g. "350.00%".
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// LineAmount computes an invoice line total, quantity × rate, rounded to
// two decimal places.
func LineAmount(quantity, rate float64) float64 {
	amt, _ := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(rate)).Round(2).Float64()
	return amt
}
