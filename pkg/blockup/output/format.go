// Package output renders priced cost sheets as JSON, PDF and Excel.
package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR formats an amount in Indian Rupee notation.
// It uses the Indian numbering system where, after the rightmost 3 digits,
// digits are grouped in pairs (e.g., ₹1,23,45,678.90).
func FormatINR(amount decimal.Decimal) string {
	return FormatCurrency("₹", amount)
}

// FormatCurrency formats an amount with 2 decimal places, Indian digit
// grouping and the given currency symbol.
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	negative := amount.IsNegative()
	raw := amount.Abs().StringFixed(2)

	parts := strings.SplitN(raw, ".", 2)
	result := symbol + applyIndianGrouping(parts[0]) + "." + parts[1]
	if negative && !amount.Round(2).IsZero() {
		result = "-" + result
	}
	return result
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}

// fixed formats an optional amount with 2 decimal places, or "" when absent.
func fixed(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
