package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "₹0.00"},
		{"5.5", "₹5.50"},
		{"123.4", "₹123.40"},
		{"1234", "₹1,234.00"},
		{"123456", "₹1,23,456.00"},
		{"12345678.9", "₹1,23,45,678.90"},
		{"100000000", "₹10,00,00,000.00"},
		{"-1234.5", "-₹1,234.50"},
		{"-0.001", "₹0.00"},
		{"0.005", "₹0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := FormatINR(decimal.RequireFromString(tt.amount))
			if got != tt.expected {
				t.Errorf("FormatINR(%s) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatCurrencySymbol(t *testing.T) {
	got := FormatCurrency("Rs.", decimal.NewFromInt(1500))
	if got != "Rs.1,500.00" {
		t.Errorf("FormatCurrency = %q, expected %q", got, "Rs.1,500.00")
	}
}

func TestApplyIndianGrouping(t *testing.T) {
	tests := map[string]string{
		"":          "",
		"1":         "1",
		"999":       "999",
		"1000":      "1,000",
		"99999":     "99,999",
		"100000":    "1,00,000",
		"1234567":   "12,34,567",
		"123456789": "12,34,56,789",
	}
	for in, expected := range tests {
		if got := applyIndianGrouping(in); got != expected {
			t.Errorf("applyIndianGrouping(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestFixed(t *testing.T) {
	if got := fixed(decimal.NullDecimal{}); got != "" {
		t.Errorf("fixed(invalid) = %q, expected empty", got)
	}
	if got := fixed(decimal.NewNullDecimal(decimal.RequireFromString("7.1"))); got != "7.10" {
		t.Errorf("fixed(7.1) = %q, expected 7.10", got)
	}
}
