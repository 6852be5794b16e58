package models

import "github.com/shopspring/decimal"

// CategorySummary aggregates a category's records.
type CategorySummary struct {
	Category Category        `json:"category"`
	Count    int             `json:"count"`
	Weight   decimal.Decimal `json:"weight"`
	Rate     decimal.Decimal `json:"rate"`
	Chamfer  decimal.Decimal `json:"chamfer"`
	// GrandTotal is Rate plus Chamfer, set for main plates only.
	GrandTotal    decimal.NullDecimal `json:"grand_total"`
	RateColumn    Column              `json:"rate_column"`
	ChamferColumn Column              `json:"chamfer_column"`
}
