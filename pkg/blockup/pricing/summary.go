package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// Summarize totals a category's weight, rate and chamfer columns. Empty
// values count as zero. The grand total is set for main plates only.
func Summarize[R models.Record](c models.Category, records []R) models.CategorySummary {
	layout := models.LayoutFor(c)
	sum := models.CategorySummary{
		Category:      c,
		Count:         len(records),
		Weight:        decimal.Zero,
		Rate:          decimal.Zero,
		Chamfer:       decimal.Zero,
		RateColumn:    layout.RateColumn,
		ChamferColumn: layout.ChamferColumn,
	}

	for _, r := range records {
		costs := r.Costs()
		sum.Weight = sum.Weight.Add(orZero(r.Base().Weight))
		sum.Rate = sum.Rate.Add(orZero(costs.Rate))
		sum.Chamfer = sum.Chamfer.Add(orZero(costs.CornerChamfer))
	}

	sum.Weight = sum.Weight.Round(2)
	sum.Rate = sum.Rate.Round(2)
	sum.Chamfer = sum.Chamfer.Round(2)

	if c == models.CategoryMainPlates {
		sum.GrandTotal = decimal.NewNullDecimal(sum.Rate.Add(sum.Chamfer).Round(2))
	}
	return sum
}
