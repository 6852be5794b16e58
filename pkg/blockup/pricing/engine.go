// Package pricing computes part costs and category totals.
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
	"github.com/ukaji3/blockup-go/pkg/blockup/parser"
	"github.com/ukaji3/blockup-go/pkg/blockup/rates"
)

// Engine prices extracted records. Every method returns new records
// computed from the extracted columns only, so pricing a record twice gives
// the same amounts.
type Engine struct {
	// PriceFlatParts applies the main-plate cost formula to flat parts.
	// Flat parts are listed without a cost when false.
	PriceFlatParts bool
}

// MainPlates prices main plates by area, thickness and DT-5 variant.
func (e Engine) MainPlates(plates []models.MainPlate) ([]models.MainPlate, []models.Issue) {
	out := make([]models.MainPlate, 0, len(plates))
	var issues []models.Issue
	for _, p := range plates {
		var found []models.Issue
		p.Costing, found = areaCosting(p.Part, p.CornerChamfer, models.CategoryMainPlates)
		issues = append(issues, found...)
		out = append(out, p)
	}
	return out, issues
}

// RoundParts totals round parts without costing them; their CG rate is
// set at extraction.
func (e Engine) RoundParts(parts []models.RoundPart) []models.RoundPart {
	out := make([]models.RoundPart, 0, len(parts))
	for _, p := range parts {
		p.Costing = skipCosting(p.CornerChamfer)
		out = append(out, p)
	}
	return out
}

// FlatParts totals flat parts, costing them only when PriceFlatParts is set.
func (e Engine) FlatParts(parts []models.FlatPart) ([]models.FlatPart, []models.Issue) {
	out := make([]models.FlatPart, 0, len(parts))
	var issues []models.Issue
	for _, p := range parts {
		if e.PriceFlatParts {
			var found []models.Issue
			p.Costing, found = areaCosting(p.Part, p.CornerChamfer, models.CategoryFlatParts)
			issues = append(issues, found...)
		} else {
			p.Costing = skipCosting(p.CornerChamfer)
		}
		out = append(out, p)
	}
	return out, issues
}

// areaCosting prices a plate when its length, width and thickness are all
// numbers; otherwise the rate stays empty.
func areaCosting(p models.Part, chamfer decimal.NullDecimal, c models.Category) (models.Costing, []models.Issue) {
	costing := models.Costing{CornerChamfer: chamfer}

	length := parser.ParseNumber(p.Length)
	width := parser.ParseNumber(p.Width)
	thickness := parser.ParseNumber(p.Thickness)

	var issues []models.Issue
	for _, dim := range []struct {
		field string
		value decimal.NullDecimal
	}{
		{"length", length},
		{"width", width},
		{"thickness", thickness},
	} {
		if !dim.value.Valid {
			issues = append(issues, models.Issue{
				Kind:     models.IssueNonNumericField,
				Category: c,
				Row:      p.Row,
				Field:    dim.field,
				Detail:   "rate left empty, " + dim.field + " is not a number",
			})
		}
	}

	if len(issues) == 0 {
		dt5 := rates.IsDT5(p.ItemCode)
		unit := rates.MainPlateUnitRate(length.Decimal, thickness.Decimal, dt5)
		cost := rates.MainPlateCost(length.Decimal, width.Decimal, thickness.Decimal, unit, dt5)
		costing.UnitRate = decimal.NewNullDecimal(unit)
		costing.Rate = decimal.NewNullDecimal(cost.Round(2))
	}

	costing.Total = Total(costing.CornerChamfer, costing.Rate)
	return costing, issues
}

// skipCosting leaves the rate empty and totals what is present.
func skipCosting(chamfer decimal.NullDecimal) models.Costing {
	return models.Costing{
		CornerChamfer: chamfer,
		Total:         Total(chamfer, decimal.NullDecimal{}),
	}
}

// Total adds chamfer and rate, counting missing values as zero, rounded to
// 2 places.
func Total(chamfer, rate decimal.NullDecimal) decimal.Decimal {
	return orZero(chamfer).Add(orZero(rate)).Round(2)
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
