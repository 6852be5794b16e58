package parser

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// partFromRow reads the shared columns of a bill-of-materials row.
func partFromRow(r models.RawRow) models.Part {
	return models.Part{
		Row:         r.R,
		DetailNo:    r.Cell(models.ColDetailNo),
		ItemCode:    r.Cell(models.ColItemCode),
		Description: r.Cell(models.ColDescription),
		Length:      r.Cell(models.ColLengthOrDiameter),
		Width:       r.Cell(models.ColWidth),
		Thickness:   r.Cell(models.ColThickness),
		Quantity:    r.Cell(models.ColQuantity),
		Material:    r.Cell(models.ColMaterial),
		Weight:      round2(ParseNumber(r.Cell(models.ColWeight))),
	}
}

func round2(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NewNullDecimal(d.Decimal.Round(2))
}

func nonNumeric(c models.Category, row int, field string) models.Issue {
	return models.Issue{
		Kind:     models.IssueNonNumericField,
		Category: c,
		Row:      row,
		Field:    field,
		Detail:   field + " is not a number",
	}
}
