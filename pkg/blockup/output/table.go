package output

import (
	"fmt"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// Table is a category rendered as text cells, restricted to its visible
// columns.
type Table struct {
	Category models.Category `json:"category"`
	Title    string          `json:"title"`
	Columns  []models.Column `json:"-"`
	Headers  []string        `json:"headers"`
	Rows     [][]string      `json:"rows"`
	// Totals is the main-plate totals row aligned with Headers; nil for
	// other categories.
	Totals []string `json:"totals,omitempty"`
	// Footer is the one-line summary of categories without a totals row.
	Footer string `json:"footer,omitempty"`
}

// BuildTables renders the given categories, or all of them when none are
// given.
func BuildTables(sheet *models.CostSheet, symbol string, categories ...models.Category) []Table {
	if len(categories) == 0 {
		categories = models.Categories
	}
	tables := make([]Table, 0, len(categories))
	for _, c := range categories {
		tables = append(tables, BuildTable(sheet, c, symbol))
	}
	return tables
}

// BuildTable renders one category of the sheet.
func BuildTable(sheet *models.CostSheet, c models.Category, symbol string) Table {
	layout := models.LayoutFor(c)
	cols := layout.Visible()

	t := Table{
		Category: c,
		Title:    c.Title(),
		Columns:  cols,
	}
	for _, col := range cols {
		t.Headers = append(t.Headers, layout.Headers[col])
	}

	for _, rec := range sheet.Records(c) {
		cells := recordCells(rec)
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = cells[col]
		}
		t.Rows = append(t.Rows, row)
	}

	sum, _ := sheet.Summary(c)
	if c == models.CategoryMainPlates {
		t.Totals = make([]string, len(cols))
		for i, col := range cols {
			switch col {
			case models.ColDetailNo:
				t.Totals[i] = "Total"
			case models.ColWeight:
				t.Totals[i] = sum.Weight.StringFixed(2)
			case sum.RateColumn:
				t.Totals[i] = FormatCurrency(symbol, sum.Rate)
			case sum.ChamferColumn:
				t.Totals[i] = FormatCurrency(symbol, sum.Chamfer)
			case models.ColTotal:
				t.Totals[i] = FormatCurrency(symbol, sum.GrandTotal.Decimal)
			}
		}
	} else {
		t.Footer = fmt.Sprintf("Total Parts: %d | Total Weight: %s", sum.Count, sum.Weight.StringFixed(2))
	}

	return t
}

// recordCells returns the text of every column of a record, indexed by
// models.Column.
func recordCells(rec models.Record) []string {
	p := rec.Base()
	costs := rec.Costs()

	cells := make([]string, int(models.ColTotal)+1)
	cells[models.ColDetailNo] = p.DetailNo
	cells[models.ColItemCode] = p.ItemCode
	cells[models.ColDescription] = p.Description
	cells[models.ColLengthOrDiameter] = p.Length
	cells[models.ColWidth] = p.Width
	cells[models.ColThickness] = p.Thickness
	cells[models.ColQuantity] = p.Quantity
	cells[models.ColMaterial] = p.Material
	cells[models.ColWeight] = fixed(p.Weight)
	cells[models.ColRate] = fixed(costs.Rate)
	cells[models.ColCornerChamfer] = fixed(costs.CornerChamfer)
	cells[models.ColTotal] = costs.Total.StringFixed(2)

	switch r := rec.(type) {
	case models.MainPlate:
		cells[models.ColBlockUpRate] = r.ChamferDescriptor
	case models.RoundPart:
		cells[models.ColCGRate] = r.CGRate.StringFixed(2)
	}
	return cells
}
