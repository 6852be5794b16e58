package output

import (
	"testing"

	"github.com/ukaji3/blockup-go/pkg/blockup"
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// rows numbers a grid of cells from row 1.
func rows(grid ...[]string) []models.RawRow {
	out := make([]models.RawRow, len(grid))
	for i, cells := range grid {
		out[i] = models.RawRow{R: i + 1, Cells: cells}
	}
	return out
}

func fixtureSheet(t *testing.T) *models.CostSheet {
	t.Helper()

	bom := rows(
		[]string{"WO.NO: 1234 : X"},
		[]string{"MAIN PLATES"},
		[]string{"Detail No", "ITEM CODE", "Description", "L", "W", "T", "Qty", "MATERIAL", "Weight"},
		[]string{"1", "PL-01", "Plate", "1000", "500", "20", "2", "MS", "78.5"},
		[]string{"2", "DT-5 PLATE", "Plate DT", "1200", "300", "80", "1", "MS", "10.123"},
		[]string{"VAP ROUND PARTS"},
		[]string{"3", "GB-10", "Bush", "60", "100", "", "4", "EN8", "3.2"},
		[]string{"4", "PIN", "Pin", "40", "150", "", "2", "EN8", "1"},
		[]string{"VAP FLAT PARTS"},
		[]string{"5", "FL", "Flat", "200", "100", "10", "1", "MS", "1.5"},
	)
	checklist := rows(
		[]string{"1", "", "", "", "", "", "", "", "", "", "", "", "10"},
		[]string{"2", "", "", "", "", "", "", "", "", "", "", "", "80x45"},
	)

	sheet := blockup.Process(bom, checklist, blockup.DefaultOptions())
	sheet.BookName = "fixture.xlsx"
	return sheet
}
