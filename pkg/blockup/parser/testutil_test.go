package parser

import "github.com/ukaji3/blockup-go/pkg/blockup/models"

// rows numbers a grid of cells from row 1.
func rows(grid ...[]string) []models.RawRow {
	out := make([]models.RawRow, len(grid))
	for i, cells := range grid {
		out[i] = models.RawRow{R: i + 1, Cells: cells}
	}
	return out
}

// checklistRow puts a detail number and chamfer descriptor at their
// checklist columns.
func checklistRow(key, chamfer string) []string {
	cells := make([]string, int(models.ChecklistChamferColumn)+1)
	cells[models.ChecklistKeyColumn] = key
	cells[models.ChecklistChamferColumn] = chamfer
	return cells
}
