package parser

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
	"github.com/ukaji3/blockup-go/pkg/blockup/rates"
)

// ExtractMainPlates builds main-plate records from the section's part rows,
// taking each plate's chamfer descriptor from the first checklist row with
// the same detail number.
func ExtractMainPlates(rows, checklist []models.RawRow) ([]models.MainPlate, []models.Issue) {
	var plates []models.MainPlate
	var issues []models.Issue

	for _, r := range rows {
		plate := models.MainPlate{Part: partFromRow(r)}

		if match, ok := findChecklistRow(checklist, plate.DetailNo); ok {
			plate.ChamferDescriptor = match.Cell(models.ChecklistChamferColumn)
			plate.ChecklistMatched = true
		} else {
			issues = append(issues, models.Issue{
				Kind:     models.IssueUnmatchedChecklistRow,
				Category: models.CategoryMainPlates,
				Row:      r.R,
				Field:    "detail_no",
				Detail:   "no checklist row for detail " + plate.DetailNo,
			})
		}

		plate.CornerChamfer = ChamferCost(plate.ChamferDescriptor, ParseNumber(plate.Thickness))
		if !plate.CornerChamfer.Valid && strings.TrimSpace(plate.ChamferDescriptor) != "" {
			issues = append(issues, models.Issue{
				Kind:     models.IssueRateTableExhaustion,
				Category: models.CategoryMainPlates,
				Row:      r.R,
				Field:    "corner_chamfer",
				Detail:   "no chamfer bracket for " + plate.ChamferDescriptor,
			})
		}

		plates = append(plates, plate)
	}

	return plates, issues
}

// ChamferCost prices a chamfer descriptor such as "10" or "5x45" for a plate
// of the given thickness. The leading integer of the descriptor is the
// chamfer size.
func ChamferCost(descriptor string, thickness decimal.NullDecimal) decimal.NullDecimal {
	size, ok := ParseInt(strings.ToLower(descriptor))
	return rates.ChamferRate(size, ok, thickness)
}

// findChecklistRow returns the first checklist row keyed by detailNo.
func findChecklistRow(checklist []models.RawRow, detailNo string) (models.RawRow, bool) {
	for _, r := range checklist {
		if sameKey(r.Cell(models.ChecklistKeyColumn), detailNo) {
			return r, true
		}
	}
	return models.RawRow{}, false
}

// sameKey compares detail numbers as text, or as numbers when both cells
// are plain numbers ("7" matches "7.0").
func sameKey(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	return errA == nil && errB == nil && da.Equal(db)
}
