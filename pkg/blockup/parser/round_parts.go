package parser

import (
	"strings"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
	"github.com/ukaji3/blockup-go/pkg/blockup/rates"
)

// ExtractRoundParts builds round-part records with their CG rate. The L/DIA
// column is the diameter and the width column is the length.
func ExtractRoundParts(rows []models.RawRow) ([]models.RoundPart, []models.Issue) {
	var parts []models.RoundPart
	var issues []models.Issue

	for _, r := range rows {
		part := models.RoundPart{Part: partFromRow(r)}

		code := strings.ToUpper(part.ItemCode)
		diameter := ParseNumber(r.Cell(models.ColLengthOrDiameter))
		length := ParseNumber(r.Cell(models.ColWidth))

		if !diameter.Valid && !rates.IsGBCode(code) {
			issues = append(issues, nonNumeric(models.CategoryRoundParts, r.R, "diameter"))
		}
		if !length.Valid {
			issues = append(issues, nonNumeric(models.CategoryRoundParts, r.R, "length"))
		}

		rate, matched := rates.RoundRate(code, diameter, length)
		if !matched && diameter.Valid && length.Valid {
			issues = append(issues, models.Issue{
				Kind:     models.IssueRateTableExhaustion,
				Category: models.CategoryRoundParts,
				Row:      r.R,
				Field:    "cg_rate",
				Detail:   "diameter " + diameter.Decimal.String() + " length " + length.Decimal.String() + " outside the standard table",
			})
		}
		part.CGRate = rate.Round(2)

		parts = append(parts, part)
	}

	return parts, issues
}
