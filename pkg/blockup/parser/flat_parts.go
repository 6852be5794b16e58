package parser

import "github.com/ukaji3/blockup-go/pkg/blockup/models"

// ExtractFlatParts builds flat-part records. Flat parts carry no derived
// rate at extraction.
func ExtractFlatParts(rows []models.RawRow) []models.FlatPart {
	var parts []models.FlatPart
	for _, r := range rows {
		parts = append(parts, models.FlatPart{Part: partFromRow(r)})
	}
	return parts
}
