package parser

import (
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
	"github.com/xuri/excelize/v2"
)

// ReadRows reads the stored cell values of a sheet, ignoring number formats
// (2500 shown as "2,500" reads as "2500").
// It returns the non-empty rows in sheet order; R keeps the worksheet row.
func ReadRows(f *excelize.File, sheetName string) ([]models.RawRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return ToRawRows(rows), nil
}

// ToRawRows converts a grid of cell text into RawRows, dropping rows with no
// data.
func ToRawRows(rows [][]string) []models.RawRow {
	var result []models.RawRow
	for rowIdx, row := range rows {
		hasData := false
		for _, cellValue := range row {
			if cellValue != "" {
				hasData = true
				break
			}
		}
		if !hasData {
			continue
		}

		result = append(result, models.RawRow{
			R:     rowIdx + 1, // 1-based row index
			Cells: append([]string(nil), row...),
		})
	}
	return result
}
