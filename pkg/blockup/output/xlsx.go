package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
	"github.com/xuri/excelize/v2"
)

// amountColumns are written as numbers rather than text.
var amountColumns = map[models.Column]bool{
	models.ColWeight:        true,
	models.ColRate:          true,
	models.ColCornerChamfer: true,
	models.ColTotal:         true,
}

// GenerateExcel writes one worksheet per category and returns the workbook
// contents.
func GenerateExcel(sheet *models.CostSheet, r Report, categories ...models.Category) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#F3F4F6"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, t := range BuildTables(sheet, r.Currency, categories...) {
		name := t.Title
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return nil, fmt.Errorf("set sheet name: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}

		if err := writeTable(f, name, sheet.WorkOrder, r, t, titleStyle, headerStyle, bodyStyle, totalStyle); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, name, workOrder string, r Report, t Table, titleStyle, headerStyle, bodyStyle, totalStyle int) error {
	lastCol, err := excelize.ColumnNumberToName(len(t.Headers))
	if err != nil {
		return fmt.Errorf("last column: %w", err)
	}

	if err := f.MergeCell(name, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(name, "A1", sanitizeExcelCell(r.Company+" - "+t.Title))
	f.SetCellStyle(name, "A1", lastCol+"1", titleStyle)
	f.SetCellValue(name, "A2", sanitizeExcelCell(WorkOrderLabel(workOrder)+" "+r.Title))

	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(name, cell, h)
	}
	f.SetCellStyle(name, "A4", lastCol+"4", headerStyle)

	rowNum := 5
	for _, cells := range t.Rows {
		writeCells(f, name, rowNum, t.Columns, cells)
		f.SetCellStyle(name, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), bodyStyle)
		rowNum++
	}

	if t.Totals != nil {
		for i, v := range t.Totals {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
			f.SetCellValue(name, cell, v)
		}
	} else {
		if err := f.MergeCell(name, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum)); err != nil {
			return fmt.Errorf("merge footer: %w", err)
		}
		f.SetCellValue(name, fmt.Sprintf("A%d", rowNum), t.Footer)
	}
	f.SetCellStyle(name, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), totalStyle)

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: printArea(name, lastCol, rowNum),
		Scope:    name,
	}); err != nil {
		return fmt.Errorf("set print area: %w", err)
	}
	landscape := "landscape"
	if err := f.SetPageLayout(name, &excelize.PageLayoutOptions{Orientation: &landscape}); err != nil {
		return fmt.Errorf("set page layout: %w", err)
	}

	for i, c := range t.Columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := 10.0
		if c == models.ColDescription || c == models.ColItemCode {
			width = 24
		}
		if err := f.SetColWidth(name, colName, colName, width); err != nil {
			return fmt.Errorf("set col width %s: %w", colName, err)
		}
	}
	return nil
}

// printArea returns the absolute reference of a sheet's used range, e.g.
// 'Main Plates'!$A$1:$M$9.
func printArea(sheet, lastCol string, lastRow int) string {
	return fmt.Sprintf("'%s'!$A$1:$%s$%d", sheet, lastCol, lastRow)
}

func writeCells(f *excelize.File, name string, rowNum int, cols []models.Column, cells []string) {
	for i, v := range cells {
		cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
		if amountColumns[cols[i]] && v != "" {
			if d, err := decimal.NewFromString(v); err == nil {
				f.SetCellValue(name, cell, d.InexactFloat64())
				continue
			}
		}
		f.SetCellValue(name, cell, sanitizeExcelCell(v))
	}
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
