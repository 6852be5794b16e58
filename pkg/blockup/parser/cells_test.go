package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
	"github.com/xuri/excelize/v2"
)

func TestReadRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "MAIN PLATES")
	f.SetCellValue(sheetName, "A3", 1)
	f.SetCellValue(sheetName, "B3", "PL-01")
	f.SetCellValue(sheetName, "D3", 200.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ReadRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	// The empty second row is dropped
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].R != 1 || rows[1].R != 3 {
		t.Errorf("Expected rows 1 and 3, got %d and %d", rows[0].R, rows[1].R)
	}
	if got := rows[0].Cell(models.ColDetailNo); got != "MAIN PLATES" {
		t.Errorf("Expected 'MAIN PLATES', got %q", got)
	}
	if got := rows[1].Cell(models.ColDetailNo); got != "1" {
		t.Errorf("Expected '1', got %q", got)
	}
	if got := rows[1].Cell(models.ColLengthOrDiameter); got != "200.5" {
		t.Errorf("Expected '200.5', got %q", got)
	}
	if got := rows[1].Cell(models.ColWidth); got != "" {
		t.Errorf("Expected empty cell past the row end, got %q", got)
	}
}

func TestReadRowsIgnoresNumberFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	whole, err := f.NewStyle(&excelize.Style{NumFmt: 1}) // 0
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}

	f.SetCellValue(sheetName, "A1", 1)
	f.SetCellValue(sheetName, "D1", 2500)
	f.SetCellStyle(sheetName, "D1", "D1", thousands)
	f.SetCellValue(sheetName, "I1", 12.345)
	f.SetCellStyle(sheetName, "I1", "I1", whole)

	tmpFile := filepath.Join(t.TempDir(), "styled.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ReadRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}

	tests := []struct {
		col      models.Column
		expected string
	}{
		{models.ColLengthOrDiameter, "2500"},
		{models.ColWeight, "12.345"},
	}
	for _, tt := range tests {
		cell := rows[0].Cell(tt.col)
		got := ParseNumber(cell)
		if !got.Valid || got.Decimal.String() != tt.expected {
			t.Errorf("column %d: cell %q parsed as %v, expected %s", tt.col, cell, got.Decimal, tt.expected)
		}
	}
}

func TestReadRowsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadRows(f, "NOPE"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestToRawRows(t *testing.T) {
	grid := [][]string{
		{"a"},
		{},
		{"", "", ""},
		{"", "b"},
	}

	rows := ToRawRows(grid)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].R != 1 || rows[1].R != 4 {
		t.Errorf("Expected rows 1 and 4, got %d and %d", rows[0].R, rows[1].R)
	}
	if got := rows[1].Cell(models.ColItemCode); got != "b" {
		t.Errorf("Expected 'b', got %q", got)
	}

	// Rows own their cells
	grid[0][0] = "changed"
	if rows[0].Cells[0] != "a" {
		t.Errorf("Expected copied cells, got %q", rows[0].Cells[0])
	}
}
