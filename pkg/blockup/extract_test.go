package blockup

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes a workbook with the given sheets to a temp file.
func saveWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, grid := range sheets {
		if first {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("SetSheetName failed: %v", err)
			}
			first = false
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet failed: %v", err)
		}
		for i, row := range grid {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow failed: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "order.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func checklist(key interface{}, chamfer string) []interface{} {
	row := make([]interface{}, 13)
	row[0] = key
	row[12] = chamfer
	return row
}

func fixtureBOM() [][]interface{} {
	return [][]interface{}{
		{"WO.NO: 2207 : 14/10"},
		{},
		{"MAIN PLATES"},
		{"Detail No", "ITEM CODE", "Description", "L", "W", "T", "Qty", "MATERIAL", "Weight"},
		{1, "PL-01", "Plate", 1000, 500, 20, 2, "MS", 78.5},
		{2, "DT-5 PLATE", "Plate DT", 1200, 300, 80, 1, "MS", 10.123},
		{3, "PL-03", "Plate", 500, 500, 10, 1, "MS", 19.6},
		{"VAP ROUND PARTS"},
		{4, "GB-10", "Bush", 60, 100, nil, 4, "EN8", 3.2},
		{5, "PIN", "Pin", 40, 150, nil, 2, "EN8", 1},
		{"VAP FLAT PARTS"},
		{6, "FL", "Flat", 200, 100, 10, 1, "MS", 1.5},
	}
}

func TestExtract(t *testing.T) {
	path := saveWorkbook(t, map[string][][]interface{}{
		DefaultBOMSheet: fixtureBOM(),
		DefaultChecklistSheet: {
			checklist(1, "10"),
			checklist(2, "80x45"),
		},
	})

	sheet, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if sheet.BookName != "order.xlsx" {
		t.Errorf("Expected book name 'order.xlsx', got %q", sheet.BookName)
	}
	if sheet.WorkOrder != "2207" {
		t.Errorf("Expected work order '2207', got %q", sheet.WorkOrder)
	}
	if len(sheet.MainPlates) != 3 || len(sheet.RoundParts) != 2 || len(sheet.FlatParts) != 1 {
		t.Fatalf("Unexpected counts: %d main, %d round, %d flat",
			len(sheet.MainPlates), len(sheet.RoundParts), len(sheet.FlatParts))
	}

	// The empty second row is dropped but rows keep their sheet numbers
	if got := sheet.MainPlates[0].Row; got != 5 {
		t.Errorf("Expected first plate on row 5, got %d", got)
	}

	main, _ := sheet.Summary(models.CategoryMainPlates)
	if got := main.Rate.StringFixed(2); got != "1770.00" {
		t.Errorf("Expected main rate 1770.00, got %s", got)
	}
	if got := main.GrandTotal.Decimal.StringFixed(2); got != "2200.00" {
		t.Errorf("Expected grand total 2200.00, got %s", got)
	}

	unmatched := sheet.IssuesOf(models.IssueUnmatchedChecklistRow)
	if len(unmatched) != 1 || unmatched[0].Row != 7 {
		t.Errorf("Expected plate 3 unmatched, got %v", unmatched)
	}
	if err := SectionErrors(sheet); err != nil {
		t.Errorf("Expected every section found, got %v", err)
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestExtractMissingSheet(t *testing.T) {
	path := saveWorkbook(t, map[string][][]interface{}{
		DefaultBOMSheet: fixtureBOM(),
	})

	_, err := Extract(path, DefaultOptions())
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("Expected ErrSheetNotFound, got %v", err)
	}
	var sheetErr *SheetError
	if !errors.As(err, &sheetErr) || sheetErr.SheetName != DefaultChecklistSheet || sheetErr.Component != "checklist" {
		t.Errorf("Expected checklist SheetError, got %v", err)
	}
}

func TestExtractCustomSheetNames(t *testing.T) {
	path := saveWorkbook(t, map[string][][]interface{}{
		"BOM":       fixtureBOM(),
		"CHECKLIST": {checklist(1, "10")},
	})

	opts := Options{BOMSheet: "BOM", ChecklistSheet: "CHECKLIST", PriceFlatParts: true}
	sheet, err := Extract(path, opts)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got := sheet.FlatParts[0].Rate.Decimal.StringFixed(2); got != "28.00" {
		t.Errorf("Expected priced flat part 28.00, got %s", got)
	}
}

func TestProcessMissingSections(t *testing.T) {
	bom := []models.RawRow{
		{R: 1, Cells: []string{"MAIN PLATES"}},
		{R: 2, Cells: []string{"1", "PL", "Plate", "100", "100", "10"}},
		{R: 3, Cells: []string{"2", "PL", "Plate", "100", "100", "10"}},
	}

	sheet := Process(bom, nil, DefaultOptions())
	if len(sheet.MainPlates) != 2 {
		t.Errorf("Expected main plates to run to the end of the sheet, got %d", len(sheet.MainPlates))
	}
	if len(sheet.RoundParts) != 0 || len(sheet.FlatParts) != 0 {
		t.Errorf("Expected empty round and flat parts")
	}
	if sheet.WorkOrder != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN work order, got %q", sheet.WorkOrder)
	}

	missing := sheet.IssuesOf(models.IssueMissingSectionMarker)
	if len(missing) != 2 {
		t.Fatalf("Expected 2 missing markers, got %v", missing)
	}

	err := SectionErrors(sheet)
	var sectionErr *MissingSectionError
	if !errors.As(err, &sectionErr) || sectionErr.Category != models.CategoryRoundParts {
		t.Errorf("Expected round parts MissingSectionError, got %v", err)
	}
	if len(sheet.Summaries) != 3 {
		t.Errorf("Expected 3 summaries, got %d", len(sheet.Summaries))
	}
}
