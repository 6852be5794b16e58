package output

import (
	"testing"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

func TestBuildTableMainPlates(t *testing.T) {
	sheet := fixtureSheet(t)
	table := BuildTable(sheet, models.CategoryMainPlates, "₹")

	if len(table.Headers) != 13 {
		t.Fatalf("Expected 13 headers, got %d", len(table.Headers))
	}
	if table.Title != "Main Plates" {
		t.Errorf("Expected title 'Main Plates', got %q", table.Title)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}

	first := table.Rows[0]
	checks := map[models.Column]string{
		models.ColDetailNo:      "1",
		models.ColWeight:        "78.50",
		models.ColRate:          "700.00",
		models.ColBlockUpRate:   "10",
		models.ColCornerChamfer: "80.00",
		models.ColTotal:         "780.00",
	}
	for col, expected := range checks {
		if first[col] != expected {
			t.Errorf("Row 1 column %d = %q, expected %q", col, first[col], expected)
		}
	}

	if got := table.Rows[1][models.ColRate]; got != "720.00" {
		t.Errorf("DT-5 rate = %q, expected 720.00", got)
	}
	if got := table.Rows[1][models.ColCornerChamfer]; got != "350.00" {
		t.Errorf("DT-5 chamfer = %q, expected 350.00", got)
	}

	expectedTotals := map[models.Column]string{
		models.ColDetailNo:      "Total",
		models.ColWeight:        "88.62",
		models.ColRate:          "₹1,420.00",
		models.ColCornerChamfer: "₹430.00",
		models.ColTotal:         "₹1,850.00",
	}
	for col, expected := range expectedTotals {
		if table.Totals[col] != expected {
			t.Errorf("Totals column %d = %q, expected %q", col, table.Totals[col], expected)
		}
	}
	if table.Footer != "" {
		t.Errorf("Expected no footer for main plates, got %q", table.Footer)
	}
}

func TestBuildTableRoundPartsHidesColumns(t *testing.T) {
	sheet := fixtureSheet(t)
	table := BuildTable(sheet, models.CategoryRoundParts, "₹")

	for _, h := range table.Headers {
		if h == "W" || h == "Rate" {
			t.Errorf("Round parts should not show %q", h)
		}
	}
	if got := table.Headers[len(table.Headers)-1]; got != "CG Rate" {
		t.Errorf("Expected last header 'CG Rate', got %q", got)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}

	last := len(table.Columns) - 1
	if got := table.Rows[0][last]; got != "150.00" {
		t.Errorf("GB CG rate = %q, expected 150.00", got)
	}
	if got := table.Rows[1][last]; got != "40.00" {
		t.Errorf("standard CG rate = %q, expected 40.00", got)
	}

	if table.Totals != nil {
		t.Errorf("Expected no totals row, got %v", table.Totals)
	}
	if table.Footer != "Total Parts: 2 | Total Weight: 4.20" {
		t.Errorf("Unexpected footer %q", table.Footer)
	}
}

func TestBuildTableFlatPartsUnpriced(t *testing.T) {
	sheet := fixtureSheet(t)
	table := BuildTable(sheet, models.CategoryFlatParts, "₹")

	if len(table.Headers) != 10 {
		t.Fatalf("Expected 10 headers, got %d", len(table.Headers))
	}
	if len(table.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(table.Rows))
	}
	if got := table.Rows[0][models.ColRate]; got != "" {
		t.Errorf("Flat part rate = %q, expected empty", got)
	}
	if table.Footer != "Total Parts: 1 | Total Weight: 1.50" {
		t.Errorf("Unexpected footer %q", table.Footer)
	}
}

func TestBuildTablesDefaultsToAllCategories(t *testing.T) {
	sheet := fixtureSheet(t)

	tables := BuildTables(sheet, "₹")
	if len(tables) != len(models.Categories) {
		t.Fatalf("Expected %d tables, got %d", len(models.Categories), len(tables))
	}
	for i, c := range models.Categories {
		if tables[i].Category != c {
			t.Errorf("Table %d category = %s, expected %s", i, tables[i].Category, c)
		}
	}

	only := BuildTables(sheet, "₹", models.CategoryFlatParts)
	if len(only) != 1 || only[0].Category != models.CategoryFlatParts {
		t.Errorf("Expected only the flat parts table, got %v", only)
	}
}
