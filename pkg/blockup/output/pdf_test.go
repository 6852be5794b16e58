package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

func TestGeneratePDF(t *testing.T) {
	sheet := fixtureSheet(t)
	report := DefaultReport(time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC))

	data, err := GeneratePDF(sheet, report)
	if err != nil {
		t.Fatalf("GeneratePDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("Expected PDF header, got %q", data[:min(len(data), 8)])
	}
}

func TestGeneratePDFSingleCategory(t *testing.T) {
	sheet := fixtureSheet(t)

	data, err := GeneratePDF(sheet, DefaultReport(time.Now()), models.CategoryRoundParts)
	if err != nil {
		t.Fatalf("GeneratePDF failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected PDF bytes")
	}
}

func TestPDFFileName(t *testing.T) {
	report := DefaultReport(time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC))

	got := PDFFileName("1234", report)
	expected := "Work Order No: 1234 Blockup Cost Sheet -2026-10-14.pdf"
	if got != expected {
		t.Errorf("PDFFileName = %q, expected %q", got, expected)
	}
}

func TestColumnWidthsFillGrid(t *testing.T) {
	for _, c := range models.Categories {
		widths := columnWidths(models.LayoutFor(c).Visible())
		total := 0
		for _, w := range widths {
			if w <= 0 {
				t.Errorf("%s: column width %d must be positive", c, w)
			}
			total += w
		}
		if total != pdfGridSize {
			t.Errorf("%s: widths sum to %d, expected %d", c, total, pdfGridSize)
		}
	}
}
