package blockup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
	"github.com/ukaji3/blockup-go/pkg/blockup/parser"
	"github.com/ukaji3/blockup-go/pkg/blockup/pricing"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Extract reads a workbook and returns its priced cost sheet.
func Extract(path string, opts Options) (*models.CostSheet, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractFile(f, filepath.Base(path), opts)
}

// ExtractFile prices an already opened workbook.
func ExtractFile(f *excelize.File, bookName string, opts Options) (*models.CostSheet, error) {
	bom, err := readSheet(f, opts.BOMSheetName(), "bom")
	if err != nil {
		return nil, err
	}
	checklist, err := readSheet(f, opts.ChecklistSheetName(), "checklist")
	if err != nil {
		return nil, err
	}

	sheet := Process(bom, checklist, opts)
	sheet.BookName = bookName
	return sheet, nil
}

func readSheet(f *excelize.File, name, component string) ([]models.RawRow, error) {
	if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, NewSheetError(name, component, ErrSheetNotFound)
	}
	rows, err := parser.ReadRows(f, name)
	if err != nil {
		return nil, NewSheetError(name, component, err)
	}
	return rows, nil
}

// Process extracts and prices the bill-of-materials rows, cross-referencing
// the checklist rows. It never fails: missing sections and malformed rows
// are reported in the returned sheet's Issues.
func Process(bom, checklist []models.RawRow, opts Options) *models.CostSheet {
	log := opts.logger()

	sections := parser.Split(bom)
	sheet := &models.CostSheet{
		WorkOrder: parser.WorkOrder(bom),
		Sections:  sections.All(),
	}

	for _, sec := range sheet.Sections {
		log.Debug("section located",
			zap.String("category", string(sec.Category)),
			zap.Int("marker", sec.Marker),
			zap.Int("rows", sec.Len()),
		)
	}
	for _, c := range sections.Missing() {
		sheet.Issues = append(sheet.Issues, models.Issue{
			Kind:     models.IssueMissingSectionMarker,
			Category: c,
			Detail:   fmt.Sprintf("marker %q not found", c.Marker()),
		})
	}

	engine := pricing.Engine{PriceFlatParts: opts.PriceFlatParts}

	plates, issues := parser.ExtractMainPlates(parser.PartRows(bom, sections.Main), checklist)
	sheet.Issues = append(sheet.Issues, issues...)
	sheet.MainPlates, issues = engine.MainPlates(plates)
	sheet.Issues = append(sheet.Issues, issues...)

	round, issues := parser.ExtractRoundParts(parser.PartRows(bom, sections.Round))
	sheet.Issues = append(sheet.Issues, issues...)
	sheet.RoundParts = engine.RoundParts(round)

	flat := parser.ExtractFlatParts(parser.PartRows(bom, sections.Flat))
	sheet.FlatParts, issues = engine.FlatParts(flat)
	sheet.Issues = append(sheet.Issues, issues...)

	sheet.Summaries = []models.CategorySummary{
		pricing.Summarize(models.CategoryMainPlates, sheet.MainPlates),
		pricing.Summarize(models.CategoryRoundParts, sheet.RoundParts),
		pricing.Summarize(models.CategoryFlatParts, sheet.FlatParts),
	}

	for _, sum := range sheet.Summaries {
		log.Debug("category priced",
			zap.String("category", string(sum.Category)),
			zap.Int("count", sum.Count),
			zap.String("rate", sum.Rate.StringFixed(2)),
			zap.String("chamfer", sum.Chamfer.StringFixed(2)),
		)
	}
	for _, issue := range sheet.Issues {
		log.Debug("issue", zap.Stringer("issue", issue))
	}

	return sheet
}
