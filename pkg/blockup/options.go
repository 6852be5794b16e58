// Package blockup extracts and prices cost sheets from bill-of-materials workbooks.
package blockup

import "go.uber.org/zap"

const (
	// DefaultBOMSheet is the sheet holding the sectioned bill of materials.
	DefaultBOMSheet = "CUTTING BOM"
	// DefaultChecklistSheet is the sheet holding the assembly checklist.
	DefaultChecklistSheet = "ASSY CHECKLIST"
)

// Options configures extraction behavior.
type Options struct {
	// BOMSheet names the bill-of-materials sheet. Empty means DefaultBOMSheet.
	BOMSheet string
	// ChecklistSheet names the assembly checklist sheet. Empty means
	// DefaultChecklistSheet.
	ChecklistSheet string
	// PriceFlatParts applies the main-plate cost formula to flat parts.
	PriceFlatParts bool
	// Logger receives debug output. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		BOMSheet:       DefaultBOMSheet,
		ChecklistSheet: DefaultChecklistSheet,
	}
}

// BOMSheetName returns the bill-of-materials sheet to read.
func (o Options) BOMSheetName() string {
	if o.BOMSheet != "" {
		return o.BOMSheet
	}
	return DefaultBOMSheet
}

// ChecklistSheetName returns the checklist sheet to read.
func (o Options) ChecklistSheetName() string {
	if o.ChecklistSheet != "" {
		return o.ChecklistSheet
	}
	return DefaultChecklistSheet
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
