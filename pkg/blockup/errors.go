package blockup

import (
	"errors"
	"fmt"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates a required sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetError represents an error while reading a sheet.
type SheetError struct {
	SheetName string
	Component string // "bom", "checklist"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("read error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, component string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// MissingSectionError reports a section title row absent from the bill of
// materials. The category is extracted as empty.
type MissingSectionError struct {
	Category models.Category
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("section marker %q not found, %s left empty", e.Category.Marker(), e.Category.Title())
}

// SectionErrors returns the missing section markers of a cost sheet joined
// into one error, or nil when every section was found.
func SectionErrors(sheet *models.CostSheet) error {
	var errs []error
	for _, sec := range sheet.Sections {
		if !sec.Found() {
			errs = append(errs, &MissingSectionError{Category: sec.Category})
		}
	}
	return errors.Join(errs...)
}
