package parser

import (
	"strings"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// WorkOrderMarker is the text that identifies the work order row.
const WorkOrderMarker = "WO.NO:"

// UnknownWorkOrder is reported when no work order row exists.
const UnknownWorkOrder = "UNKNOWN"

// WorkOrder returns the work order number from the first row whose first
// cell contains WorkOrderMarker: the text after the first ':' up to the next
// one, trimmed.
func WorkOrder(rows []models.RawRow) string {
	for _, r := range rows {
		cell := r.Cell(models.ColDetailNo)
		if !strings.Contains(cell, WorkOrderMarker) {
			continue
		}
		parts := strings.Split(cell, ":")
		return strings.TrimSpace(parts[1])
	}
	return UnknownWorkOrder
}
