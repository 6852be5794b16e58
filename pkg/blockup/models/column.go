package models

// Column is a fixed cell position shared by every bill-of-materials row.
type Column int

const (
	ColDetailNo Column = iota
	ColItemCode
	ColDescription
	ColLengthOrDiameter
	ColWidth
	ColThickness
	ColQuantity
	ColMaterial
	ColWeight
	ColRate
	ColBlockUpRate
	ColCornerChamfer
	ColTotal
)

// ColCGRate is the round-part meaning of position 10.
const ColCGRate = ColBlockUpRate

// ChecklistKeyColumn and ChecklistChamferColumn locate the detail number and
// chamfer descriptor in an assembly checklist row.
const (
	ChecklistKeyColumn     Column = 0
	ChecklistChamferColumn Column = 12
)

var baseHeaders = []string{
	"Detail No", "ITEM CODE", "Description", "L/DIA", "W", "T", "Qty", "MATERIAL", "Weight", "Rate",
}

// Layout describes how a category is presented: its headers in column
// order, the columns left out of rendering, and which columns carry the
// summed rate and chamfer amounts.
type Layout struct {
	Headers       []string        `json:"headers"`
	Hidden        map[Column]bool `json:"hidden,omitempty"`
	RateColumn    Column          `json:"rate_column"`
	ChamferColumn Column          `json:"chamfer_column"`
}

// LayoutFor returns the presentation layout for a category.
func LayoutFor(c Category) Layout {
	headers := append([]string(nil), baseHeaders...)
	layout := Layout{
		RateColumn:    ColRate,
		ChamferColumn: ColCornerChamfer,
	}

	switch c {
	case CategoryMainPlates:
		headers = append(headers, "Block-up Rate", "Corner Chamfer", "Total")
	case CategoryRoundParts:
		headers = append(headers, "CG Rate")
		layout.Hidden = map[Column]bool{ColWidth: true, ColRate: true}
	}

	layout.Headers = headers
	return layout
}

// Visible returns the columns that are rendered, in order.
func (l Layout) Visible() []Column {
	cols := make([]Column, 0, len(l.Headers))
	for i := range l.Headers {
		col := Column(i)
		if !l.Hidden[col] {
			cols = append(cols, col)
		}
	}
	return cols
}
