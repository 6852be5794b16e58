package output

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// Report holds the texts printed around the tables.
type Report struct {
	Company  string
	Title    string
	Currency string
	// Date is printed in the footer, formatted YYYY-MM-DD.
	Date string
}

// DefaultReport returns the report texts used when none are configured.
func DefaultReport(now time.Time) Report {
	return Report{
		Company:  "Uday Precision Solutions",
		Title:    "Blockup Cost Sheet",
		Currency: "₹",
		Date:     now.Format("2006-01-02"),
	}
}

// WorkOrderLabel returns the work order line shown under the company name.
func WorkOrderLabel(workOrder string) string {
	return "Work Order No: " + workOrder
}

// PDFFileName returns the export file name for a work order and date.
func PDFFileName(workOrder string, r Report) string {
	return fmt.Sprintf("%s %s -%s.pdf", WorkOrderLabel(workOrder), r.Title, r.Date)
}

// pdfGridSize is the number of grid units across a page.
const pdfGridSize = 32

// columnWeights are the minimum grid units per column; the description
// column absorbs the rest of the row.
var columnWeights = map[models.Column]int{
	models.ColDetailNo:         2,
	models.ColItemCode:         3,
	models.ColDescription:      4,
	models.ColLengthOrDiameter: 2,
	models.ColWidth:            1,
	models.ColThickness:        1,
	models.ColQuantity:         1,
	models.ColMaterial:         2,
	models.ColWeight:           2,
	models.ColRate:             2,
	models.ColBlockUpRate:      2,
	models.ColCornerChamfer:    2,
	models.ColTotal:            2,
}

// GeneratePDF creates a landscape A4 cost sheet of the given categories, or
// all of them, and returns the raw PDF bytes.
func GeneratePDF(sheet *models.CostSheet, r Report, categories ...models.Category) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithMaxGridSize(pdfGridSize).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, sheet, r)
	for _, t := range BuildTables(sheet, r.Currency, categories...) {
		addTable(m, t)
	}
	addFooter(m, r)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the company name and work order line.
func addHeader(m core.Maroto, sheet *models.CostSheet, r Report) {
	m.AddRows(
		row.New(10).Add(
			col.New(pdfGridSize).Add(
				text.New(r.Company, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(7).Add(
			col.New(pdfGridSize).Add(
				text.New(WorkOrderLabel(sheet.WorkOrder)+" "+r.Title, props.Text{
					Size:  10,
					Align: align.Center,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(4),
	)
}

// addTable adds a category title, header row, part rows and totals.
func addTable(m core.Maroto, t Table) {
	widths := columnWidths(t.Columns)

	m.AddRows(
		row.New(9).Add(
			col.New(pdfGridSize).Add(
				text.New(t.Title, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
	)

	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 249, Green: 250, Blue: 251}}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 107, Green: 114, Blue: 128},
	}
	m.AddRows(cellRow(8, t.Headers, widths, headerText, headerCell))

	bodyText := props.Text{Size: 7, Align: align.Center, Color: &props.Color{Red: 55, Green: 65, Blue: 81}}
	for _, cells := range t.Rows {
		m.AddRows(cellRow(6, cells, widths, bodyText, nil))
	}

	totalCell := &props.Cell{BackgroundColor: &props.Color{Red: 243, Green: 244, Blue: 246}}
	totalText := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center}
	if t.Totals != nil {
		m.AddRows(cellRow(7, t.Totals, widths, totalText, totalCell))
	} else {
		footerText := totalText
		footerText.Align = align.Right
		m.AddRows(
			row.New(7).Add(
				col.New(pdfGridSize).Add(text.New(t.Footer, footerText)).WithStyle(totalCell),
			),
		)
	}

	m.AddRows(row.New(6))
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, r Report) {
	m.AddRows(
		row.New(6).Add(
			col.New(pdfGridSize).Add(
				text.New(
					fmt.Sprintf("Generated on %s", r.Date),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

func cellRow(height float64, cells []string, widths []int, style props.Text, cell *props.Cell) core.Row {
	cols := make([]core.Col, len(cells))
	for i, c := range cells {
		cols[i] = col.New(widths[i]).Add(text.New(c, style))
		if cell != nil {
			cols[i] = cols[i].WithStyle(cell)
		}
	}
	return row.New(height).Add(cols...)
}

// columnWidths assigns grid units to the visible columns so that a row
// spans the full page width.
func columnWidths(cols []models.Column) []int {
	widths := make([]int, len(cols))
	used := 0
	desc := -1
	for i, c := range cols {
		widths[i] = columnWeights[c]
		used += widths[i]
		if c == models.ColDescription {
			desc = i
		}
	}
	if rest := pdfGridSize - used; rest > 0 && desc >= 0 {
		widths[desc] += rest
	}
	return widths
}
