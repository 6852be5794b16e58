package output

import (
	"encoding/json"

	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// SummaryView is a category summary with amounts as 2-decimal strings.
type SummaryView struct {
	Count      int    `json:"count"`
	Weight     string `json:"weight"`
	Rate       string `json:"rate"`
	Chamfer    string `json:"chamfer"`
	GrandTotal string `json:"grand_total,omitempty"`
	// RateHeader and ChamferHeader label the summed columns.
	RateHeader    string `json:"rate_header"`
	ChamferHeader string `json:"chamfer_header"`
}

// CategoryView is one category as rendered for JSON output.
type CategoryView struct {
	Table
	Summary SummaryView `json:"summary"`
}

// SheetView is a cost sheet as rendered for JSON output.
type SheetView struct {
	BookName   string         `json:"book_name"`
	WorkOrder  string         `json:"work_order"`
	Categories []CategoryView `json:"categories"`
	Issues     []models.Issue `json:"issues,omitempty"`
}

// NewSheetView builds the JSON view of the given categories, or all of them.
func NewSheetView(sheet *models.CostSheet, symbol string, categories ...models.Category) SheetView {
	view := SheetView{
		BookName:  sheet.BookName,
		WorkOrder: sheet.WorkOrder,
		Issues:    sheet.Issues,
	}
	for _, t := range BuildTables(sheet, symbol, categories...) {
		view.Categories = append(view.Categories, newCategoryView(sheet, t))
	}
	return view
}

func newCategoryView(sheet *models.CostSheet, t Table) CategoryView {
	sum, _ := sheet.Summary(t.Category)
	layout := models.LayoutFor(t.Category)
	return CategoryView{
		Table: t,
		Summary: SummaryView{
			Count:         sum.Count,
			Weight:        sum.Weight.StringFixed(2),
			Rate:          sum.Rate.StringFixed(2),
			Chamfer:       sum.Chamfer.StringFixed(2),
			GrandTotal:    fixed(sum.GrandTotal),
			RateHeader:    headerOf(layout, sum.RateColumn),
			ChamferHeader: headerOf(layout, sum.ChamferColumn),
		},
	}
}

// headerOf returns the header of a column, or "" when the layout does not
// list it.
func headerOf(l models.Layout, c models.Column) string {
	if int(c) < len(l.Headers) {
		return l.Headers[c]
	}
	return ""
}

// ToJSON serializes the given categories of a cost sheet, or all of them,
// to JSON.
func ToJSON(sheet *models.CostSheet, symbol string, pretty bool, categories ...models.Category) ([]byte, error) {
	return marshal(NewSheetView(sheet, symbol, categories...), pretty)
}

// CategoryToJSON serializes one category of a cost sheet to JSON.
func CategoryToJSON(sheet *models.CostSheet, c models.Category, symbol string, pretty bool) ([]byte, error) {
	return marshal(newCategoryView(sheet, BuildTable(sheet, c, symbol)), pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
