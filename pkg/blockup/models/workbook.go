package models

// CostSheet is the priced result for one workbook.
type CostSheet struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// WorkOrder is the work order number, or "UNKNOWN".
	WorkOrder  string            `json:"work_order"`
	Sections   []Section         `json:"sections"`
	MainPlates []MainPlate       `json:"main_plates"`
	RoundParts []RoundPart       `json:"round_parts"`
	FlatParts  []FlatPart        `json:"flat_parts"`
	Summaries  []CategorySummary `json:"summaries"`
	Issues     []Issue           `json:"issues,omitempty"`
}

// Summary returns the summary of a category.
func (s *CostSheet) Summary(c Category) (CategorySummary, bool) {
	for _, sum := range s.Summaries {
		if sum.Category == c {
			return sum, true
		}
	}
	return CategorySummary{}, false
}

// Records returns a category's records behind the common interface.
func (s *CostSheet) Records(c Category) []Record {
	var out []Record
	switch c {
	case CategoryMainPlates:
		for _, p := range s.MainPlates {
			out = append(out, p)
		}
	case CategoryRoundParts:
		for _, p := range s.RoundParts {
			out = append(out, p)
		}
	case CategoryFlatParts:
		for _, p := range s.FlatParts {
			out = append(out, p)
		}
	}
	return out
}

// IssuesOf returns the issues of the given kind.
func (s *CostSheet) IssuesOf(kind IssueKind) []Issue {
	var out []Issue
	for _, i := range s.Issues {
		if i.Kind == kind {
			out = append(out, i)
		}
	}
	return out
}
