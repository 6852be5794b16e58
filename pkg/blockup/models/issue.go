package models

import "fmt"

// IssueKind classifies a problem found while extracting or pricing.
type IssueKind string

const (
	// IssueMissingSectionMarker means a section title row was not found.
	IssueMissingSectionMarker IssueKind = "missing_section_marker"
	// IssueUnmatchedChecklistRow means no checklist row shares the detail number.
	IssueUnmatchedChecklistRow IssueKind = "unmatched_checklist_row"
	// IssueNonNumericField means a dimension did not parse as a number.
	IssueNonNumericField IssueKind = "non_numeric_field"
	// IssueRateTableExhaustion means no bracket of a rate table matched.
	IssueRateTableExhaustion IssueKind = "rate_table_exhaustion"
)

// Issue records one problem. Only missing section markers affect a whole
// category; every other kind is absorbed into an empty or zero value.
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Category Category  `json:"category"`
	// Row is the worksheet row (1-based), or 0 for sheet-level issues.
	Row    int    `json:"row,omitempty"`
	Field  string `json:"field,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (i Issue) String() string {
	if i.Row == 0 {
		return fmt.Sprintf("%s [%s] %s", i.Kind, i.Category, i.Detail)
	}
	return fmt.Sprintf("%s [%s] row %d %s: %s", i.Kind, i.Category, i.Row, i.Field, i.Detail)
}
