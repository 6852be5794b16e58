// Package models defines data structures for cost sheet extraction.
package models

// RawRow represents a single worksheet row with cells at fixed positions.
type RawRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Cells holds the cell text in column order, starting at column A.
	Cells []string `json:"cells"`
}

// Cell returns the value at the given column, or "" when the row is shorter.
func (r RawRow) Cell(col Column) string {
	i := int(col)
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}
