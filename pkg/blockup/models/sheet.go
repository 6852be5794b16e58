package models

// Category identifies one section of the bill of materials.
type Category string

const (
	// CategoryMainPlates holds plates priced by area and thickness.
	CategoryMainPlates Category = "main"
	// CategoryRoundParts holds turned parts priced by diameter and length.
	CategoryRoundParts Category = "round"
	// CategoryFlatParts holds flat parts, listed without a derived rate.
	CategoryFlatParts Category = "flat"
)

// Categories lists every category in the order its section appears.
var Categories = []Category{CategoryMainPlates, CategoryRoundParts, CategoryFlatParts}

// Marker returns the literal first-cell text that opens the category's section.
func (c Category) Marker() string {
	switch c {
	case CategoryMainPlates:
		return "MAIN PLATES"
	case CategoryRoundParts:
		return "VAP ROUND PARTS"
	case CategoryFlatParts:
		return "VAP FLAT PARTS"
	}
	return ""
}

// Title returns the display title of the category.
func (c Category) Title() string {
	switch c {
	case CategoryMainPlates:
		return "Main Plates"
	case CategoryRoundParts:
		return "VAP Round Parts"
	case CategoryFlatParts:
		return "VAP Flat Parts"
	}
	return string(c)
}

// Section is a half-open row range [Start, End) of the bill of materials.
type Section struct {
	Category Category `json:"category"`
	// Marker is the 0-based index of the marker row, or -1 when absent.
	Marker int `json:"marker"`
	Start  int `json:"start"`
	End    int `json:"end"`
}

// Found reports whether the section's marker row was located.
func (s Section) Found() bool {
	return s.Marker >= 0
}

// Len returns the number of raw rows spanned by the section.
func (s Section) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// ParseCategory returns the category named s ("main", "round" or "flat").
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
