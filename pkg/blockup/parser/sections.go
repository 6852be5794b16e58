package parser

import (
	"github.com/ukaji3/blockup-go/pkg/blockup/models"
)

// FindMarker returns the index of the first row whose first cell equals
// marker exactly, or -1.
func FindMarker(rows []models.RawRow, marker string) int {
	for i, r := range rows {
		if r.Cell(models.ColDetailNo) == marker {
			return i
		}
	}
	return -1
}

// Sections holds the row range of every category.
type Sections struct {
	Main  models.Section
	Round models.Section
	Flat  models.Section
}

// Split locates the three section markers and derives each category's row
// range. Ranges exclude the marker rows.
//
// A category whose own marker is missing gets an empty range. A missing end
// marker lets the range run to the next marker found after it, or to the end
// of the sheet. Markers out of order give an empty range.
func Split(rows []models.RawRow) Sections {
	pos := make([]int, len(models.Categories))
	for i, c := range models.Categories {
		pos[i] = FindMarker(rows, c.Marker())
	}

	sections := make([]models.Section, len(models.Categories))
	for i, c := range models.Categories {
		s := models.Section{Category: c, Marker: pos[i], Start: 0, End: 0}
		if pos[i] >= 0 {
			s.Start = pos[i] + 1
			s.End = len(rows)
			for _, next := range pos[i+1:] {
				if next >= 0 {
					s.End = next
					break
				}
			}
			if s.End < s.Start {
				s.End = s.Start
			}
		}
		sections[i] = s
	}

	return Sections{Main: sections[0], Round: sections[1], Flat: sections[2]}
}

// All returns the sections in sheet order.
func (s Sections) All() []models.Section {
	return []models.Section{s.Main, s.Round, s.Flat}
}

// Missing returns the categories whose marker row was not found.
func (s Sections) Missing() []models.Category {
	var out []models.Category
	for _, sec := range s.All() {
		if !sec.Found() {
			out = append(out, sec.Category)
		}
	}
	return out
}

// PartRows returns the rows of a section that carry a detail number.
func PartRows(rows []models.RawRow, sec models.Section) []models.RawRow {
	if sec.Len() == 0 || sec.Start >= len(rows) {
		return nil
	}
	end := sec.End
	if end > len(rows) {
		end = len(rows)
	}

	var out []models.RawRow
	for _, r := range rows[sec.Start:end] {
		if HasDetailNo(r.Cell(models.ColDetailNo)) {
			out = append(out, r)
		}
	}
	return out
}
