package models

import "github.com/shopspring/decimal"

// Part holds the columns every category shares.
type Part struct {
	// Row is the worksheet row the part was read from (1-based).
	Row         int    `json:"row"`
	DetailNo    string `json:"detail_no"`
	ItemCode    string `json:"item_code"`
	Description string `json:"description"`
	// Length is the L/DIA column: plate length or round-part diameter.
	Length    string `json:"length"`
	Width     string `json:"width"`
	Thickness string `json:"thickness"`
	Quantity  string `json:"quantity"`
	Material  string `json:"material"`
	// Weight is rounded to 2 places; invalid when the cell is not numeric.
	Weight decimal.NullDecimal `json:"weight"`
}

// Base returns the shared columns.
func (p Part) Base() Part {
	return p
}

// Costing holds the amounts derived by rate lookup and pricing.
type Costing struct {
	// UnitRate is the per-area rate used for the cost, when one applies.
	UnitRate decimal.NullDecimal `json:"unit_rate"`
	// Rate is the computed cost; invalid when the category skips costing
	// or a dimension is not numeric.
	Rate decimal.NullDecimal `json:"rate"`
	// CornerChamfer is the chamfer cost; invalid when no bracket matched.
	CornerChamfer decimal.NullDecimal `json:"corner_chamfer"`
	// Total is CornerChamfer plus Rate with missing values counted as zero.
	Total decimal.Decimal `json:"total"`
}

// Costs returns the derived amounts.
func (c Costing) Costs() Costing {
	return c
}

// Record is implemented by every category's part type.
type Record interface {
	Base() Part
	Costs() Costing
}

// MainPlate is a main-plate row cross-referenced with the assembly checklist.
type MainPlate struct {
	Part
	// ChamferDescriptor is the checklist text the chamfer size is read from
	// (the Block-up Rate column); empty when no checklist row matched.
	ChamferDescriptor string `json:"chamfer_descriptor"`
	ChecklistMatched  bool   `json:"checklist_matched"`
	Costing
}

// RoundPart is a turned part with its machining rate.
type RoundPart struct {
	Part
	CGRate decimal.Decimal `json:"cg_rate"`
	Costing
}

// FlatPart is a flat part; it carries no derived rate unless flat pricing
// is enabled.
type FlatPart struct {
	Part
	Costing
}
