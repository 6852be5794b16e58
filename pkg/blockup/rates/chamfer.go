package rates

import "github.com/shopspring/decimal"

// ChamferBracket prices chamfer sizes in [Min, Max]. When Thin is valid the
// bracket depends on plate thickness: thickness up to ThinLimit takes Thin,
// thicker plates take Rate.
type ChamferBracket struct {
	Min, Max int64
	Rate     decimal.Decimal
	Thin     decimal.NullDecimal
}

// ThinLimit is the thickness (mm) at or below which a plate counts as thin.
var ThinLimit = decimal.NewFromInt(60)

// ChamferBrackets lists the chamfer cost brackets in ascending order.
var ChamferBrackets = []ChamferBracket{
	{Min: 3, Max: 15, Rate: decimal.NewFromInt(80)},
	{Min: 16, Max: 25, Rate: decimal.NewFromInt(180)},
	{Min: 26, Max: 50, Rate: decimal.NewFromInt(280)},
	{Min: 51, Max: 75, Rate: decimal.NewFromInt(380)},
	{Min: 76, Max: 90, Rate: decimal.NewFromInt(350), Thin: decimal.NewNullDecimal(decimal.NewFromInt(280))},
	{Min: 91, Max: 100, Rate: decimal.NewFromInt(400), Thin: decimal.NewNullDecimal(decimal.NewFromInt(300))},
}

// ChamferRate returns the chamfer cost for a chamfer size and plate
// thickness. The result is invalid (no cost) when the size is missing, lies
// outside every bracket, or falls in a thickness-dependent bracket while the
// thickness is missing.
func ChamferRate(size int64, hasSize bool, thickness decimal.NullDecimal) decimal.NullDecimal {
	if !hasSize {
		return decimal.NullDecimal{}
	}
	for _, b := range ChamferBrackets {
		if size < b.Min || size > b.Max {
			continue
		}
		if !b.Thin.Valid {
			return decimal.NewNullDecimal(b.Rate)
		}
		if !thickness.Valid {
			return decimal.NullDecimal{}
		}
		if thickness.Decimal.LessThanOrEqual(ThinLimit) {
			return b.Thin
		}
		return decimal.NewNullDecimal(b.Rate)
	}
	return decimal.NullDecimal{}
}
