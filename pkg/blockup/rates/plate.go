package rates

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LongPlateLength is the plate length (mm) above which the long-plate
// ladder applies.
var LongPlateLength = decimal.NewFromInt(1900)

// DT5Ladder prices DT-5 plates by thickness alone.
var DT5Ladder = NewLadder("0.58",
	[2]string{"60", "0.30"},
	[2]string{"100", "0.38"},
	[2]string{"150", "0.48"},
	[2]string{"200", "0.58"},
	[2]string{"250", "0.58"},
)

// ShortPlateLadder prices plates up to LongPlateLength by thickness.
var ShortPlateLadder = NewLadder("0.48",
	[2]string{"30", "0.14"},
	[2]string{"60", "0.16"},
	[2]string{"100", "0.21"},
	[2]string{"150", "0.26"},
	[2]string{"200", "0.38"},
	[2]string{"250", "0.43"},
)

// LongPlateLadder prices plates longer than LongPlateLength by thickness.
var LongPlateLadder = NewLadder("0.53",
	[2]string{"60", "0.23"},
	[2]string{"100", "0.27"},
	[2]string{"150", "0.30"},
	[2]string{"200", "0.38"},
	[2]string{"250", "0.48"},
)

// DT5Factor is the fixed per-unit rate of the DT-5 cost formula.
var DT5Factor = decimal.RequireFromString("0.6")

var (
	hundred    = decimal.NewFromInt(100)
	dt5Markers = []string{"DT-5", "DT5"}
)

// IsDT5 reports whether the item code marks a DT-5 plate. The match is
// case-sensitive.
func IsDT5(code string) bool {
	for _, m := range dt5Markers {
		if strings.Contains(code, m) {
			return true
		}
	}
	return false
}

// MainPlateUnitRate returns the per-area rate of a main plate.
func MainPlateUnitRate(length, thickness decimal.Decimal, dt5 bool) decimal.Decimal {
	if dt5 {
		return DT5Ladder.Rate(thickness)
	}
	if length.LessThanOrEqual(LongPlateLength) {
		return ShortPlateLadder.Rate(thickness)
	}
	return LongPlateLadder.Rate(thickness)
}

// MainPlateCost returns the block-up cost of a main plate. DT-5 plates are
// priced on (length+width)*thickness and ignore unitRate.
func MainPlateCost(length, width, thickness, unitRate decimal.Decimal, dt5 bool) decimal.Decimal {
	if dt5 {
		return length.Add(width).Mul(thickness).Div(hundred).Mul(DT5Factor)
	}
	return length.Mul(width).Div(hundred).Mul(unitRate)
}
