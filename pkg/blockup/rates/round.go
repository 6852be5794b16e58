package rates

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IDLadder prices the bore of a GB/EGB round part by its length in mm.
var IDLadder = NewLadder("130",
	[2]string{"50", "40"},
	[2]string{"80", "60"},
	[2]string{"100", "70"},
	[2]string{"120", "85"},
	[2]string{"150", "95"},
	[2]string{"200", "115"},
)

// ODLadder prices the outside diameter of a GB/EGB round part by its length in mm.
var ODLadder = NewLadder("160",
	[2]string{"50", "45"},
	[2]string{"80", "65"},
	[2]string{"100", "80"},
	[2]string{"120", "110"},
	[2]string{"150", "135"},
)

// Band is one length band of the standard round-part table.
type Band struct {
	MaxLength decimal.Decimal
	Diameters Ladder
}

func band(maxLength string, r30, r50, r80, r120 string) Band {
	return Band{
		MaxLength: decimal.RequireFromString(maxLength),
		Diameters: NewLadder("0",
			[2]string{"30", r30},
			[2]string{"50", r50},
			[2]string{"80", r80},
			[2]string{"120", r120},
		),
	}
}

// StandardBands is the two-dimensional table for round parts that are not
// GB/EGB: length bands, each split into diameter brackets.
var StandardBands = []Band{
	band("200", "35", "40", "50", "60"),
	band("350", "50", "55", "60", "70"),
	band("500", "70", "75", "90", "100"),
	band("600", "100", "105", "140", "160"),
	band("700", "130", "140", "160", "210"),
}

// gbMarkers select the ID+OD pricing.
var gbMarkers = []string{"GB", "EGB"}

// IDRate returns the bore rate for a length. A missing length takes the
// ladder fallback.
func IDRate(length decimal.NullDecimal) decimal.Decimal {
	if !length.Valid {
		return IDLadder.Fallback
	}
	return IDLadder.Rate(length.Decimal)
}

// ODRate returns the outside-diameter rate for a length. A missing length
// takes the ladder fallback.
func ODRate(length decimal.NullDecimal) decimal.Decimal {
	if !length.Valid {
		return ODLadder.Fallback
	}
	return ODLadder.Rate(length.Decimal)
}

// StandardRate returns the rate of the first band covering length whose
// diameter brackets cover diameter. It returns zero and false when either
// dimension is missing or no bracket matches.
func StandardRate(diameter, length decimal.NullDecimal) (decimal.Decimal, bool) {
	if !diameter.Valid || !length.Valid {
		return decimal.Zero, false
	}
	for _, b := range StandardBands {
		if length.Decimal.GreaterThan(b.MaxLength) {
			continue
		}
		if rate, ok := b.Diameters.Lookup(diameter.Decimal); ok {
			return rate, true
		}
	}
	return decimal.Zero, false
}

// IsGBCode reports whether an upper-cased item code takes the ID+OD pricing.
func IsGBCode(code string) bool {
	for _, m := range gbMarkers {
		if strings.Contains(code, m) {
			return true
		}
	}
	return false
}

// RoundRate returns the CG rate of a round part. The second result is false
// when the standard table was exhausted and the rate fell back to zero.
func RoundRate(code string, diameter, length decimal.NullDecimal) (decimal.Decimal, bool) {
	if IsGBCode(code) {
		return IDRate(length).Add(ODRate(length)), true
	}
	return StandardRate(diameter, length)
}
