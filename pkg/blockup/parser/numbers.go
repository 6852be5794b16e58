package parser

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseNumber reads the leading decimal number of a cell, ignoring any
// trailing text ("50mm" reads as 50). The result is invalid when the cell
// does not start with a number.
func ParseNumber(s string) decimal.NullDecimal {
	lit := leadingFloat(strings.TrimLeftFunc(s, unicode.IsSpace))
	if lit == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// ParseInt reads the leading decimal integer of a cell ("12.5" and "12A"
// read as 12). Hex prefixes are not recognized: "0x10" reads as 0. The
// second result is false when the cell does not start with digits.
func ParseInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := scanDigits(s, end)
	if digits == end {
		return 0, false
	}
	lit := s[:digits]
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		if strings.HasPrefix(lit, "-") {
			return math.MinInt64, true
		}
		return math.MaxInt64, true
	}
	return n, true
}

// leadingFloat returns the longest prefix of s that is a decimal literal
// with an optional sign, fraction and exponent, normalized so the decimal
// parser accepts it ("5." becomes "5", ".5" becomes "0.5").
func leadingFloat(s string) string {
	i := 0
	sign := ""
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = "-"
		}
		i++
	}
	intEnd := scanDigits(s, i)
	intPart := s[i:intEnd]
	end := intEnd
	fracPart := ""
	if end < len(s) && s[end] == '.' {
		fracEnd := scanDigits(s, end+1)
		fracPart = s[end+1 : fracEnd]
		if intPart != "" || fracPart != "" {
			end = fracEnd
		}
	}
	if intPart == "" && fracPart == "" {
		return ""
	}
	if intPart == "" {
		intPart = "0"
	}
	lit := sign + intPart
	if fracPart != "" {
		lit += "." + fracPart
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		j := end + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expEnd := scanDigits(s, j); expEnd > j {
			lit += "e" + s[end+1:expEnd]
		}
	}
	return lit
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// HasDetailNo reports whether the row's first cell reads as a non-zero
// integer. Header, blank and marker rows fail this test.
func HasDetailNo(cell string) bool {
	n, ok := ParseInt(cell)
	return ok && n != 0
}
