// Package rates holds the step tables that price a part from its dimensions.
package rates

import "github.com/shopspring/decimal"

// Step is one bracket of a Ladder: values up to and including UpTo take Rate.
type Step struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

// Ladder is a one-dimensional step table. Steps are tested in ascending
// order of UpTo; a value beyond every step takes Fallback.
type Ladder struct {
	Steps    []Step
	Fallback decimal.Decimal
}

// NewLadder builds a ladder from (upTo, rate) pairs given as strings.
func NewLadder(fallback string, pairs ...[2]string) Ladder {
	l := Ladder{Fallback: decimal.RequireFromString(fallback)}
	for _, p := range pairs {
		l.Steps = append(l.Steps, Step{
			UpTo: decimal.RequireFromString(p[0]),
			Rate: decimal.RequireFromString(p[1]),
		})
	}
	return l
}

// Lookup returns the rate of the first step covering v, and whether a step
// matched. The fallback is returned when none did.
func (l Ladder) Lookup(v decimal.Decimal) (decimal.Decimal, bool) {
	for _, s := range l.Steps {
		if v.LessThanOrEqual(s.UpTo) {
			return s.Rate, true
		}
	}
	return l.Fallback, false
}

// Rate is Lookup without the match flag.
func (l Ladder) Rate(v decimal.Decimal) decimal.Decimal {
	r, _ := l.Lookup(v)
	return r
}
