package model

import "time"

// DemandCell is one required-headcount observation: a date, an
// interval-start time-of-day (minutes from midnight), and the required
// agent count for that (date, interval).
type DemandCell struct {
	Date     time.Time // normalized to midnight UTC, date-only
	Interval int       // minutes from midnight
	Required int
}

// Bounds computes the acceptable staffing window [L, U] for a required
// count, per §3:
//
//	required < 10: L = max(required-1, 0), U = required+1
//	required < 20: L = max(required-2, 0), U = required+2
//	otherwise:     L = floor(0.9*required), U = ceil(1.1*required)
func Bounds(required int) (lower, upper int) {
	switch {
	case required < 10:
		lower = required - 1
		if lower < 0 {
			lower = 0
		}
		upper = required + 1
	case required < 20:
		lower = required - 2
		if lower < 0 {
			lower = 0
		}
		upper = required + 2
	default:
		lower = int(0.9 * float64(required))
		upper = ceilFloat(1.1 * float64(required))
	}
	return lower, upper
}

func ceilFloat(f float64) int {
	i := int(f)
	if float64(i) < f {
		return i + 1
	}
	return i
}

// IsPrime reports whether minute-of-day t falls in the "prime" window
// 09:00 (inclusive) to 21:00 (exclusive).
func IsPrime(t int) bool {
	const primeStart, primeEnd = 9 * 60, 21 * 60
	return t >= primeStart && t < primeEnd
}
