package model

import "time"

// CanonicalEntryHours is the closed set of hours every movement endpoint
// snaps to.
var CanonicalEntryHours = []int{8, 9, 10, 11, 14, 15, 18, 19}

// ExtraordinaryDonor is the literal "from" value recorded when no same-day
// OVER row qualifies as a donor at all (§4.6 step 3).
const ExtraordinaryDonor = "19:00 (extraordinario)"

// Movement is a proposed shift-entry adjustment covering a shortage
// interval by pulling headcount from a donor hour.
type Movement struct {
	Date     time.Time
	Interval int // minutes from midnight, the shortage interval
	Move     int // positive headcount to move

	// From is either an HH:00 string in CanonicalEntryHours or the literal
	// ExtraordinaryDonor.
	From string
	// To is always an HH:00 string in CanonicalEntryHours.
	To string
}

// EscalationStep is one hour-stepping sub-movement produced when a
// Movement's span exceeds two hours (§4.8).
type EscalationStep struct {
	Date time.Time
	Move int
	From string
	To   string
}
