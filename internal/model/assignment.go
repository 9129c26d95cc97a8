package model

import "time"

// State classifies an interval's staffing adequacy against its bounds.
type State string

const (
	StateUnder  State = "UNDER"
	StateOver   State = "OVER"
	StateLimite State = "LIMITE"
	StateOK     State = "OK"
)

// ClassifyState applies the §3 state rule: UNDER if count < L, OVER if
// count > U, LIMITE if count == L, else OK.
func ClassifyState(count, lower, upper int) State {
	switch {
	case count < lower:
		return StateUnder
	case count > upper:
		return StateOver
	case count == lower:
		return StateLimite
	default:
		return StateOK
	}
}

// AssignmentRow is one (date, interval) observation produced by the
// interval assigner (C5) and, after C7/C8, annotated with simulated
// movements and escalations.
type AssignmentRow struct {
	Date     time.Time
	Interval int // minutes from midnight
	Prime    bool

	Required int
	Lower    int
	Upper    int

	Shortage int
	Surplus  int
	Count    int
	State    State

	Leaders []string

	// Movements is the literal "{move} desde {from} → {to}" text recorded
	// by C7. A later movement targeting the same row replaces the earlier
	// text rather than appending to it (see Q1 in the design notes — not
	// exercised by the current resolver).
	Movements string

	// Escalation is the same textual shape, produced by C8 when a
	// movement's span exceeds two hours.
	Escalation string

	// PresentNames holds the agents counted present, in filtered-selection
	// order with duplicates removed, matching how Count was derived.
	PresentNames []string
}

// PresentJoined renders PresentNames the way the external report expects:
// ";"-joined, duplicates already removed, order preserved.
func (r AssignmentRow) PresentJoined() string {
	return joinSemicolon(r.PresentNames)
}

func joinSemicolon(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ";"
		}
		out += n
	}
	return out
}
