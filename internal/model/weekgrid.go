package model

import "time"

// Weekday is a Monday-first day index, 0=Mon .. 6=Sun, matching the off-day
// set's indexing (§3).
type Weekday int

// WeekdayNames gives the display name for each Weekday index, used as both
// presence-grid and break-column headers.
var WeekdayNames = [7]string{
	"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sabado", "Domingo",
}

// WeekdayFromTime converts a date's time.Weekday (Sunday=0) to the
// Monday-first convention used throughout this package.
func WeekdayFromTime(t time.Time) int {
	wd := int(t.Weekday())
	return (wd + 6) % 7
}

// WeekStart returns the Monday (date-only, same location) of the ISO week
// containing t.
func WeekStart(t time.Time) time.Time {
	offset := WeekdayFromTime(t)
	return t.AddDate(0, 0, -offset)
}

// WeekGridRow is one agent's row in a week's presence/break grid.
type WeekGridRow struct {
	DNI      string
	Name     string
	Service  string
	Superior string
	Entry    string // HH:MM, the agent's canonical roster entry time

	// Present[d] is true if the agent worked at least one interval on
	// weekday d (0=Mon..6=Sun) that week; false means the cell renders as
	// the literal "Franco".
	Present [7]bool

	// Break[d] is "HH:MM" or "" (no break recorded / agent didn't work).
	Break [7]string
}
