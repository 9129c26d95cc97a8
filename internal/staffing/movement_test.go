package staffing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
)

func TestResolveMovementsCanonicalNearestDonor(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rows := []model.AssignmentRow{
		{Date: date, Interval: 9 * 60, State: model.StateOver},
		{Date: date, Interval: 11 * 60, State: model.StateOver},
	}
	movements := []model.Movement{{Date: date, Interval: 10 * 60, Move: 2}}

	out := staffing.ResolveMovements(rows, movements)
	require.Len(t, out, 1)
	// both donors are 60 minutes away; 9:00 wins as the first-seen tie.
	assert.Equal(t, "09:00", out[0].From)
	assert.Equal(t, "10:00", out[0].To)
}

func TestResolveMovementsExtraordinaryFallback(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rows := []model.AssignmentRow{
		{Date: date, Interval: 12 * 60, State: model.StateOK},
	}
	movements := []model.Movement{{Date: date, Interval: 10 * 60, Move: 1}}

	out := staffing.ResolveMovements(rows, movements)
	require.Len(t, out, 1)
	assert.Equal(t, model.ExtraordinaryDonor, out[0].From)
}

func TestResolveMovementsPostMidnightSearchesPriorDay(t *testing.T) {
	day1 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	rows := []model.AssignmentRow{
		{Date: day1, Interval: 90, State: model.StateOver},      // 01:30 on day1, within ±2h of the shortage
		{Date: day2, Interval: 10 * 60, State: model.StateOver}, // an OVER decoy on the wrong date
	}
	movements := []model.Movement{{Date: day2, Interval: 30, Move: 1}} // 00:30, before 01:00 -> searches day1

	out := staffing.ResolveMovements(rows, movements)
	require.Len(t, out, 1)
	// 01:30 has no canonical hour at-or-below it, so it falls back to the earliest one.
	assert.Equal(t, "08:00", out[0].From)
}

func TestResolveMovementsEveningFallbackPrefersClosestTo1900(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rows := []model.AssignmentRow{
		{Date: date, Interval: 17 * 60, State: model.StateOver}, // 17:00, outside ±2h window of 06:00
		{Date: date, Interval: 18*60 + 30, State: model.StateOver},
	}
	movements := []model.Movement{{Date: date, Interval: 6 * 60, Move: 1}}

	out := staffing.ResolveMovements(rows, movements)
	require.Len(t, out, 1)
	assert.Equal(t, "18:00", out[0].From) // 18:30 canonicalizes down to 18:00
}
