package staffing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
)

func TestPlanEscalationSplitsSpanOverTwoHours(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rows := []model.AssignmentRow{
		{Date: date, Movements: "3 desde 09:00 → 13:00"},
	}

	out, steps := staffing.PlanEscalation(rows)

	require.Len(t, out, 1)
	assert.Equal(t, "3 desde 09:00 → 10:00; 3 desde 10:00 → 11:00; 3 desde 11:00 → 12:00; 3 desde 12:00 → 13:00", out[0].Escalation)
	require.Len(t, steps, 4)
	assert.Equal(t, "09:00", steps[0].From)
	assert.Equal(t, "13:00", steps[3].To)
}

func TestPlanEscalationLeavesShortSpansAlone(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rows := []model.AssignmentRow{
		{Date: date, Movements: "1 desde 09:00 → 10:00"}, // 1h span, not escalated
		{Date: date, Movements: ""},                      // nothing to escalate
	}

	out, steps := staffing.PlanEscalation(rows)
	assert.Empty(t, out[0].Escalation)
	assert.Empty(t, out[1].Escalation)
	assert.Empty(t, steps)
}

func TestPlanEscalationHandlesMultipleClauses(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rows := []model.AssignmentRow{
		{Date: date, Movements: "1 desde 09:00 → 10:00; 2 desde 08:00 → 11:00"},
	}
	out, steps := staffing.PlanEscalation(rows)
	// only the second clause (3h span) escalates, into 3 one-hour steps
	assert.Equal(t, "2 desde 08:00 → 09:00; 2 desde 09:00 → 10:00; 2 desde 10:00 → 11:00", out[0].Escalation)
	assert.Len(t, steps, 3)
}
