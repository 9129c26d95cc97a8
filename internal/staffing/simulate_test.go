package staffing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
)

func TestApplyMovementsForcesLimite(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rows := []model.AssignmentRow{
		{Date: date, Interval: 10 * 60, Count: 3, State: model.StateUnder},
	}
	movements := []model.Movement{
		{Date: date, Interval: 10 * 60, Move: 2, From: "09:00", To: "10:00"},
	}

	out := staffing.ApplyMovements(rows, movements)

	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].Count)
	assert.Equal(t, model.StateLimite, out[0].State)
	assert.Equal(t, "2 desde 09:00 → 10:00", out[0].Movements)

	// original rows untouched
	assert.Equal(t, 3, rows[0].Count)
	assert.Equal(t, model.StateUnder, rows[0].State)
}

func TestApplyMovementsIgnoresNonMatchingRows(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rows := []model.AssignmentRow{{Date: date, Interval: 10 * 60, Count: 1, State: model.StateOK}}
	movements := []model.Movement{{Date: date, Interval: 11 * 60, Move: 1, From: "09:00", To: "11:00"}}

	out := staffing.ApplyMovements(rows, movements)
	assert.Equal(t, model.StateOK, out[0].State)
	assert.Equal(t, 1, out[0].Count)
}
