package staffing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
)

func TestAssignSingleAgentCoverage(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	cells := []model.DemandCell{{Date: monday, Interval: 8 * 60, Required: 1}}
	agents := []model.Agent{
		{Name: "solo", Entry: 8 * 60, Egress: 16 * 60, Superior: "Lead", OffDays: map[int]struct{}{}},
	}

	rows, movements := staffing.Assign(cells, agents)

	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Count)
	assert.Equal(t, model.StateOK, rows[0].State)
	assert.Empty(t, movements)
}

func TestAssignShortageProducesUnresolvedMovement(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	cells := []model.DemandCell{{Date: monday, Interval: 8 * 60, Required: 10}}

	rows, movements := staffing.Assign(cells, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, model.StateUnder, rows[0].State)
	require.Len(t, movements, 1)
	assert.Equal(t, rows[0].Lower, movements[0].Move)
	assert.Empty(t, movements[0].From)
	assert.Empty(t, movements[0].To)
}

func TestAssignSundayLooksBackAtSaturday(t *testing.T) {
	saturday := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sunday := saturday.AddDate(0, 0, 1)
	interval := 10 * 60

	agents := []model.Agent{
		{Name: "carried", Entry: 8 * 60, Egress: 16 * 60, OffDays: map[int]struct{}{}},
		{Name: "p36", Contract: model.Contract36HS, Entry: 8 * 60, Egress: 16 * 60, OffDays: map[int]struct{}{}},
	}
	cells := []model.DemandCell{
		{Date: saturday, Interval: interval, Required: 1},
		{Date: sunday, Interval: interval, Required: 1},
	}

	rows, _ := staffing.Assign(cells, agents)
	require.Len(t, rows, 2)

	// "carried" counted Saturday must not be re-counted Sunday; only p36 remains.
	assert.ElementsMatch(t, []string{"carried", "p36"}, rows[0].PresentNames)
	assert.ElementsMatch(t, []string{"p36"}, rows[1].PresentNames)
}
