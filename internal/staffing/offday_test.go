package staffing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
)

func TestAssignOffDays24HS(t *testing.T) {
	agents := []model.Agent{
		{Name: "a", Contract: model.Contract24HS},
		{Name: "b", Contract: model.Contract24HS},
	}
	staffing.AssignOffDays(agents)

	assert.Equal(t, map[int]struct{}{0: {}, 1: {}, 2: {}}, agents[0].OffDays)
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}}, agents[1].OffDays)
}

func TestAssignOffDays36HSAlternatesWeekendDay(t *testing.T) {
	agents := []model.Agent{
		{Name: "a", Contract: model.Contract36HS},
		{Name: "b", Contract: model.Contract36HS},
		{Name: "c", Contract: model.Contract36HS},
	}
	staffing.AssignOffDays(agents)

	assert.True(t, agents[0].IsOff(5)) // Saturday
	assert.False(t, agents[0].IsOff(6))
	assert.True(t, agents[1].IsOff(6)) // Sunday
	assert.True(t, agents[2].IsOff(5))
}

func TestAssignOffDays30HSSplitsWeekendEvenly(t *testing.T) {
	agents := make([]model.Agent, 4)
	for i := range agents {
		agents[i] = model.Agent{Contract: model.Contract30HS}
	}
	staffing.AssignOffDays(agents)

	saturdays, sundays := 0, 0
	for _, a := range agents {
		if a.IsOff(5) {
			saturdays++
		}
		if a.IsOff(6) {
			sundays++
		}
	}
	assert.Equal(t, 2, saturdays)
	assert.Equal(t, 2, sundays)
}

func TestAssignOffDaysUnknownContractGetsNone(t *testing.T) {
	agents := []model.Agent{{Contract: model.ContractCategory("WEIRD")}}
	staffing.AssignOffDays(agents)
	assert.Empty(t, agents[0].OffDays)
}
