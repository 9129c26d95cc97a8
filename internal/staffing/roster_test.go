package staffing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
	"github.com/JoakoBallesteros/workforce-staffing/internal/table"
)

func rosterTable() *table.Table {
	t := table.New(staffing.ColName, staffing.ColDNI, staffing.ColSuperior,
		staffing.ColEntry, staffing.ColService, staffing.ColActive, staffing.ColContract)
	t.AppendRow("Beatriz Soto", "1", "Lead A", "08:00:00", "Internet", "ACTIVO", "30HS")
	t.AppendRow("Ana Diaz", "2", "Lead A", "09:00:00", "Internet", "ACTIVO", "24HS")
	t.AppendRow("Carlos Paz", "3", "Lead B", "10:00:00", "Flow", "ACTIVO", "35HS")      // wrong service
	t.AppendRow("Dario Mon", "4", "Lead A", "11:00:00", "Internet", "INACTIVO", "36HS") // inactive
	t.AppendRow("Eva Ruiz", "5", "Lead A", "12:00:00", "Internet", "ACTIVO", "WEIRD")
	return t
}

func TestLoadRosterFiltersAndSorts(t *testing.T) {
	svc, _ := model.LookupService(model.ServiceSopConectividad)
	agents, warnings, err := staffing.LoadRoster(rosterTable(), svc)
	require.NoError(t, err)

	require.Len(t, agents, 3)
	assert.Equal(t, "Ana Diaz", agents[0].Name)
	assert.Equal(t, 0, agents[0].Index)
	assert.Equal(t, "Beatriz Soto", agents[1].Name)
	assert.Equal(t, "Eva Ruiz", agents[2].Name)

	require.Len(t, warnings, 1)
	assert.Equal(t, "Eva Ruiz", warnings[0].AgentName)
}

func TestLoadRosterBadEntryTimeExcludesAgentSilently(t *testing.T) {
	svc, _ := model.LookupService(model.ServiceSopConectividad)
	bad := table.New(staffing.ColName, staffing.ColDNI, staffing.ColSuperior,
		staffing.ColEntry, staffing.ColService, staffing.ColActive, staffing.ColContract)
	bad.AppendRow("X", "1", "L", "not-a-time", "Internet", "ACTIVO", "24HS")
	bad.AppendRow("Y", "2", "L", "08:00:00", "Internet", "ACTIVO", "24HS")

	agents, _, err := staffing.LoadRoster(bad, svc)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "Y", agents[0].Name)
}
