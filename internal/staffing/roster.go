package staffing

import (
	"sort"
	"strings"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/table"
	"github.com/JoakoBallesteros/workforce-staffing/internal/timeutil"
)

// Roster column names, as normalized by the xlsx reader (trimmed, as
// uploaded — the roster workbook's own header row uses these verbatim).
const (
	ColName     = "NOMBRE"
	ColDNI      = "DNI"
	ColService  = "SERVICIO"
	ColActive   = "ACTIVO"
	ColEntry    = "INGRESO"
	ColContract = "CONTRATO"
	ColSuperior = "SUPERIOR"
)

const activeValue = "ACTIVO"

// UnknownContractWarning is returned (not raised) once per agent whose
// CONTRATO cell doesn't match a known category, per Q4: the egress falls
// back to UnknownContractShiftHours but the operator should be able to
// notice it happened.
type UnknownContractWarning struct {
	AgentName string
	Raw       string
}

// LoadRoster filters t to active agents matching svc's roster pattern,
// parses their shift-entry time, and derives shift-egress from contract
// category. Agents are returned sorted by name with Index assigned in that
// order, matching the off-day planner's (C3) expectation. An agent whose
// entry time can't be parsed is excluded silently (per §4.2/§7) rather than
// failing the whole load — one bad cell among hundreds of valid agents
// shouldn't abort the run.
func LoadRoster(t *table.Table, svc model.ServiceInfo) ([]model.Agent, []UnknownContractWarning, error) {
	var agents []model.Agent
	var warnings []UnknownContractWarning

	t.Rows(func(r table.Row) {
		if strings.ToUpper(strings.TrimSpace(r.String(ColActive))) != activeValue {
			return
		}
		if !svc.MatchesRoster(r.String(ColService)) {
			return
		}

		name := strings.TrimSpace(r.String(ColName))
		entryRaw := strings.TrimSpace(r.String(ColEntry))
		entry, err := timeutil.ParseTimeString(entryRaw)
		if err != nil {
			return
		}

		contractRaw := r.String(ColContract)
		contract, ok := model.ParseContractCategory(contractRaw)
		shiftHours := model.UnknownContractShiftHours
		if ok {
			shiftHours = contract.ShiftHours()
		} else {
			warnings = append(warnings, UnknownContractWarning{AgentName: name, Raw: contractRaw})
		}
		egress := (entry + shiftHours*60) % timeutil.MinutesPerDay

		agents = append(agents, model.Agent{
			Name:     name,
			DNI:      strings.TrimSpace(r.String(ColDNI)),
			Contract: contract,
			Entry:    entry,
			Egress:   egress,
			Superior: strings.TrimSpace(r.String(ColSuperior)),
			Active:   true,
		})
	})

	sort.SliceStable(agents, func(i, j int) bool {
		return agents[i].Name < agents[j].Name
	})
	for i := range agents {
		agents[i].Index = i
	}

	return agents, warnings, nil
}
