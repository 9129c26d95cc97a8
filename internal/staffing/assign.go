package staffing

import (
	"time"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
)

type rowKey struct {
	date     time.Time
	interval int
}

// Assign runs the interval assigner (C5) over every demand cell, in the
// order given — callers must pass cells sorted by (date, interval)
// ascending, since the Sunday/36HS rule (§4.4) looks back at the same
// interval's already-computed Saturday row. It returns the nominal
// assignment rows and the list of shortage movements still needing a
// donor (From/To left empty, filled in by the movement resolver, C6).
func Assign(cells []model.DemandCell, agents []model.Agent) ([]model.AssignmentRow, []model.Movement) {
	rows := make([]model.AssignmentRow, 0, len(cells))
	var movements []model.Movement

	presentByKey := make(map[rowKey][]string, len(cells))

	for _, cell := range cells {
		lower, upper := model.Bounds(cell.Required)
		present := AvailableAgents(agents, cell.Date, cell.Interval)

		if model.WeekdayFromTime(cell.Date) == 6 {
			saturday := cell.Date.AddDate(0, 0, -1)
			used := make(map[string]struct{})
			for _, n := range presentByKey[rowKey{saturday, cell.Interval}] {
				used[n] = struct{}{}
			}
			present = ApplySundayExclusivity(present, lower, used)
		}

		count := len(present)
		shortage := lower - count
		if shortage < 0 {
			shortage = 0
		}
		surplus := count - upper
		if surplus < 0 {
			surplus = 0
		}

		if shortage > 0 {
			movements = append(movements, model.Movement{
				Date:     cell.Date,
				Interval: cell.Interval,
				Move:     shortage,
			})
		}

		leaders := dedupStrings(agentSuperiors(present))
		names := dedupStrings(agentNames(present))
		presentByKey[rowKey{cell.Date, cell.Interval}] = names

		rows = append(rows, model.AssignmentRow{
			Date:         cell.Date,
			Interval:     cell.Interval,
			Prime:        model.IsPrime(cell.Interval),
			Required:     cell.Required,
			Lower:        lower,
			Upper:        upper,
			Shortage:     shortage,
			Surplus:      surplus,
			Count:        count,
			State:        model.ClassifyState(count, lower, upper),
			Leaders:      leaders,
			PresentNames: names,
		})
	}

	return rows, movements
}

func agentNames(agents []model.Agent) []string {
	out := make([]string, len(agents))
	for i, a := range agents {
		out[i] = a.Name
	}
	return out
}

func agentSuperiors(agents []model.Agent) []string {
	out := make([]string, 0, len(agents))
	for _, a := range agents {
		if a.Superior != "" {
			out = append(out, a.Superior)
		}
	}
	return out
}

func dedupStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
