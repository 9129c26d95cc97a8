package staffing

import (
	"time"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
)

// AvailableAgents returns the agents whose shift window covers interval on
// date and who are not off that weekday. It does not apply the Sunday/36HS
// exclusivity rule — that requires the already-computed rows for the
// preceding Saturday and lives in the interval assigner (C5).
func AvailableAgents(agents []model.Agent, date time.Time, interval int) []model.Agent {
	weekday := model.WeekdayFromTime(date)
	out := make([]model.Agent, 0, len(agents))
	for _, a := range agents {
		if a.IsOff(weekday) {
			continue
		}
		if !a.Covers(interval) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ApplySundayExclusivity implements the Sunday/36HS rule from §4.4: given
// the agents otherwise present on a Sunday interval, and the set of names
// already credited to the same interval on the preceding Saturday,
//  1. exclude any name already counted on Saturday,
//  2. split the remainder into 36HS agents and everyone else,
//  3. keep every 36HS agent,
//  4. top up from the rest, in roster order, until lower is met.
func ApplySundayExclusivity(present []model.Agent, lower int, saturdayNames map[string]struct{}) []model.Agent {
	filtered := make([]model.Agent, 0, len(present))
	for _, a := range present {
		if _, used := saturdayNames[a.Name]; used {
			continue
		}
		filtered = append(filtered, a)
	}

	var p36, others []model.Agent
	for _, a := range filtered {
		if a.Contract == model.Contract36HS {
			p36 = append(p36, a)
		} else {
			others = append(others, a)
		}
	}

	need := lower - len(p36)
	if need < 0 {
		need = 0
	}
	if need > len(others) {
		need = len(others)
	}

	out := make([]model.Agent, 0, len(p36)+need)
	out = append(out, p36...)
	out = append(out, others[:need]...)
	return out
}
