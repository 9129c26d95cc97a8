package staffing

import "github.com/JoakoBallesteros/workforce-staffing/internal/model"

// AssignOffDays deterministically assigns weekly off-days to each agent
// from its contract category and its stable index in the sorted roster
// (I7: a pure function of the sorted roster — two runs on the same roster
// yield byte-identical off-day sets).
//
//   - 24HS: three consecutive off-days starting at its own index, mod 7.
//   - 30HS/35HS: one weekday off (index mod 5) plus one weekend day, split
//     evenly between Saturday and Sunday across all 30HS/35HS agents in
//     index order.
//   - 36HS: alternates Saturday/Sunday by index parity.
//   - anything else: no off-days.
func AssignOffDays(agents []model.Agent) {
	weekendIdxs := make([]int, 0, len(agents))
	for i, a := range agents {
		if a.Contract == model.Contract30HS || a.Contract == model.Contract35HS {
			weekendIdxs = append(weekendIdxs, i)
		}
	}
	half := len(weekendIdxs) / 2

	posInWeekend := make(map[int]int, len(weekendIdxs))
	for pos, idx := range weekendIdxs {
		posInWeekend[idx] = pos
	}

	for i := range agents {
		off := make(map[int]struct{})
		switch agents[i].Contract {
		case model.Contract24HS:
			for k := 0; k < 3; k++ {
				off[(i+k)%7] = struct{}{}
			}
		case model.Contract30HS, model.Contract35HS:
			wd := i % 5
			we := 5
			if posInWeekend[i] >= half {
				we = 6
			}
			off[wd] = struct{}{}
			off[we] = struct{}{}
		case model.Contract36HS:
			if i%2 == 0 {
				off[5] = struct{}{}
			} else {
				off[6] = struct{}{}
			}
		}
		agents[i].OffDays = off
	}
}
