package staffing

import (
	"math/rand"
	"sort"
	"time"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
)

const breakBuffer = 2 * 60 // minutes

// PresenceRecord is one agent's worked interval, expanded from an
// assignment row's PresentNames (C9's input shape).
type PresenceRecord struct {
	Name     string
	Date     time.Time
	Interval int
}

// ExpandPresence flattens assignment rows into one PresenceRecord per
// (row, present agent name).
func ExpandPresence(rows []model.AssignmentRow) []PresenceRecord {
	var out []PresenceRecord
	for _, r := range rows {
		for _, name := range r.PresentNames {
			out = append(out, PresenceRecord{Name: name, Date: r.Date, Interval: r.Interval})
		}
	}
	return out
}

// BuildWeekGrids groups presence records into ISO (Monday-start) weeks and
// pivots each into a per-agent presence/break grid, keyed by week start
// date. rng drives the break-window synthesiser (§4.9 step 4, the
// redesigned uniform-random pick); pass the same rng (or two rngs seeded
// identically) across calls for reproducible output, per I10.
func BuildWeekGrids(records []PresenceRecord, agents []model.Agent, serviceLabel string, rng *rand.Rand) map[time.Time][]model.WeekGridRow {
	agentByName := make(map[string]model.Agent, len(agents))
	for _, a := range agents {
		agentByName[a.Name] = a
	}

	type weekAgentKey struct {
		week time.Time
		name string
	}
	// intervals[weekAgentKey][weekday] = sorted worked intervals that day
	intervals := make(map[weekAgentKey]*[7][]int)

	for _, rec := range records {
		week := model.WeekStart(rec.Date)
		key := weekAgentKey{week: week, name: rec.Name}
		bucket, ok := intervals[key]
		if !ok {
			bucket = &[7][]int{}
			intervals[key] = bucket
		}
		wd := model.WeekdayFromTime(rec.Date)
		bucket[wd] = append(bucket[wd], rec.Interval)
	}

	out := make(map[time.Time][]model.WeekGridRow)
	names := make(map[time.Time]map[string]struct{})

	for key := range intervals {
		if names[key.week] == nil {
			names[key.week] = make(map[string]struct{})
		}
		names[key.week][key.name] = struct{}{}
	}

	// Visit weeks in date order so rng draws happen in a fixed sequence.
	weeks := make([]time.Time, 0, len(names))
	for week := range names {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	for _, week := range weeks {
		nameSet := names[week]
		sortedNames := make([]string, 0, len(nameSet))
		for n := range nameSet {
			sortedNames = append(sortedNames, n)
		}
		sort.Strings(sortedNames)

		rowsOut := make([]model.WeekGridRow, 0, len(sortedNames))
		for _, name := range sortedNames {
			bucket := intervals[weekAgentKey{week: week, name: name}]
			agent := agentByName[name]

			row := model.WeekGridRow{
				DNI:      agent.DNI,
				Name:     name,
				Service:  serviceLabel,
				Superior: agent.Superior,
				Entry:    minutesToHHMM(agent.Entry),
			}
			for wd := 0; wd < 7; wd++ {
				worked := bucket[wd]
				row.Present[wd] = len(worked) > 0
				if worked == nil {
					row.Break[wd] = ""
					continue
				}
				sorted := append([]int(nil), worked...)
				sort.Ints(sorted)
				row.Break[wd] = minutesToHHMM(pickBreak(sorted, rng))
			}
			rowsOut = append(rowsOut, row)
		}
		out[week] = rowsOut
	}

	return out
}

// pickBreak chooses a break-time interval from an agent's sorted worked
// intervals for one weekday, per §4.9 step 4:
//   - fewer than three intervals: the median.
//   - otherwise: uniformly at random among intervals inside the window
//     [first+2h, last-2h]; if that window contains none, falls back to the
//     median.
func pickBreak(sorted []int, rng *rand.Rand) int {
	if len(sorted) < 3 {
		return sorted[len(sorted)/2]
	}

	lower := sorted[0] + breakBuffer
	upper := sorted[len(sorted)-1] - breakBuffer

	var candidates []int
	for _, v := range sorted {
		if v >= lower && v <= upper {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return sorted[len(sorted)/2]
	}
	return candidates[rng.Intn(len(candidates))]
}
