package staffing

import (
	"fmt"
	"time"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
)

const (
	nineteenHundred = 19 * 60
	eighteenThirty  = 18*60 + 30
	donorWindow     = 2 * 60 // minutes, ±2h
	earlyMorning    = 60     // before 01:00
)

type donorCandidate struct {
	absDelta int
	interval int
}

// ResolveMovements fills in each movement's From/To donor hour by searching
// rows for an overstaffed (OVER) interval on the same search date — the
// movement's own date, or the preceding date when the shortage interval
// falls before 01:00 (treated as belonging to the prior night). It returns
// a new slice; the input movements are not mutated.
func ResolveMovements(rows []model.AssignmentRow, movements []model.Movement) []model.Movement {
	out := make([]model.Movement, len(movements))
	for i, mv := range movements {
		searchDate := mv.Date
		if mv.Interval < earlyMorning {
			searchDate = mv.Date.AddDate(0, 0, -1)
		}

		rawFrom, extraordinary := findDonor(rows, searchDate, mv.Interval)

		mv.From = rawFrom
		if !extraordinary {
			mv.From = canonicalizeFrom(rawFrom)
		}
		mv.To = canonicalizeTo(mv.Interval)

		out[i] = mv
	}
	return out
}

// findDonor returns the raw "HH:MM" donor interval (or the extraordinary
// literal) per §4.6: first a same-date OVER row within ±2h, nearest wins;
// else the closest same-date OVER row at or before 18:30 to 19:00; else the
// extraordinary fallback.
func findDonor(rows []model.AssignmentRow, searchDate time.Time, baseInterval int) (string, bool) {
	var donors []donorCandidate
	for _, r := range rows {
		if r.State != model.StateOver || !r.Date.Equal(searchDate) {
			continue
		}
		delta := r.Interval - baseInterval
		abs := delta
		if abs < 0 {
			abs = -abs
		}
		if abs <= donorWindow && delta != 0 {
			donors = append(donors, donorCandidate{absDelta: abs, interval: r.Interval})
		}
	}
	if len(donors) > 0 {
		best := donors[0]
		for _, d := range donors[1:] {
			if d.absDelta < best.absDelta {
				best = d
			}
		}
		return minutesToHHMM(best.interval), false
	}

	var evening []donorCandidate
	for _, r := range rows {
		if r.State != model.StateOver || !r.Date.Equal(searchDate) {
			continue
		}
		if r.Interval > eighteenThirty {
			continue
		}
		dist := nineteenHundred - r.Interval
		if dist < 0 {
			dist = -dist
		}
		evening = append(evening, donorCandidate{absDelta: dist, interval: r.Interval})
	}
	if len(evening) == 0 {
		return model.ExtraordinaryDonor, true
	}
	best := evening[0]
	for _, d := range evening[1:] {
		if d.absDelta < best.absDelta {
			best = d
		}
	}
	return minutesToHHMM(best.interval), false
}

func canonicalizeFrom(rawHHMM string) string {
	hh := 0
	fmt.Sscanf(rawHHMM, "%d:", &hh)
	best := -1
	for _, h := range model.CanonicalEntryHours {
		if h <= hh && h > best {
			best = h
		}
	}
	if best == -1 {
		best = model.CanonicalEntryHours[0]
	}
	return fmt.Sprintf("%02d:00", best)
}

func canonicalizeTo(intervalMinutes int) string {
	if intervalMinutes < earlyMorning {
		return "19:00"
	}
	hh := intervalMinutes / 60
	if intervalMinutes%60 > 0 {
		hh++
	}
	best := -1
	for _, h := range model.CanonicalEntryHours {
		if h >= hh && (best == -1 || h < best) {
			best = h
		}
	}
	if best == -1 {
		best = model.CanonicalEntryHours[len(model.CanonicalEntryHours)-1]
	}
	return fmt.Sprintf("%02d:00", best)
}

func minutesToHHMM(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
