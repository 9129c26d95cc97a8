package staffing

import (
	"sort"
	"time"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/table"
	"github.com/JoakoBallesteros/workforce-staffing/internal/timeutil"
)

// IntervalColumn is the fixed name of the demand table's time-of-day column,
// set by the xlsx reader regardless of the workbook's original header text.
const IntervalColumn = "interval"

// MeltDemand flattens a wide demand table (one "interval" column plus one
// column per date) into a long-form sequence of (date, interval, required)
// cells. Columns whose name doesn't parse as a YYYY-MM-DD date are silently
// dropped, matching the original "date_cols" filter — a workbook may carry
// stray annotation columns alongside the real date columns.
func MeltDemand(t *table.Table) []model.DemandCell {
	var cells []model.DemandCell

	dateCols := make([]string, 0, len(t.Columns()))
	dates := make(map[string]time.Time, len(t.Columns()))
	for _, c := range t.Columns() {
		if c == IntervalColumn {
			continue
		}
		d, err := time.Parse("2006-01-02", c)
		if err != nil {
			continue
		}
		dateCols = append(dateCols, c)
		dates[c] = d
	}

	t.Rows(func(r table.Row) {
		intervalStr := r.String(IntervalColumn)
		minutes, err := timeutil.ParseTimeString(intervalStr)
		if err != nil {
			return
		}
		for _, c := range dateCols {
			raw := r.Get(c)
			if raw == nil || raw == "" {
				continue
			}
			cells = append(cells, model.DemandCell{
				Date:     dates[c],
				Interval: minutes,
				Required: r.Int(c),
			})
		}
	})

	sort.Slice(cells, func(i, j int) bool {
		if !cells[i].Date.Equal(cells[j].Date) {
			return cells[i].Date.Before(cells[j].Date)
		}
		return cells[i].Interval < cells[j].Interval
	})

	return cells
}

// weekRange is an inclusive [start, end] date span.
type weekRange struct {
	start, end time.Time
}

// periodWeeks computes the four calendar-week ranges (days 1-7, 8-14,
// 15-21, 22-end) for the month containing anchor, clamping short weeks the
// way the original tool does when the month doesn't reach that far.
func periodWeeks(anchor time.Time) [4]weekRange {
	year, month := anchor.Year(), anchor.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, anchor.Location()).Day()

	day := func(d int) time.Time {
		if d > daysInMonth {
			d = daysInMonth
		}
		return time.Date(year, month, d, 0, 0, 0, 0, anchor.Location())
	}

	w1End := day(7)
	w2Start := day(8)
	if daysInMonth < 8 {
		w2Start = w1End
	}
	w2End := day(14)
	w3Start := day(15)
	if daysInMonth < 15 {
		w3Start = w2End
	}
	w3End := day(21)
	w4Start := day(22)
	if daysInMonth < 22 {
		w4Start = w3End
	}
	w4End := day(daysInMonth)

	return [4]weekRange{
		{day(1), w1End},
		{w2Start, w2End},
		{w3Start, w3End},
		{w4Start, w4End},
	}
}

// SlicePeriod filters cells to the portion of the month named by period. A
// "mes" period returns cells unfiltered. The anchor month/year is taken
// from the earliest date present in cells.
func SlicePeriod(cells []model.DemandCell, period model.Period) []model.DemandCell {
	if period == model.PeriodMonth || len(cells) == 0 {
		return cells
	}

	anchor := cells[0].Date
	for _, c := range cells[1:] {
		if c.Date.Before(anchor) {
			anchor = c.Date
		}
	}
	weeks := periodWeeks(anchor)

	var rng weekRange
	switch period {
	case model.PeriodWeek1:
		rng = weeks[0]
	case model.PeriodWeek2:
		rng = weeks[1]
	case model.PeriodWeek3:
		rng = weeks[2]
	case model.PeriodWeek4:
		rng = weeks[3]
	default:
		return cells
	}

	out := make([]model.DemandCell, 0, len(cells))
	for _, c := range cells {
		if !c.Date.Before(rng.start) && !c.Date.After(rng.end) {
			out = append(out, c)
		}
	}
	return out
}
