package staffing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
	"github.com/JoakoBallesteros/workforce-staffing/internal/table"
)

func TestMeltDemand(t *testing.T) {
	tbl := table.New(staffing.IntervalColumn, "2024-06-03", "2024-06-04", "not-a-date")
	tbl.AppendRow("08:00:00", 3, 4, "ignored")
	tbl.AppendRow("garbage", 1, 1, "x") // unparseable interval, dropped

	cells := staffing.MeltDemand(tbl)

	require.Len(t, cells, 2)
	assert.Equal(t, 480, cells[0].Interval)
	assert.Equal(t, 3, cells[0].Required)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), cells[0].Date)
	assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), cells[1].Date)
}

func TestSlicePeriod(t *testing.T) {
	mk := func(day int) model.DemandCell {
		return model.DemandCell{Date: time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC), Interval: 480, Required: 1}
	}
	cells := []model.DemandCell{mk(1), mk(7), mk(8), mk(14), mk(15), mk(21), mk(22), mk(30)}

	tests := []struct {
		period model.Period
		want   []int
	}{
		{model.PeriodMonth, []int{1, 7, 8, 14, 15, 21, 22, 30}},
		{model.PeriodWeek1, []int{1, 7}},
		{model.PeriodWeek2, []int{8, 14}},
		{model.PeriodWeek3, []int{15, 21}},
		{model.PeriodWeek4, []int{22, 30}},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got := staffing.SlicePeriod(cells, tt.period)
			require.Len(t, got, len(tt.want))
			for i, d := range tt.want {
				assert.Equal(t, d, got[i].Date.Day())
			}
		})
	}
}

func TestSlicePeriodClampsShortMonth(t *testing.T) {
	// February 2024 (leap) has 29 days; sem4 should clamp to day 29, not 22-31.
	cells := []model.DemandCell{
		{Date: time.Date(2024, 2, 22, 0, 0, 0, 0, time.UTC), Interval: 0, Required: 1},
		{Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Interval: 0, Required: 1},
	}
	got := staffing.SlicePeriod(cells, model.PeriodWeek4)
	assert.Len(t, got, 2)
}
