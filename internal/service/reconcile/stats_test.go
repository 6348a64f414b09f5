package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"0", 0},
		{"nan", 0},
		{"NaN", 0},
		{"00:00", 0},
		{"08:00", 8},
		{"8:30", 8.5},
		{"0:45", 0.75},
		{"7.5", 7.5},
		{"9", 9},
		{"abc", 0},
		{"ab:cd", 0},
		{" 08:15 ", 8.25},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, ParseDuration(c.input), 1e-9, "ParseDuration(%q)", c.input)
	}
}

func TestSummarize_CountsAndAverage(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "RBIS0001", Date: "2024-01-15", Status: attendance.StatusPresent, TotalDuration: "08:00"},
		{EmployeeID: "RBIS0002", Date: "2024-01-15", Status: attendance.StatusPresent, TotalDuration: "06:00"},
		{EmployeeID: "RBIS0003", Date: "2024-01-15", Status: attendance.StatusAbsent},
		{EmployeeID: "RBIS0004", Date: "2024-01-15", Status: attendance.StatusOnLeave},
	}

	stats := Summarize(records, attendance.Query{FromDate: "2024-01-15"})

	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 1, stats.OnLeave)
	assert.InDelta(t, 7.0, stats.AvgHours, 1e-9, "average covers Present records only")
	assert.Equal(t, "2024-01-15", stats.Label)
}

func TestSummarize_UnfilteredNarrowsToLatestDate(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "RBIS0001", Date: "2024-01-14", Status: attendance.StatusAbsent},
		{EmployeeID: "RBIS0001", Date: "2024-01-15", Status: attendance.StatusPresent, TotalDuration: "08:00"},
		{EmployeeID: "RBIS0002", Date: "2024-01-15", Status: attendance.StatusAbsent},
	}

	stats := Summarize(records, attendance.Query{})

	assert.Equal(t, "Latest", stats.Label)
	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 1, stats.Absent, "the older absence is outside the latest-date window")
	assert.Equal(t, 0, stats.OnLeave)
}

func TestSummarize_AverageFallsBackToFullWorkday(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "RBIS0001", Date: "2024-01-15", Status: attendance.StatusPresent, TotalDuration: "00:00"},
		{EmployeeID: "RBIS0002", Date: "2024-01-15", Status: attendance.StatusPresent},
	}

	stats := Summarize(records, attendance.Query{FromDate: "2024-01-15"})

	assert.InDelta(t, FallbackWorkdayHours, stats.AvgHours, 1e-9)
}

func TestSummarize_InDurationFallback(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "RBIS0001", Date: "2024-01-15", Status: attendance.StatusPresent, InDuration: "06:30"},
	}

	stats := Summarize(records, attendance.Query{FromDate: "2024-01-15"})

	assert.InDelta(t, 6.5, stats.AvgHours, 1e-9, "missing total falls back to the in-duration")
}

func TestSummarize_Labels(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "RBIS0001", Date: "2024-01-15", Status: attendance.StatusPresent},
	}

	assert.Equal(t, "No Data", Summarize(nil, attendance.Query{}).Label)
	assert.Equal(t, "Latest", Summarize(records, attendance.Query{}).Label)
	assert.Equal(t, "2024-01-15", Summarize(records, attendance.Query{FromDate: "2024-01-15"}).Label)
	assert.Equal(t, "Filtered", Summarize(records, attendance.Query{FromDate: "2024-01-14", ToDate: "2024-01-15"}).Label)
	assert.Equal(t, "Filtered", Summarize(records, attendance.Query{EmployeeID: "rbis0001"}).Label)
}

func TestDailySeries(t *testing.T) {
	records := []attendance.Record{
		{EmployeeID: "RBIS0001", Date: "2024-01-16", Status: attendance.StatusPresent, TotalDuration: "08:00"},
		{EmployeeID: "RBIS0001", Date: "2024-01-15", Status: attendance.StatusPresent, TotalDuration: "06:00"},
		{EmployeeID: "RBIS0002", Date: "2024-01-15", Status: attendance.StatusAbsent},
		{EmployeeID: "RBIS0003", Date: "2024-01-15", Status: attendance.StatusOnLeave},
	}

	series := DailySeries(records)

	require.Len(t, series, 2)
	assert.Equal(t, "2024-01-15", series[0].Date, "series is sorted ascending")
	assert.Equal(t, 1, series[0].Present)
	assert.Equal(t, 1, series[0].Absent)
	assert.Equal(t, 1, series[0].OnLeave)
	assert.InDelta(t, 6.0, series[0].AvgHours, 1e-9)
	assert.Equal(t, "2024-01-16", series[1].Date)
	assert.InDelta(t, 8.0, series[1].AvgHours, 1e-9)

	assert.Empty(t, DailySeries(nil))
}

func TestAggregate(t *testing.T) {
	records := []attendance.Record{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusOnLeave},
		{Status: attendance.Status("???")},
	}

	agg := Aggregate(records)

	assert.Equal(t, 2, agg.Present)
	assert.Equal(t, 1, agg.Absent)
	assert.Equal(t, 1, agg.OnLeave)
	assert.Equal(t, 4, agg.Total, "unknown statuses are not counted")
}
