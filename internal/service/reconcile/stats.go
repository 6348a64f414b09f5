package reconcile

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
)

// FallbackWorkdayHours is assumed when an employee is confirmed Present
// but the feeds carried no usable duration.
const FallbackWorkdayHours = 8.0

// ParseDuration converts an upstream duration string to fractional
// hours. Empty, "0", "nan" and "00:00" are zero; "H:MM" becomes
// H + MM/60; anything else is parsed as a plain number, defaulting to
// zero on failure. There is no error path: malformed input degrades to
// zero-valued statistics.
func ParseDuration(d string) float64 {
	s := strings.TrimSpace(d)
	if s == "" || s == "0" || strings.EqualFold(s, "nan") || s == attendance.NoDuration {
		return 0
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		h, errH := strconv.ParseFloat(parts[0], 64)
		m, errM := strconv.ParseFloat(parts[1], 64)
		if errH != nil || errM != nil {
			return 0
		}
		return h + m/60
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// workedHours prefers the total office duration, falling back to the
// in-duration when the total is missing.
func workedHours(rec attendance.Record) float64 {
	if rec.TotalDuration != "" {
		return ParseDuration(rec.TotalDuration)
	}
	return ParseDuration(rec.InDuration)
}

func averageHours(records []attendance.Record) (avg float64, present int) {
	var sum float64
	for _, rec := range records {
		if rec.Status != attendance.StatusPresent {
			continue
		}
		present++
		sum += workedHours(rec)
	}
	if present > 0 {
		avg = sum / float64(present)
	}
	if avg == 0 && present > 0 {
		avg = FallbackWorkdayHours
	}
	return avg, present
}

// Summarize computes the stat-card counts over the filtered slice. With
// no explicit filter active, only the most recent date is summarized
// (the "Latest" view); average hours covers Present records only.
func Summarize(records []attendance.Record, q attendance.Query) attendance.StatsResponse {
	if len(records) == 0 {
		return attendance.StatsResponse{Label: "No Data"}
	}

	slice := records
	label := "Latest"
	if q.IsFiltered() {
		if q.FromDate != "" && q.ToDate == "" {
			label = q.FromDate
		} else {
			label = "Filtered"
		}
	} else {
		slice = latestDateOnly(records)
	}

	stats := attendance.StatsResponse{Label: label}
	for _, rec := range slice {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusAbsent:
			stats.Absent++
		case attendance.StatusOnLeave:
			stats.OnLeave++
		}
	}
	stats.AvgHours, _ = averageHours(slice)
	stats.ActiveEmployee = ResolveActiveEmployee(records, q)

	return stats
}

// DailySeries computes one point per distinct date in the slice, sorted
// ascending, for bar and line chart rendering.
func DailySeries(records []attendance.Record) []attendance.DailyStat {
	byDate := make(map[string][]attendance.Record)
	for _, rec := range records {
		byDate[rec.Date] = append(byDate[rec.Date], rec)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]attendance.DailyStat, 0, len(dates))
	for _, date := range dates {
		stat := attendance.DailyStat{Date: date}
		for _, rec := range byDate[date] {
			switch rec.Status {
			case attendance.StatusPresent:
				stat.Present++
			case attendance.StatusAbsent:
				stat.Absent++
			case attendance.StatusOnLeave:
				stat.OnLeave++
			}
		}
		stat.AvgHours, _ = averageHours(byDate[date])
		series = append(series, stat)
	}

	return series
}

// Aggregate sums status counts across the entire filtered slice.
func Aggregate(records []attendance.Record) attendance.AggregateResponse {
	var agg attendance.AggregateResponse
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			agg.Present++
		case attendance.StatusAbsent:
			agg.Absent++
		case attendance.StatusOnLeave:
			agg.OnLeave++
		}
	}
	agg.Total = agg.Present + agg.Absent + agg.OnLeave
	return agg
}
