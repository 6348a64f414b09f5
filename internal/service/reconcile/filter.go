package reconcile

import (
	"strings"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
)

// DefaultUnfilteredCap bounds unfiltered listings so the dashboard table
// stays renderable; explicit filters lift it.
const DefaultUnfilteredCap = 50

// Apply filters the reconciled slice per the query. The slice is assumed
// sorted ascending by date (DropNonWorkingDays guarantees it); dates are
// canonical YYYY-MM-DD so string comparison equals chronological order.
// today bounds the default view: with no date range set, future-dated
// records are excluded.
func Apply(records []attendance.Record, q attendance.Query, today string) []attendance.Record {
	filtered := make([]attendance.Record, 0, len(records))

	start, end := q.FromDate, q.ToDate
	if start != "" && end == "" {
		// blank "to" means a single day
		end = start
	}

	for _, rec := range records {
		if start != "" {
			if rec.Date < start || rec.Date > end {
				continue
			}
		} else if rec.Date > today {
			continue
		}
		filtered = append(filtered, rec)
	}

	if q.EmployeeID != "" {
		normalized := NormalizeEmployeeID(q.EmployeeID)
		raw := strings.ToLower(strings.TrimSpace(q.EmployeeID))
		filtered = keep(filtered, func(rec attendance.Record) bool {
			id := strings.ToLower(rec.EmployeeID)
			return id == normalized || id == raw
		})
	} else if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		filtered = keep(filtered, func(rec attendance.Record) bool {
			return strings.ToLower(rec.EmployeeID) == term ||
				(rec.EmployeeName != "" && strings.Contains(strings.ToLower(rec.EmployeeName), term))
		})
	}

	if q.Status != "" {
		if !q.IsFiltered() {
			// Status drill-down on the unfiltered view looks at the
			// latest date only, same as the stats summary.
			filtered = latestDateOnly(filtered)
		}
		filtered = keep(filtered, func(rec attendance.Record) bool {
			return rec.Status == attendance.Status(q.Status)
		})
	}

	if q.Limit > 0 && len(filtered) > q.Limit {
		filtered = filtered[:q.Limit]
	} else if q.Limit == 0 && q.Status == "" && !q.IsFiltered() && len(filtered) > DefaultUnfilteredCap {
		filtered = filtered[:DefaultUnfilteredCap]
	}

	return filtered
}

func keep(records []attendance.Record, pred func(attendance.Record) bool) []attendance.Record {
	out := records[:0]
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// LatestDate returns the most recent date present in the slice, or ""
// when the slice is empty.
func LatestDate(records []attendance.Record) string {
	latest := ""
	for _, rec := range records {
		if rec.Date > latest {
			latest = rec.Date
		}
	}
	return latest
}

func latestDateOnly(records []attendance.Record) []attendance.Record {
	latest := LatestDate(records)
	if latest == "" {
		return records
	}
	return keep(records, func(rec attendance.Record) bool {
		return rec.Date == latest
	})
}

// ResolveActiveEmployee identifies the single employee a filter resolved
// to, if any: either an explicit employee filter or a search whose
// results all share one id.
func ResolveActiveEmployee(records []attendance.Record, q attendance.Query) *attendance.ActiveEmployee {
	if len(records) == 0 {
		return nil
	}
	if q.EmployeeID == "" {
		if strings.TrimSpace(q.Search) == "" {
			return nil
		}
		first := records[0].EmployeeID
		for _, rec := range records[1:] {
			if rec.EmployeeID != first {
				return nil
			}
		}
	}

	for _, rec := range records {
		if rec.EmployeeName != "" {
			return &attendance.ActiveEmployee{EmployeeID: rec.EmployeeID, Name: rec.EmployeeName}
		}
	}
	return &attendance.ActiveEmployee{EmployeeID: records[0].EmployeeID, Name: "Unknown Employee"}
}
