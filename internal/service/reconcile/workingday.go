package reconcile

import (
	"sort"
	"time"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/holiday"
)

// DropNonWorkingDays removes records falling on a Sunday or a configured
// holiday unless the employee was genuinely Present that day: a
// synthesized Absent row on a non-working day is noise, but presence on
// a holiday is a real signal and is retained. The result is sorted by
// date, then employee id, so downstream output is deterministic.
func DropNonWorkingDays(merged map[string]*attendance.Record, holidays []holiday.Holiday) []attendance.Record {
	holidaySet := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidaySet[NormalizeDate(h.Date)] = struct{}{}
	}

	records := make([]attendance.Record, 0, len(merged))
	for _, rec := range merged {
		if rec.Status != attendance.StatusPresent {
			_, isHoliday := holidaySet[rec.Date]
			if isHoliday || isSunday(rec.Date) {
				continue
			}
		}
		records = append(records, *rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].EmployeeID < records[j].EmployeeID
	})

	return records
}

// isSunday is false for unparseable dates; they cannot be suppressed.
func isSunday(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	return err == nil && t.Weekday() == time.Sunday
}
