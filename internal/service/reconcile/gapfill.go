package reconcile

import (
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/employee"
)

// Name placeholders the feeds emit when they do not know an employee.
var namePlaceholders = map[string]struct{}{
	"":        {},
	"Unknown": {},
	"--":      {},
}

// FillAbsences ensures every roster employee has an entry for every date
// already present in the merged set, synthesizing explicit Absent rows
// for the missing combinations. Dates with zero records are not
// backfilled: no entry for a date means the date is out of scope.
// Existing entries with a placeholder name get the roster name.
//
// O(distinct dates x roster size), which is fine at organizational scale.
func FillAbsences(merged map[string]*attendance.Record, roster []employee.Employee) {
	if len(roster) == 0 {
		return
	}

	dates := make(map[string]struct{})
	for _, rec := range merged {
		dates[rec.Date] = struct{}{}
	}

	for date := range dates {
		for _, emp := range roster {
			key := emp.EmployeeID + "_" + date
			if rec, ok := merged[key]; ok {
				if _, placeholder := namePlaceholders[rec.EmployeeName]; placeholder {
					rec.EmployeeName = emp.Name
				}
				continue
			}

			merged[key] = &attendance.Record{
				EmployeeID:    emp.EmployeeID,
				EmployeeName:  emp.Name,
				Date:          date,
				Status:        attendance.StatusAbsent,
				FirstIn:       attendance.NoClockTime,
				LastOut:       attendance.NoClockTime,
				InDuration:    attendance.NoDuration,
				TotalDuration: attendance.NoDuration,
				Synthesized:   true,
			}
		}
	}
}
