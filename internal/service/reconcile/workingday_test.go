package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/holiday"
)

// 2024-01-07 is a Sunday; 2024-01-08 a Monday.

func mergedSet(recs ...attendance.Record) map[string]*attendance.Record {
	m := make(map[string]*attendance.Record, len(recs))
	for i := range recs {
		m[recs[i].Key()] = &recs[i]
	}
	return m
}

func TestDropNonWorkingDays_SuppressesSundayAbsence(t *testing.T) {
	merged := mergedSet(
		attendance.Record{EmployeeID: "RBIS0001", Date: "2024-01-07", Status: attendance.StatusAbsent, Synthesized: true},
		attendance.Record{EmployeeID: "RBIS0001", Date: "2024-01-08", Status: attendance.StatusAbsent, Synthesized: true},
	)

	records := DropNonWorkingDays(merged, nil)

	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-08", records[0].Date)
}

func TestDropNonWorkingDays_KeepsSundayPresence(t *testing.T) {
	merged := mergedSet(
		attendance.Record{EmployeeID: "RBIS0001", Date: "2024-01-07", Status: attendance.StatusPresent},
	)

	records := DropNonWorkingDays(merged, nil)

	require.Len(t, records, 1, "working on a Sunday is a real signal")
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
}

func TestDropNonWorkingDays_SuppressesHolidayNoise(t *testing.T) {
	merged := mergedSet(
		attendance.Record{EmployeeID: "RBIS0001", Date: "2024-01-26", Status: attendance.StatusAbsent},
		attendance.Record{EmployeeID: "RBIS0002", Date: "2024-01-26", Status: attendance.StatusPresent},
		attendance.Record{EmployeeID: "RBIS0003", Date: "2024-01-26", Status: attendance.StatusOnLeave},
	)
	holidays := []holiday.Holiday{{Date: "2024-01-26T00:00:00", Name: "Republic Day"}}

	records := DropNonWorkingDays(merged, holidays)

	require.Len(t, records, 1)
	assert.Equal(t, "RBIS0002", records[0].EmployeeID)
}

func TestDropNonWorkingDays_KeepsUnparseableDates(t *testing.T) {
	merged := mergedSet(
		attendance.Record{EmployeeID: "RBIS0001", Date: "garbled", Status: attendance.StatusAbsent},
	)

	records := DropNonWorkingDays(merged, nil)

	assert.Len(t, records, 1, "a date that cannot be parsed cannot be a Sunday")
}

func TestDropNonWorkingDays_SortsByDateThenEmployee(t *testing.T) {
	merged := mergedSet(
		attendance.Record{EmployeeID: "RBIS0002", Date: "2024-01-02", Status: attendance.StatusPresent},
		attendance.Record{EmployeeID: "RBIS0001", Date: "2024-01-02", Status: attendance.StatusPresent},
		attendance.Record{EmployeeID: "RBIS0003", Date: "2024-01-01", Status: attendance.StatusPresent},
	)

	records := DropNonWorkingDays(merged, nil)

	require.Len(t, records, 3)
	assert.Equal(t, "RBIS0003", records[0].EmployeeID)
	assert.Equal(t, "RBIS0001", records[1].EmployeeID)
	assert.Equal(t, "RBIS0002", records[2].EmployeeID)
}
