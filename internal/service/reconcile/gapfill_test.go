package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/employee"
)

func TestFillAbsences_SynthesizesMissingCombinations(t *testing.T) {
	merged := MergeSources([]attendance.RawRecord{
		rawRec("RBIS0001", "2024-01-01", "Present"),
		rawRec("RBIS0001", "2024-01-02", "Present"),
		rawRec("RBIS0002", "2024-01-01", "On Leave"),
	}, nil)
	roster := []employee.Employee{
		{EmployeeID: "RBIS0001", Name: "Asha"},
		{EmployeeID: "RBIS0002", Name: "Ben"},
	}

	FillAbsences(merged, roster)

	// 2 roster employees x 2 distinct dates.
	require.Len(t, merged, 4)

	synth := merged["RBIS0002_2024-01-02"]
	require.NotNil(t, synth, "missing (employee, date) combination must be backfilled")
	assert.Equal(t, attendance.StatusAbsent, synth.Status)
	assert.Equal(t, "Ben", synth.EmployeeName)
	assert.Equal(t, attendance.NoClockTime, synth.FirstIn)
	assert.Equal(t, attendance.NoClockTime, synth.LastOut)
	assert.Equal(t, attendance.NoDuration, synth.InDuration)
	assert.Equal(t, attendance.NoDuration, synth.TotalDuration)
	assert.True(t, synth.Synthesized)

	// Existing entries are untouched.
	assert.Equal(t, attendance.StatusOnLeave, merged["RBIS0002_2024-01-01"].Status)
	assert.False(t, merged["RBIS0001_2024-01-01"].Synthesized)
}

func TestFillAbsences_DoesNotInventDates(t *testing.T) {
	merged := MergeSources([]attendance.RawRecord{
		rawRec("RBIS0001", "2024-01-01", "Present"),
	}, nil)
	roster := []employee.Employee{
		{EmployeeID: "RBIS0001", Name: "Asha"},
		{EmployeeID: "RBIS0002", Name: "Ben"},
	}

	FillAbsences(merged, roster)

	assert.Len(t, merged, 2, "only dates already present in the feeds are filled")
	assert.Nil(t, merged["RBIS0002_2024-01-02"])
}

func TestFillAbsences_EmptyRosterIsNoOp(t *testing.T) {
	merged := MergeSources([]attendance.RawRecord{
		rawRec("RBIS0001", "2024-01-01", "Present"),
	}, nil)

	FillAbsences(merged, nil)

	assert.Len(t, merged, 1)
}

func TestFillAbsences_ReplacesPlaceholderNames(t *testing.T) {
	for _, placeholder := range []string{"", "Unknown", "--"} {
		merged := MergeSources([]attendance.RawRecord{
			{EmployeeID: "RBIS0001", EmployeeName: placeholder, Date: "2024-01-01", Attendance: "Present"},
		}, nil)

		FillAbsences(merged, []employee.Employee{{EmployeeID: "RBIS0001", Name: "Asha"}})

		assert.Equal(t, "Asha", merged["RBIS0001_2024-01-01"].EmployeeName, "placeholder %q", placeholder)
	}
}

func TestFillAbsences_KeepsRealNames(t *testing.T) {
	merged := MergeSources([]attendance.RawRecord{
		{EmployeeID: "RBIS0001", EmployeeName: "A. Kumar", Date: "2024-01-01", Attendance: "Present"},
	}, nil)

	FillAbsences(merged, []employee.Employee{{EmployeeID: "RBIS0001", Name: "Asha Kumar"}})

	assert.Equal(t, "A. Kumar", merged["RBIS0001_2024-01-01"].EmployeeName)
}
