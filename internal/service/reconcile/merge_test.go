package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
)

func rawRec(empID, date, status string) attendance.RawRecord {
	return attendance.RawRecord{EmployeeID: empID, Date: date, Attendance: status}
}

func TestMergeSources_KeyUniqueness(t *testing.T) {
	sourceA := []attendance.RawRecord{
		rawRec("RBIS0001", "2024-01-01T00:00:00", "Present"),
		rawRec("RBIS0001", "2024-01-02", "Present"),
		rawRec("RBIS0002", "2024-01-01", "Absent"),
	}
	sourceB := []attendance.RawRecord{
		rawRec("RBIS0001", "2024-01-01", "Absent"),
		rawRec("RBIS0002", "2024-01-01T08:00:00", "Present"),
	}

	merged := MergeSources(sourceA, sourceB)

	assert.Len(t, merged, 3)
	for key, rec := range merged {
		assert.Equal(t, rec.Key(), key)
	}
}

func TestMergeSources_Idempotence(t *testing.T) {
	source := []attendance.RawRecord{
		{EmployeeID: "RBIS0001", Date: "2024-01-01T00:00:00", Attendance: "Present", InDuration: "08:00"},
		{EmployeeID: "RBIS0002", Date: "2024-01-01", Attendance: "On Leave"},
	}

	once := MergeSources(source, nil)
	twice := MergeSources(append(append([]attendance.RawRecord{}, source...), source...), source)

	require.Len(t, twice, len(once))
	for key, rec := range once {
		assert.Equal(t, *rec, *twice[key])
	}
}

func TestMergeSources_FieldFillMonotonicity(t *testing.T) {
	sourceA := []attendance.RawRecord{
		{EmployeeID: "RBIS0001", Date: "2024-01-01", Attendance: "Present", InDuration: "08:00"},
	}
	sourceB := []attendance.RawRecord{
		{EmployeeID: "RBIS0001", Date: "2024-01-01", Attendance: "Present", InDuration: "", OutDuration: "01:30"},
	}

	merged := MergeSources(sourceA, sourceB)

	require.Len(t, merged, 1)
	rec := merged["RBIS0001_2024-01-01"]
	require.NotNil(t, rec)
	assert.Equal(t, "08:00", rec.InDuration, "non-empty value must never be overwritten")
	assert.Equal(t, "01:30", rec.OutDuration, "empty field fills from the later source")

	// Same data, opposite source order: the filled result is identical.
	reversed := MergeSources(sourceB, sourceA)
	assert.Equal(t, "08:00", reversed["RBIS0001_2024-01-01"].InDuration)
	assert.Equal(t, "01:30", reversed["RBIS0001_2024-01-01"].OutDuration)
}

func TestMergeSources_StatusPriority(t *testing.T) {
	cases := []struct {
		name    string
		first   string
		second  string
		want    attendance.Status
	}{
		{"present beats absent", "Present", "Absent", attendance.StatusPresent},
		{"absent upgraded to present", "Absent", "Present", attendance.StatusPresent},
		{"on leave beats absent", "Absent", "On Leave", attendance.StatusOnLeave},
		{"present beats on leave", "On Leave", "Present", attendance.StatusPresent},
		{"unknown ranks as absent", "???", "On Leave", attendance.StatusOnLeave},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			merged := MergeSources(
				[]attendance.RawRecord{rawRec("RBIS0001", "2024-01-01", c.first)},
				[]attendance.RawRecord{rawRec("RBIS0001", "2024-01-01", c.second)},
			)
			require.Len(t, merged, 1)
			assert.Equal(t, c.want, merged["RBIS0001_2024-01-01"].Status)
		})
	}
}

func TestMergeSources_FirstWriteWinsForBase(t *testing.T) {
	sourceA := []attendance.RawRecord{
		{EmployeeID: "RBIS0001", Date: "2024-01-01", Attendance: "Present", FirstIn: "09:00", EmployeeName: "Asha"},
	}
	sourceB := []attendance.RawRecord{
		{EmployeeID: "RBIS0001", Date: "2024-01-01", Attendance: "Present", FirstIn: "10:00", EmployeeName: "A. Kumar"},
	}

	merged := MergeSources(sourceA, sourceB)

	rec := merged["RBIS0001_2024-01-01"]
	require.NotNil(t, rec)
	assert.Equal(t, "09:00", rec.FirstIn, "base copy comes from the first source seen")
	assert.Equal(t, "Asha", rec.EmployeeName)
}
