package attendance

// Status is the reconciled attendance status of an employee on a date.
type Status string

const (
	StatusPresent Status = "Present"
	StatusOnLeave Status = "On Leave"
	StatusAbsent  Status = "Absent"
)

// Priority orders statuses for merge conflicts: the most favorable
// signal from either source wins. Unknown statuses rank with Absent.
func (s Status) Priority() int {
	switch s {
	case StatusPresent:
		return 2
	case StatusOnLeave:
		return 1
	default:
		return 0
	}
}

// Placeholder values used by the upstream feeds for missing fields.
const (
	NoClockTime = "--:--"
	NoDuration  = "00:00"
)

// RawRecord is a record as delivered by either upstream attendance feed.
// Field names follow the feed's wire format verbatim.
type RawRecord struct {
	ID            int64  `json:"id,omitempty"`
	EmployeeID    string `json:"EmpID"`
	EmployeeName  string `json:"Employee_Name"`
	Date          string `json:"Date"`
	Attendance    string `json:"Attendance"`
	FirstIn       string `json:"First_In"`
	LastOut       string `json:"Last_Out"`
	InDuration    string `json:"In_Duration"`
	OutDuration   string `json:"Out_Duration"`
	TotalDuration string `json:"Total_Duration"`
}

// Record is a reconciled attendance record. After merging there is at
// most one Record per (EmployeeID, Date) pair, Date is canonical
// YYYY-MM-DD, and absent employees carry synthesized placeholder rows.
type Record struct {
	ID            int64
	EmployeeID    string
	EmployeeName  string
	Date          string
	Status        Status
	FirstIn       string
	LastOut       string
	InDuration    string
	OutDuration   string
	TotalDuration string

	// Synthesized marks gap-filled absence rows that have no upstream id.
	Synthesized bool
}

// Key is the merge identity of the record.
func (r Record) Key() string {
	return r.EmployeeID + "_" + r.Date
}

// DailyStat is one point of the dashboard time series. It is derived,
// never persisted, and recomputed on every query.
type DailyStat struct {
	Date     string
	Present  int
	Absent   int
	OnLeave  int
	AvgHours float64
}
