package employee

// Employee is a roster entry from the HR API. The roster only tells the
// reconciler who should have an attendance record on a given date.
type Employee struct {
	EmployeeID string `json:"EmpID"`
	Name       string `json:"Name"`
}
