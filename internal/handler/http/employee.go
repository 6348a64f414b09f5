package http

import (
	"net/http"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/handler/http/response"
)

type EmployeeHandler interface {
	// List returns the employee roster as last fetched upstream
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewEmployeeHandler(attendanceService attendance.AttendanceService) EmployeeHandler {
	return &employeeHandlerImpl{attendanceService: attendanceService}
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Roster(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
