package http

import (
	"net/http"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/handler/http/response"
)

type HolidayHandler interface {
	// List returns the holiday calendar; ?upcoming=true filters to
	// today and later
	List(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewHolidayHandler(attendanceService attendance.AttendanceService) HolidayHandler {
	return &holidayHandlerImpl{attendanceService: attendanceService}
}

// List handles GET /holidays
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	upcomingOnly := r.URL.Query().Get("upcoming") == "true"

	result, err := h.attendanceService.Holidays(r.Context(), upcomingOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
