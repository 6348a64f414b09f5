package http

import (
	"net/http"
	"strconv"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/handler/http/response"
)

type AttendanceHandler interface {
	// List returns the filtered reconciled record slice
	List(w http.ResponseWriter, r *http.Request)
	// Export returns the filtered slice as a CSV attachment
	Export(w http.ResponseWriter, r *http.Request)
	// Refresh requests an asynchronous upstream refresh
	Refresh(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// queryFromRequest builds the filter tuple from URL parameters. Limit
// parse errors surface through Query.Validate rather than here.
func queryFromRequest(r *http.Request) attendance.Query {
	params := r.URL.Query()
	q := attendance.Query{
		FromDate:   params.Get("from_date"),
		ToDate:     params.Get("to_date"),
		EmployeeID: params.Get("employee_id"),
		Search:     params.Get("search"),
		Status:     params.Get("status"),
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			limit = -1 // fails validation with a field error
		}
		q.Limit = limit
	}
	return q
}

// List handles GET /attendance
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.List(r.Context(), queryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export handles GET /attendance/export
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.attendanceService.ExportCSV(r.Context(), queryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSV(w, filename, data)
}

// Refresh handles POST /refresh. The refresh itself runs in the
// background; rapid calls coalesce into one recompute.
func (h *attendanceHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	h.attendanceService.TriggerRefresh()
	response.Accepted(w, "Refresh scheduled")
}
