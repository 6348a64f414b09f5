package http

import (
	"net/http"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetStats returns the stat-card summary for the current filter
	GetStats(w http.ResponseWriter, r *http.Request)
	// GetDailySeries returns the per-date chart series
	GetDailySeries(w http.ResponseWriter, r *http.Request)
	// GetAggregate returns summed counts over the filtered slice
	GetAggregate(w http.ResponseWriter, r *http.Request)
	// GetStatus reports snapshot freshness
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewDashboardHandler(attendanceService attendance.AttendanceService) DashboardHandler {
	return &dashboardHandlerImpl{attendanceService: attendanceService}
}

// GetStats handles GET /dashboard/stats
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Stats(r.Context(), queryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailySeries handles GET /dashboard/daily
func (h *dashboardHandlerImpl) GetDailySeries(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.DailySeries(r.Context(), queryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAggregate handles GET /dashboard/aggregate
func (h *dashboardHandlerImpl) GetAggregate(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Aggregate(r.Context(), queryFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStatus handles GET /status
func (h *dashboardHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
