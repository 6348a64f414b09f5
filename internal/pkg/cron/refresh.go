package cron

import (
	"context"
	"time"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
)

// RegisterUpstreamRefresh schedules the periodic upstream fetch. The job
// only kicks the coalescer; the attendance service serializes the actual
// recomputes, so an interval shorter than a refresh cycle cannot pile up
// concurrent fetches.
func RegisterUpstreamRefresh(s *Scheduler, svc attendance.AttendanceService, interval time.Duration) {
	s.AddJob("upstream-refresh", interval, func(ctx context.Context) error {
		svc.TriggerRefresh()
		return nil
	})
}
