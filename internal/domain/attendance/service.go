package attendance

import (
	"context"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/employee"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/holiday"
)

// AttendanceService owns the reconciled snapshot and answers all
// dashboard queries against it.
type AttendanceService interface {
	// List retrieves the filtered reconciled record slice
	List(ctx context.Context, q Query) (ListResponse, error)

	// Stats computes present/absent/on-leave counts and average hours
	Stats(ctx context.Context, q Query) (StatsResponse, error)

	// DailySeries computes the per-date time series for charts
	DailySeries(ctx context.Context, q Query) (DailySeriesResponse, error)

	// Aggregate sums status counts over the whole filtered slice
	Aggregate(ctx context.Context, q Query) (AggregateResponse, error)

	// ExportCSV renders the filtered slice as a CSV document
	ExportCSV(ctx context.Context, q Query) (filename string, data []byte, err error)

	// Roster returns the employee roster as last fetched
	Roster(ctx context.Context) (employee.ListResponse, error)

	// Holidays returns the holiday calendar, optionally upcoming only
	Holidays(ctx context.Context, upcomingOnly bool) (holiday.ListResponse, error)

	// Refresh fetches all upstream feeds and rebuilds the snapshot
	Refresh(ctx context.Context) error

	// TriggerRefresh requests an asynchronous refresh; rapid successive
	// triggers coalesce into one recompute
	TriggerRefresh()

	// Status reports snapshot freshness
	Status(ctx context.Context) (SnapshotStatusResponse, error)
}
