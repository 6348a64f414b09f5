package attendance

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/employee"
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/holiday"
	"github.com/rutvikveer9289-cyber/HRMS/internal/pkg/sse"
	"github.com/rutvikveer9289-cyber/HRMS/internal/pkg/upstream"
	"github.com/rutvikveer9289-cyber/HRMS/internal/service/reconcile"
)

// Fetcher is the slice of the upstream client the service depends on.
type Fetcher interface {
	FetchAll(ctx context.Context) (*upstream.Payload, error)
}

// snapshot is one immutable output of the reconciliation pipeline. The
// service swaps the whole value on every refresh; readers never see a
// partially rebuilt state.
type snapshot struct {
	records     []attendance.Record
	roster      []employee.Employee
	holidays    []holiday.Holiday
	refreshID   string
	refreshedAt time.Time
	stale       bool
}

type AttendanceServiceImpl struct {
	fetcher Fetcher
	hub     *sse.Hub

	mu   sync.RWMutex
	snap *snapshot

	// trigger has capacity one: it is the single-slot pending-recompute
	// flag. Any number of triggers arriving while a refresh runs drain
	// into exactly one follow-up refresh.
	trigger chan struct{}

	// now is swappable in tests; the "on or before today" default view
	// depends on it.
	now func() time.Time
}

func NewAttendanceService(fetcher Fetcher, hub *sse.Hub) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		fetcher: fetcher,
		hub:     hub,
		trigger: make(chan struct{}, 1),
		now:     time.Now,
	}
}

// Run drains refresh triggers until ctx is cancelled. Exactly one
// refresh runs at a time; a trigger arriving mid-refresh is remembered
// and serviced right after.
func (s *AttendanceServiceImpl) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.trigger:
			if err := s.Refresh(ctx); err != nil {
				slog.Error("Snapshot refresh failed", "error", err)
			}
		}
	}
}

// TriggerRefresh implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TriggerRefresh() {
	select {
	case s.trigger <- struct{}{}:
	default:
		// a refresh is already pending; coalesce
	}
}

// Refresh implements attendance.AttendanceService. It fetches all four
// feeds and rebuilds the reconciled snapshot from scratch; the previous
// snapshot stays visible until the new one is ready.
func (s *AttendanceServiceImpl) Refresh(ctx context.Context) error {
	start := time.Now()

	payload, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetching upstream feeds: %w", err)
	}

	merged := reconcile.MergeSources(payload.SourceA, payload.SourceB)
	reconcile.FillAbsences(merged, payload.Roster)
	records := reconcile.DropNonWorkingDays(merged, payload.Holidays)

	snap := &snapshot{
		records:     records,
		roster:      payload.Roster,
		holidays:    payload.Holidays,
		refreshID:   uuid.NewString(),
		refreshedAt: s.now(),
		stale:       payload.Stale,
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	slog.Info("Snapshot rebuilt",
		"refresh_id", snap.refreshID,
		"records", len(records),
		"employees", len(payload.Roster),
		"holidays", len(payload.Holidays),
		"stale", payload.Stale,
		"duration", time.Since(start),
	)

	if s.hub != nil {
		s.hub.Broadcast(sse.Event{
			Event: "snapshot_refreshed",
			Data: attendance.SnapshotStatusResponse{
				RefreshID:     snap.refreshID,
				RefreshedAt:   snap.refreshedAt.Format(time.RFC3339),
				Stale:         snap.stale,
				RecordCount:   len(records),
				EmployeeCount: len(payload.Roster),
				HolidayCount:  len(payload.Holidays),
			},
		})
	}

	return nil
}

func (s *AttendanceServiceImpl) current() (*snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, attendance.ErrSnapshotNotReady
	}
	return s.snap, nil
}

func (s *AttendanceServiceImpl) today() string {
	return s.now().Format("2006-01-02")
}

// filtered applies the query over the current snapshot.
func (s *AttendanceServiceImpl) filtered(q attendance.Query) ([]attendance.Record, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return reconcile.Apply(snap.records, q, s.today()), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, q attendance.Query) (attendance.ListResponse, error) {
	if err := q.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, err := s.filtered(q)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	resp := attendance.ListResponse{
		TotalCount: len(records),
		Capped:     !q.IsFiltered() && q.Status == "" && q.Limit == 0 && len(records) == reconcile.DefaultUnfilteredCap,
		Records:    make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, toRecordResponse(rec))
	}
	return resp, nil
}

// Stats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Stats(ctx context.Context, q attendance.Query) (attendance.StatsResponse, error) {
	if err := q.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	records, err := s.filtered(q)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	return reconcile.Summarize(records, q), nil
}

// DailySeries implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DailySeries(ctx context.Context, q attendance.Query) (attendance.DailySeriesResponse, error) {
	if err := q.Validate(); err != nil {
		return attendance.DailySeriesResponse{}, err
	}

	records, err := s.filtered(q)
	if err != nil {
		return attendance.DailySeriesResponse{}, err
	}

	series := reconcile.DailySeries(records)
	resp := attendance.DailySeriesResponse{Days: make([]attendance.DailyStatResponse, 0, len(series))}
	for _, stat := range series {
		resp.Days = append(resp.Days, attendance.DailyStatResponse{
			Date:     stat.Date,
			Present:  stat.Present,
			Absent:   stat.Absent,
			OnLeave:  stat.OnLeave,
			AvgHours: stat.AvgHours,
		})
	}
	return resp, nil
}

// Aggregate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Aggregate(ctx context.Context, q attendance.Query) (attendance.AggregateResponse, error) {
	if err := q.Validate(); err != nil {
		return attendance.AggregateResponse{}, err
	}

	records, err := s.filtered(q)
	if err != nil {
		return attendance.AggregateResponse{}, err
	}

	return reconcile.Aggregate(records), nil
}

// exportHeaders preserve the column order dashboards already import
// into spreadsheets.
var exportHeaders = []string{
	"Date", "empID", "first In", "Last out",
	"In duration", "out duration", "Attendance", "total office duration",
}

// ExportCSV implements attendance.AttendanceService. The export ignores
// the unfiltered cap: a CSV is for offline processing, not rendering.
func (s *AttendanceServiceImpl) ExportCSV(ctx context.Context, q attendance.Query) (string, []byte, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}
	if q.Limit == 0 && !q.IsFiltered() {
		q.Limit = -1 // validated queries never carry -1; sentinel for "no cap"
	}

	records, err := s.filtered(q)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return "", nil, fmt.Errorf("writing export header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Date,
			rec.EmployeeID,
			orPlaceholder(rec.FirstIn, attendance.NoClockTime),
			orPlaceholder(rec.LastOut, attendance.NoClockTime),
			rec.InDuration,
			rec.OutDuration,
			string(rec.Status),
			orPlaceholder(rec.TotalDuration, attendance.NoClockTime),
		}
		if err := w.Write(row); err != nil {
			return "", nil, fmt.Errorf("writing export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("flushing export: %w", err)
	}

	filename := fmt.Sprintf("Attendance_Export_%s.csv", s.now().Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

// Roster implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Roster(ctx context.Context) (employee.ListResponse, error) {
	snap, err := s.current()
	if err != nil {
		return employee.ListResponse{}, err
	}

	resp := employee.ListResponse{
		TotalCount: len(snap.roster),
		Employees:  make([]employee.EmployeeResponse, 0, len(snap.roster)),
	}
	for _, emp := range snap.roster {
		resp.Employees = append(resp.Employees, employee.EmployeeResponse{
			EmployeeID: emp.EmployeeID,
			Name:       emp.Name,
		})
	}
	return resp, nil
}

// Holidays implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Holidays(ctx context.Context, upcomingOnly bool) (holiday.ListResponse, error) {
	snap, err := s.current()
	if err != nil {
		return holiday.ListResponse{}, err
	}

	today := s.today()
	resp := holiday.ListResponse{Holidays: make([]holiday.HolidayResponse, 0, len(snap.holidays))}
	for _, h := range snap.holidays {
		date := reconcile.NormalizeDate(h.Date)
		if upcomingOnly && date < today {
			continue
		}
		resp.Holidays = append(resp.Holidays, holiday.HolidayResponse{Date: date, Name: h.Name})
	}
	resp.TotalCount = len(resp.Holidays)
	return resp, nil
}

// Status implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Status(ctx context.Context) (attendance.SnapshotStatusResponse, error) {
	snap, err := s.current()
	if err != nil {
		return attendance.SnapshotStatusResponse{}, err
	}

	return attendance.SnapshotStatusResponse{
		RefreshID:     snap.refreshID,
		RefreshedAt:   snap.refreshedAt.Format(time.RFC3339),
		Stale:         snap.stale,
		RecordCount:   len(snap.records),
		EmployeeCount: len(snap.roster),
		HolidayCount:  len(snap.holidays),
	}, nil
}

func toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		Date:          rec.Date,
		Status:        string(rec.Status),
		FirstIn:       orPlaceholder(rec.FirstIn, attendance.NoClockTime),
		LastOut:       orPlaceholder(rec.LastOut, attendance.NoClockTime),
		InDuration:    orPlaceholder(rec.InDuration, attendance.NoDuration),
		OutDuration:   orPlaceholder(rec.OutDuration, attendance.NoDuration),
		TotalDuration: orPlaceholder(rec.TotalDuration, attendance.NoDuration),
		Synthesized:   rec.Synthesized,
	}
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
