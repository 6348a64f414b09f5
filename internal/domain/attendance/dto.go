package attendance

import (
	"strings"

	"github.com/rutvikveer9289-cyber/HRMS/internal/pkg/validator"
)

// ========================================
// QUERY DTOs
// ========================================

// Query is the filter tuple applied over the reconciled record set.
// Zero values mean "not set".
type Query struct {
	FromDate   string `json:"from_date,omitempty"`   // YYYY-MM-DD
	ToDate     string `json:"to_date,omitempty"`     // YYYY-MM-DD, defaults to FromDate
	EmployeeID string `json:"employee_id,omitempty"` // exact, site id scheme normalized
	Search     string `json:"search,omitempty"`      // id exact or name substring
	Status     string `json:"status,omitempty"`      // Present, Absent, On Leave
	Limit      int    `json:"limit,omitempty"`       // 0 = default behavior
}

// IsFiltered reports whether any explicit filter is active. Unfiltered
// queries get the "latest date" statistics view and the record cap.
func (q Query) IsFiltered() bool {
	return q.FromDate != "" || q.EmployeeID != "" || strings.TrimSpace(q.Search) != ""
}

func (q *Query) Validate() error {
	var errs validator.ValidationErrors

	if q.FromDate != "" {
		if _, valid := validator.IsValidDate(q.FromDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date must be in YYYY-MM-DD format",
			})
		}
	}

	if q.ToDate != "" {
		if _, valid := validator.IsValidDate(q.ToDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must be in YYYY-MM-DD format",
			})
		}
		if q.FromDate == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date requires from_date",
			})
		}
	}

	if q.Status != "" {
		validStatuses := []string{string(StatusPresent), string(StatusAbsent), string(StatusOnLeave)}
		if !validator.IsInSlice(q.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Present, Absent, On Leave",
			})
		}
	}

	if q.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if q.Limit > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 1000",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSE DTOs
// ========================================

type RecordResponse struct {
	ID            int64  `json:"id,omitempty"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	Date          string `json:"date"`
	Status        string `json:"attendance_status"`
	FirstIn       string `json:"first_in"`
	LastOut       string `json:"last_out"`
	InDuration    string `json:"in_duration"`
	OutDuration   string `json:"out_duration"`
	TotalDuration string `json:"total_duration"`
	Synthesized   bool   `json:"synthesized,omitempty"`
}

type ListResponse struct {
	TotalCount int              `json:"total_count"`
	Capped     bool             `json:"capped"`
	Records    []RecordResponse `json:"records"`
}

// ActiveEmployee identifies the single employee a filter resolved to.
type ActiveEmployee struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
}

// StatsResponse is the badge/stat-card summary. Label is "Latest" for
// the unfiltered view, "No Data" when the slice is empty, the from-date
// for a single-day view, and "Filtered" otherwise.
type StatsResponse struct {
	Present        int             `json:"present"`
	Absent         int             `json:"absent"`
	OnLeave        int             `json:"on_leave"`
	AvgHours       float64         `json:"avg_hours"`
	Label          string          `json:"label"`
	ActiveEmployee *ActiveEmployee `json:"active_employee,omitempty"`
}

type DailyStatResponse struct {
	Date     string  `json:"date"`
	Present  int     `json:"present"`
	Absent   int     `json:"absent"`
	OnLeave  int     `json:"on_leave"`
	AvgHours float64 `json:"avg_hours"`
}

type DailySeriesResponse struct {
	Days []DailyStatResponse `json:"days"`
}

// AggregateResponse sums the filtered slice for pie/summary rendering.
type AggregateResponse struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	OnLeave int `json:"on_leave"`
	Total   int `json:"total"`
}

// SnapshotStatusResponse reports snapshot freshness for the status card.
type SnapshotStatusResponse struct {
	RefreshID     string `json:"refresh_id"`
	RefreshedAt   string `json:"refreshed_at"`
	Stale         bool   `json:"stale"`
	RecordCount   int    `json:"record_count"`
	EmployeeCount int    `json:"employee_count"`
	HolidayCount  int    `json:"holiday_count"`
}
