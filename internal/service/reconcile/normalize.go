package reconcile

import (
	"strings"
	"time"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/pkg/validator"
)

// NormalizeDate truncates a raw date to its date-only prefix (everything
// before the first 'T') and re-formats parseable dates into zero-padded
// YYYY-MM-DD, so the lexicographic range comparisons downstream stay
// chronologically correct. Unparseable input passes through opaque and
// simply fails later range checks.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	for _, layout := range []string{"2006-01-02", "2006-1-2", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// NormalizeRecord canonicalizes a raw feed record into reconciled form.
func NormalizeRecord(raw attendance.RawRecord) attendance.Record {
	return attendance.Record{
		ID:            raw.ID,
		EmployeeID:    raw.EmployeeID,
		EmployeeName:  raw.EmployeeName,
		Date:          NormalizeDate(raw.Date),
		Status:        attendance.Status(raw.Attendance),
		FirstIn:       raw.FirstIn,
		LastOut:       raw.LastOut,
		InDuration:    raw.InDuration,
		OutDuration:   raw.OutDuration,
		TotalDuration: raw.TotalDuration,
	}
}

// NormalizeEmployeeID canonicalizes a user-supplied identifier in the
// site scheme: a bare number or an rbis-prefixed string, in any case and
// with or without leading zeros, becomes "rbis" + 4-digit suffix.
// Anything else is returned lowercased as-is.
func NormalizeEmployeeID(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	if strings.HasPrefix(t, "rbis") {
		num := strings.TrimLeft(strings.TrimPrefix(t, "rbis"), "0")
		if num != "" {
			return "rbis" + padNumeric(num)
		}
		return t
	}
	if validator.IsNumeric(t) {
		return "rbis" + padNumeric(strings.TrimLeft(t, "0"))
	}
	return t
}

func padNumeric(num string) string {
	for len(num) < 4 {
		num = "0" + num
	}
	return num
}
