package reconcile

import (
	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
)

// MergeSources merges the two feeds into one record per (employee, date)
// key. SourceA is applied before SourceB, so the first record seen for a
// key becomes the base entry. Later records for the same key only fill
// duration fields that are still empty and can upgrade the status to a
// higher-priority one; a non-empty value is never overwritten.
func MergeSources(sourceA, sourceB []attendance.RawRecord) map[string]*attendance.Record {
	merged := make(map[string]*attendance.Record, len(sourceA)+len(sourceB))

	for _, src := range [2][]attendance.RawRecord{sourceA, sourceB} {
		for _, raw := range src {
			rec := NormalizeRecord(raw)
			existing, ok := merged[rec.Key()]
			if !ok {
				base := rec
				merged[rec.Key()] = &base
				continue
			}

			if existing.InDuration == "" {
				existing.InDuration = rec.InDuration
			}
			if existing.OutDuration == "" {
				existing.OutDuration = rec.OutDuration
			}
			if existing.TotalDuration == "" {
				existing.TotalDuration = rec.TotalDuration
			}

			if rec.Status.Priority() > existing.Status.Priority() {
				existing.Status = rec.Status
			}
		}
	}

	return merged
}
