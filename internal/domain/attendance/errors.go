package attendance

import "errors"

// Attendance domain errors
var (
	// ErrSnapshotNotReady is returned before the first successful
	// upstream refresh has produced a reconciled snapshot.
	ErrSnapshotNotReady = errors.New("attendance snapshot is not ready yet")
)
