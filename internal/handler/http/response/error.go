package response

import (
	"errors"
	"net/http"

	"github.com/rutvikveer9289-cyber/HRMS/internal/domain/attendance"
	"github.com/rutvikveer9289-cyber/HRMS/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrSnapshotNotReady):
		ServiceUnavailable(w, "Attendance data is still loading, try again shortly")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
