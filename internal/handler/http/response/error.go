package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ats-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/ats-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "A record already exists for this employee and date")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out for this date")
	case errors.Is(err, attendance.ErrNotClockedIn):
		InvalidState(w, "Cannot clock out without a prior clock-in")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Default: storage or other unclassified failure
	default:
		slog.Error("unexpected error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
