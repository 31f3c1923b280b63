package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn = errors.New("a record already exists for this employee and date")

	// Clock-out errors
	ErrNotClockedIn      = errors.New("cannot clock out without a prior clock-in")
	ErrAlreadyClockedOut = errors.New("already clocked out for this date")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
