package attendance

import (
	"context"
)

// AttendanceService defines business logic for the attendance record lifecycle.
type AttendanceService interface {
	// ClockIn creates the day's record for an employee and derives its status
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes the day's record and derives its work duration
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetToday retrieves the record for the current date
	GetToday(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// List retrieves records, optionally filtered by employee
	List(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)
}
