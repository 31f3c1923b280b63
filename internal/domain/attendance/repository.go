package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record. A (employee_id, date) uniqueness
	// violation is returned as ErrAlreadyClockedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a specific date.
	// Returns (nil, nil) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update persists the mutable fields (clock_out, work_duration) of an
	// existing record. Returns ErrRecordNotFound when no row matches the key.
	Update(ctx context.Context, attendance Attendance) (Attendance, error)

	// List retrieves records, optionally filtered by employee, ordered by
	// date descending then clock-in descending.
	List(ctx context.Context, employeeID *string) ([]Attendance, error)
}
