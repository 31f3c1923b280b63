package attendance

import (
	"time"
)

// Attendance status values, assigned once when the record is created.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

// Attendance is one row per (employee, calendar date).
// ClockOut and WorkDuration stay nil until the employee clocks out;
// WorkDuration is set if and only if both clock values are set.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	ClockIn      *time.Time
	ClockOut     *time.Time
	WorkDuration *string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
