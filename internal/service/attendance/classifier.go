package attendance

import (
	"time"

	"github.com/ats-hr/attendance-backend-go/internal/domain/attendance"
)

// Arrivals at or before 10:00:00 count as present, anything after as late.
const lateCutoffHour = 10

// ClassifyClockIn maps a clock-in time to an attendance status.
// A missing clock-in means the employee never showed up for the day.
func ClassifyClockIn(clockIn *time.Time) string {
	if clockIn == nil {
		return attendance.StatusAbsent
	}
	if clockIn.Hour() < lateCutoffHour {
		return attendance.StatusPresent
	}
	if clockIn.Hour() == lateCutoffHour && clockIn.Minute() == 0 && clockIn.Second() == 0 {
		return attendance.StatusPresent
	}
	return attendance.StatusLate
}
