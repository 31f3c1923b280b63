package attendance

import (
	"fmt"
	"time"
)

// zeroDuration is the defined result when either clock value is missing.
const zeroDuration = "0h 0m"

// WorkDuration formats the elapsed time between clock-in and clock-out as
// "<H>h <M>m", truncated to whole minutes. The service rejects clock-outs
// earlier than the clock-in, so a negative gap never reaches storage; it
// clamps to the zero sentinel here regardless.
func WorkDuration(clockIn, clockOut *time.Time) string {
	if clockIn == nil || clockOut == nil {
		return zeroDuration
	}

	elapsed := clockOut.Sub(*clockIn)
	if elapsed < 0 {
		elapsed = 0
	}

	totalMinutes := int(elapsed.Minutes())
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
