package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Employee badge number: literal "ATS0" followed by exactly three digits.
// The suffix 000 is reserved and never issued.
var employeeIDRegex = regexp.MustCompile(`^ATS0\d{3}$`)

// IsValidEmployeeID reports whether id is a valid badge number (ATS0001-ATS0999).
func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id) && id != "ATS0000"
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// ParseTimeOfDay parses a wall-clock time in "HH:MM:SS" or "HH:MM" form.
// The returned value carries only the time-of-day components.
func ParseTimeOfDay(timeStr string) (time.Time, bool) {
	t, err := time.Parse("15:04:05", timeStr)
	if err != nil {
		t, err = time.Parse("15:04", timeStr)
	}
	return t, err == nil
}

// AtDate combines a calendar date with a time-of-day into a single instant.
func AtDate(date, timeOfDay time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), timeOfDay.Second(), 0,
		date.Location(),
	)
}
