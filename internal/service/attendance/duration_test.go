package attendance

import (
	"testing"
	"time"
)

func TestWorkDuration(t *testing.T) {
	at := func(hour, minute, second int) *time.Time {
		v := time.Date(2024, 3, 1, hour, minute, second, 0, time.UTC)
		return &v
	}

	cases := []struct {
		name     string
		clockIn  *time.Time
		clockOut *time.Time
		want     string
	}{
		{"both missing", nil, nil, "0h 0m"},
		{"clock-in missing", nil, at(17, 0, 0), "0h 0m"},
		{"clock-out missing", at(9, 0, 0), nil, "0h 0m"},
		{"same instant", at(9, 0, 0), at(9, 0, 0), "0h 0m"},
		{"full day", at(9, 0, 0), at(17, 30, 0), "8h 30m"},
		{"morning half", at(9, 45, 0), at(17, 15, 0), "7h 30m"},
		{"under an hour", at(9, 0, 0), at(9, 59, 0), "0h 59m"},
		{"seconds truncated", at(9, 0, 0), at(9, 59, 59), "0h 59m"},
		{"exactly one hour", at(9, 0, 0), at(10, 0, 0), "1h 0m"},
		{"long shift", at(0, 0, 0), at(23, 59, 0), "23h 59m"},
		{"negative gap clamps", at(17, 0, 0), at(9, 0, 0), "0h 0m"},
	}
	for _, c := range cases {
		got := WorkDuration(c.clockIn, c.clockOut)
		if got != c.want {
			t.Errorf("%s: WorkDuration() = %q, want %q", c.name, got, c.want)
		}
	}
}
