package postgresql

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ats-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/ats-hr/attendance-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// repoTestInit connects to the database named by TEST_DATABASE_URL and skips
// the test when it is unset. The schema from migrations/ must be applied.
func repoTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration test")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

func truncateAttendances(t *testing.T, ctx context.Context) {
	_, err := testDB.Exec(ctx, "TRUNCATE TABLE attendances")
	require.NoError(t, err)
}

func testClockIn(date string, hour, minute int) (time.Time, *time.Time) {
	day, _ := time.Parse("2006-01-02", date)
	in := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	return day, &in
}

func TestAttendanceRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t)
	truncateAttendances(t, ctx)

	repo := NewAttendanceRepository(testDB)
	date, clockIn := testClockIn("2024-03-01", 9, 45)

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "ATS0123",
		Date:       date,
		ClockIn:    clockIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := repo.GetByEmployeeAndDate(ctx, "ATS0123", date)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, attendance.StatusPresent, fetched.Status)
	assert.Nil(t, fetched.ClockOut)
	assert.Nil(t, fetched.WorkDuration)

	missing, err := repo.GetByEmployeeAndDate(ctx, "ATS0999", date)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAttendanceRepository_UniqueViolation(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t)
	truncateAttendances(t, ctx)

	repo := NewAttendanceRepository(testDB)
	date, clockIn := testClockIn("2024-03-01", 9, 0)

	_, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "ATS0123",
		Date:       date,
		ClockIn:    clockIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, lateClockIn := testClockIn("2024-03-01", 11, 0)
	_, err = repo.Create(ctx, attendance.Attendance{
		EmployeeID: "ATS0123",
		Date:       date,
		ClockIn:    lateClockIn,
		Status:     attendance.StatusLate,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceRepository_Update(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t)
	truncateAttendances(t, ctx)

	repo := NewAttendanceRepository(testDB)
	date, clockIn := testClockIn("2024-03-01", 9, 45)

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "ATS0123",
		Date:       date,
		ClockIn:    clockIn,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	clockOut := time.Date(2024, 3, 1, 17, 15, 0, 0, time.UTC)
	duration := "7h 30m"
	created.ClockOut = &clockOut
	created.WorkDuration = &duration

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	require.NotNil(t, updated.WorkDuration)
	assert.Equal(t, "7h 30m", *updated.WorkDuration)
	assert.Equal(t, attendance.StatusPresent, updated.Status)

	_, err = repo.Update(ctx, attendance.Attendance{
		EmployeeID: "ATS0999",
		Date:       date,
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestAttendanceRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	repoTestInit(t)
	truncateAttendances(t, ctx)

	repo := NewAttendanceRepository(testDB)

	seed := []struct {
		employeeID string
		date       string
		hour       int
		minute     int
		status     string
	}{
		{"ATS0123", "2024-03-01", 9, 45, attendance.StatusPresent},
		{"ATS0456", "2024-03-01", 10, 30, attendance.StatusLate},
		{"ATS0123", "2024-03-02", 8, 30, attendance.StatusPresent},
	}
	for i, s := range seed {
		date, clockIn := testClockIn(s.date, s.hour, s.minute)
		_, err := repo.Create(ctx, attendance.Attendance{
			EmployeeID: s.employeeID,
			Date:       date,
			ClockIn:    clockIn,
			Status:     s.status,
		})
		require.NoError(t, err, fmt.Sprintf("seed %d", i))
	}

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-03-02", all[0].Date.Format("2006-01-02"))
	assert.Equal(t, "ATS0456", all[1].EmployeeID)
	assert.Equal(t, "ATS0123", all[2].EmployeeID)

	employeeID := "ATS0456"
	filtered, err := repo.List(ctx, &employeeID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, attendance.StatusLate, filtered[0].Status)
}
