package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ats-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/ats-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error code for unique_violation.
const uniqueViolationCode = "23505"

type attendanceRepository struct {
	db database.Querier
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	newAttendance.ID = uuid.New().String()

	query := `
		INSERT INTO attendances (
			id, employee_id, date, clock_in, clock_out, work_duration, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := a.db.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.ClockIn,
		newAttendance.ClockOut,
		newAttendance.WorkDuration,
		newAttendance.Status,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	query := `
		SELECT id, employee_id, date, clock_in, clock_out, work_duration, status,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := a.db.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.WorkDuration, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	query := `
		UPDATE attendances
		SET clock_out = $1, work_duration = $2, updated_at = $3
		WHERE employee_id = $4 AND date = $5
		RETURNING id, employee_id, date, clock_in, clock_out, work_duration, status,
				  created_at, updated_at
	`

	var updated attendance.Attendance
	err := a.db.QueryRow(ctx, query,
		att.ClockOut,
		att.WorkDuration,
		time.Now(),
		att.EmployeeID,
		att.Date,
	).Scan(
		&updated.ID, &updated.EmployeeID, &updated.Date, &updated.ClockIn, &updated.ClockOut,
		&updated.WorkDuration, &updated.Status, &updated.CreatedAt, &updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return updated, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, employeeID *string) ([]attendance.Attendance, error) {
	baseQuery := `
		SELECT id, employee_id, date, clock_in, clock_out, work_duration, status,
			   created_at, updated_at
		FROM attendances
	`
	// date then clock-in descending keeps repeated calls byte-stable.
	orderBy := " ORDER BY date DESC, clock_in DESC NULLS LAST, id"

	var rows pgx.Rows
	var err error
	if employeeID != nil && *employeeID != "" {
		rows, err = a.db.Query(ctx, baseQuery+" WHERE employee_id = $1"+orderBy, *employeeID)
	} else {
		rows, err = a.db.Query(ctx, baseQuery+orderBy)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
			&att.WorkDuration, &att.Status, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendances: %w", err)
	}

	return attendances, nil
}
