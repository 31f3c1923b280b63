package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ats-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/ats-hr/attendance-backend-go/internal/pkg/database"
	"github.com/ats-hr/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository

	// now supplies the service's notion of the current date; replaced in tests.
	now func() time.Time
}

func NewAttendanceService(db *database.DB, attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		now:                  time.Now,
	}
}

// timePtrToString safely converts a *time.Time to a wall-clock string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("15:04:05")
	return &format
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	var clockIn *time.Time
	if !validator.IsEmpty(req.ClockIn) {
		timeOfDay, _ := validator.ParseTimeOfDay(req.ClockIn)
		at := validator.AtDate(date, timeOfDay)
		clockIn = &at
	}

	// Pre-check so duplicates get a clean conflict before hitting the unique
	// constraint. Two concurrent clock-ins can still race past this; the
	// constraint is the authoritative guard and Create reports that violation
	// as the same conflict.
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	data := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		ClockIn:    clockIn,
		Status:     ClassifyClockIn(clockIn),
	}

	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
//
// Clock-outs earlier than the recorded clock-in are rejected; a shift
// crossing midnight cannot be represented by a single-day record.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	timeOfDay, _ := validator.ParseTimeOfDay(req.ClockOut)
	clockOut := validator.AtDate(date, timeOfDay)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
	}

	if existing.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if existing.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	if clockOut.Before(*existing.ClockIn) {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "clock_out",
			Message: "clock_out must not be earlier than clock_in",
		}}
	}

	duration := WorkDuration(existing.ClockIn, &clockOut)
	existing.ClockOut = &clockOut
	existing.WorkDuration = &duration

	updated, err := a.AttendanceRepository.Update(ctx, *existing)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// GetToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if !validator.IsValidEmployeeID(employeeID) {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id must match ATS0 followed by three digits (ATS0001-ATS0999)",
		}}
	}

	now := a.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrRecordNotFound
	}

	return mapAttendanceToResponse(*record), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter.EmployeeID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapAttendanceToResponse(record))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  len(responses),
		Attendances: responses,
	}, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date.Format("2006-01-02"),
		ClockIn:      timePtrToString(att.ClockIn),
		ClockOut:     timePtrToString(att.ClockOut),
		WorkDuration: att.WorkDuration,
		Status:       att.Status,
		CreatedAt:    att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
