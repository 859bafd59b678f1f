package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/timesheet"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	shiftRepo      shift.ShiftRepository
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	shiftRepo shift.ShiftRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		shiftRepo:      shiftRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_sessions", 1*time.Hour, j.AutoCloseStaleSessions)
}

// AutoCloseStaleSessions closes sessions left open on records dated before
// today. The closing time is the scheduled end of the user's work window on
// that date, or end of day when no window applies.
func (j *AttendanceJobs) AutoCloseStaleSessions(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close stale sessions job")

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	staleRecords, err := j.attendanceRepo.ListOpenSessionsBefore(ctx, todayStart)
	if err != nil {
		return fmt.Errorf("failed to list stale open sessions: %w", err)
	}

	if len(staleRecords) == 0 {
		slog.Info("Cron: No stale open sessions found")
		return nil
	}

	closedCount := 0
	for _, record := range staleRecords {
		open := record.Sessions.OpenSession()
		if open == nil {
			continue
		}

		closeAt := j.scheduledEndFor(ctx, record)
		if closeAt.Before(open.CheckIn) {
			closeAt = open.CheckIn
		}
		open.CheckOut = &closeAt

		if err := j.attendanceRepo.Update(ctx, record); err != nil {
			slog.Error("Cron: Failed to auto-close session",
				"attendance_id", record.ID,
				"user_id", record.UserID,
				"error", err)
			continue
		}

		closedCount++
	}

	slog.Info("Cron: Auto-closed stale sessions", "count", closedCount)
	return nil
}

// scheduledEndFor resolves the scheduled end of the user's work window on the
// record's date. Falls back to end of day when the user has no shift or the
// date carries no window.
func (j *AttendanceJobs) scheduledEndFor(ctx context.Context, record attendance.Attendance) time.Time {
	endOfDay := endOfDayFor(record.Date)

	u, err := j.userRepo.GetByID(ctx, record.UserID)
	if err != nil || u.ShiftID == nil || u.CustomerID == nil {
		return endOfDay
	}

	sh, err := j.shiftRepo.GetByID(ctx, *u.ShiftID, *u.CustomerID)
	if err != nil {
		if !errors.Is(err, shift.ErrShiftNotFound) {
			slog.Error("Cron: Failed to load shift", "shift_id", *u.ShiftID, "error", err)
		}
		return endOfDay
	}

	window, ok := windowFor(sh, record.Date)
	if !ok {
		return endOfDay
	}

	end, err := timesheet.ParseClock(window.EndTime)
	if err != nil {
		return endOfDay
	}

	return time.Date(record.Date.Year(), record.Date.Month(), record.Date.Day(),
		end.Minutes()/60, end.Minutes()%60, 0, 0, time.UTC)
}

// windowFor returns the first work window applying to a date: the dated
// exception wins over the weekly rule.
func windowFor(sh shift.Shift, date time.Time) (shift.TimeWindow, bool) {
	dateStr := date.Format(timesheet.DateFormat)
	for _, exc := range sh.ExceptionDays {
		if exc.Date.Format(timesheet.DateFormat) == dateStr && len(exc.Times) > 0 {
			return exc.Times[0], true
		}
	}

	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	for _, day := range sh.Days {
		if day.Day == weekday && !day.IsOffDay && len(day.Times) > 0 {
			return day.Times[0], true
		}
	}

	return shift.TimeWindow{}, false
}

func endOfDayFor(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 0, 0, time.UTC)
}
