package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/location"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	location.LocationRepository
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	userRepository user.UserRepository,
	locationRepository location.LocationRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		LocationRepository:   locationRepository,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.verifyWithinRadius(ctx, userID, req); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if record == nil {
		created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
			UserID:   userID,
			Date:     today,
			Sessions: attendance.Sessions{{CheckIn: now}},
		})
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
		return attendance.ToResponse(created), nil
	}

	if record.Sessions.OpenSession() != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	record.Sessions = append(record.Sessions, attendance.Session{CheckIn: now})
	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.ToResponse(*record), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.verifyWithinRadius(ctx, userID, req); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	open := record.Sessions.OpenSession()
	if open == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	open.CheckOut = &now
	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.ToResponse(*record), nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, userID string, req attendance.ListMyAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.AttendanceRepository.ListByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}

// verifyWithinRadius checks the caller's coordinates against their assigned
// location's geofence.
func (s *AttendanceServiceImpl) verifyWithinRadius(ctx context.Context, userID string, req attendance.CheckRequest) error {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if u.LocationID == nil {
		return attendance.ErrNoLocationAssigned
	}

	ownerID := u.ID
	if u.CustomerID != nil {
		ownerID = *u.CustomerID
	}

	loc, err := s.LocationRepository.GetByID(ctx, *u.LocationID, ownerID)
	if err != nil {
		return err
	}

	distance := utils.CalculateHaversineDistance(req.Latitude, req.Longitude, loc.Latitude, loc.Longitude)
	if distance > float64(loc.RadiusMeters) {
		return attendance.ErrOutsideAllowedRadius
	}

	return nil
}
