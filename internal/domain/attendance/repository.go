package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the attendance record for one user on one
	// date, or nil when none exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error

	// ListByUserBetween retrieves a user's records within an inclusive date
	// range, in date order.
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]Attendance, error)

	// ListByUsersBetween retrieves records for a set of users within an
	// inclusive date range, in date order.
	ListByUsersBetween(ctx context.Context, userIDs []string, start, end time.Time) ([]Attendance, error)

	// ListOpenSessionsBefore retrieves records dated strictly before cutoff
	// that still have an open session.
	ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]Attendance, error)
}
