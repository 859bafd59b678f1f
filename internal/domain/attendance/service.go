package attendance

import "context"

type AttendanceService interface {
	// CheckIn opens a session on today's record after verifying the caller is
	// inside their assigned location's radius.
	CheckIn(ctx context.Context, userID string, req CheckRequest) (AttendanceResponse, error)

	// CheckOut closes the open session on today's record.
	CheckOut(ctx context.Context, userID string, req CheckRequest) (AttendanceResponse, error)

	ListMine(ctx context.Context, userID string, req ListMyAttendanceRequest) ([]AttendanceResponse, error)
}
