package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn     = errors.New("an open session already exists, check out first")
	ErrNotCheckedIn         = errors.New("you have not checked in yet")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")
	ErrNoLocationAssigned   = errors.New("no work location assigned")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
