package shift

import "errors"

var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrShiftNameExists   = errors.New("shift with this name already exists")
	ErrDuplicateWeekday  = errors.New("more than one rule for the same weekday")
	ErrDuplicateDate     = errors.New("more than one exception for the same date")
	ErrInvalidTimeWindow = errors.New("invalid time window, use HH:MM with end after start")
)
