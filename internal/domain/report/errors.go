package report

import "errors"

var (
	ErrNoShiftAssigned = errors.New("user has no shift assigned")
	ErrNoUsersFound    = errors.New("no users match the report criteria")
)
