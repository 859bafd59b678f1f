package request

import "errors"

var (
	ErrRequestNotFound        = errors.New("request not found")
	ErrRequestAlreadyReviewed = errors.New("request has already been accepted or rejected")
	ErrInvalidRequestType     = errors.New("request type must be 'leave' or 'overtime'")
	ErrInvalidStatus          = errors.New("status must be 'accepted' or 'rejected'")
)
