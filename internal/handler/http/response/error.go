package response

import (
	"errors"
	"net/http"

	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/location"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/report"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/request"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthExchangeFailed):
		Unauthorized(w, "OAuth code exchange failed")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCustomerAccessRequired):
		Forbidden(w, "Customer role required")

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift with this name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "An open session already exists")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open session to check out of")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Forbidden(w, "You are outside the allowed radius")
	case errors.Is(err, attendance.ErrNoLocationAssigned):
		BadRequest(w, "No work location assigned", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestAlreadyReviewed):
		Conflict(w, "Request has already been reviewed")

	// Report domain errors
	case errors.Is(err, report.ErrNoShiftAssigned):
		BadRequest(w, "User has no shift assigned", nil)
	case errors.Is(err, report.ErrNoUsersFound):
		NotFound(w, "No users match the report criteria")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
