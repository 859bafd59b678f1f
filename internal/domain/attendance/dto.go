package attendance

import (
	"time"

	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/validator"
)

// CheckRequest carries the coordinates of a check-in or check-out attempt.
type CheckRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListMyAttendanceRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *ListMyAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && startDate.After(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	CheckIn  string  `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
}

type AttendanceResponse struct {
	ID       string            `json:"id"`
	Date     string            `json:"date"`
	Sessions []SessionResponse `json:"sessions"`
}

func ToResponse(att Attendance) AttendanceResponse {
	sessions := make([]SessionResponse, 0, len(att.Sessions))
	for _, s := range att.Sessions {
		resp := SessionResponse{CheckIn: s.CheckIn.UTC().Format(time.RFC3339)}
		if s.CheckOut != nil {
			out := s.CheckOut.UTC().Format(time.RFC3339)
			resp.CheckOut = &out
		}
		sessions = append(sessions, resp)
	}
	return AttendanceResponse{
		ID:       att.ID,
		Date:     att.Date.Format("2006-01-02"),
		Sessions: sessions,
	}
}
