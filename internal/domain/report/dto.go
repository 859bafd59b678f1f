package report

import (
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/timesheet"
	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/validator"
)

// ========================================
// USER ATTENDANCE REPORT
// ========================================

type UserReportRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *UserReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	errs = validateRange(r.StartDate, r.EndDate, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalendarDayResponse is the wire form of one expanded calendar day.
type CalendarDayResponse struct {
	Date           string               `json:"date"`
	IsOffDay       bool                 `json:"isOffDay"`
	IsExceptionDay bool                 `json:"isExceptionDay"`
	Time           []TimeWindowResponse `json:"time"`
}

type TimeWindowResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type UserReport struct {
	UserID      string                  `json:"user_id"`
	UserName    string                  `json:"user_name"`
	StartDate   string                  `json:"start_date"`
	EndDate     string                  `json:"end_date"`
	GeneratedAt string                  `json:"generated_at"`
	Calendar    []CalendarDayResponse   `json:"calendar"`
	Daily       []timesheet.DailyRecord `json:"daily"`
	Summary     timesheet.SummaryReport `json:"summary"`
}

// ========================================
// TEAM ATTENDANCE REPORT
// ========================================

type TeamReportRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	LocationID *string `json:"location_id"`
}

func (r *TeamReportRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateRange(r.StartDate, r.EndDate, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TeamReport struct {
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	GeneratedAt string          `json:"generated_at"`
	Days        []TeamReportDay `json:"days"`
}

type TeamReportDay struct {
	Date  string            `json:"date"`
	Users []TeamReportEntry `json:"users"`
}

type TeamReportEntry struct {
	UserID   string                `json:"user_id"`
	UserName string                `json:"user_name"`
	Record   timesheet.DailyRecord `json:"report"`
}

func validateRange(startDate, endDate string, errs validator.ValidationErrors) validator.ValidationErrors {
	start, startOK := validator.IsValidDate(startDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(endDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	return errs
}
