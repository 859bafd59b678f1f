package shift

import (
	"fmt"
	"time"

	"github.com/workpulse-hr/workpulse-backend-go/internal/pkg/validator"
)

type TimeWindowPayload struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type ShiftDayPayload struct {
	Day      int                 `json:"day"`
	IsOffDay bool                `json:"isOffDay"`
	Time     []TimeWindowPayload `json:"time"`
}

type ExceptionDayPayload struct {
	Date string              `json:"date"`
	Time []TimeWindowPayload `json:"time"`
}

type UpsertShiftRequest struct {
	ShiftName     string                `json:"shiftName"`
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	ShiftDays     []ShiftDayPayload     `json:"shiftDays"`
	ExceptionDays []ExceptionDayPayload `json:"exceptionDays"`
}

func validateWindows(field string, windows []TimeWindowPayload, errs validator.ValidationErrors) validator.ValidationErrors {
	for i, w := range windows {
		if !validator.IsValidClockTime(w.StartTime) || !validator.IsValidClockTime(w.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("%s.time[%d]", field, i),
				Message: "startTime and endTime must be HH:MM",
			})
		}
	}
	return errs
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftName) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftName",
			Message: "shiftName is required",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && startDate.After(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	seenDays := make(map[int]bool)
	for i, day := range r.ShiftDays {
		field := fmt.Sprintf("shiftDays[%d]", i)
		if day.Day < 1 || day.Day > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".day",
				Message: "day must be between 1 (Monday) and 7 (Sunday)",
			})
		} else if seenDays[day.Day] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".day",
				Message: "duplicate weekday rule",
			})
		} else {
			seenDays[day.Day] = true
		}
		errs = validateWindows(field, day.Time, errs)
	}

	seenDates := make(map[string]bool)
	for i, ex := range r.ExceptionDays {
		field := fmt.Sprintf("exceptionDays[%d]", i)
		if _, ok := validator.IsValidDate(ex.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "date must be in YYYY-MM-DD format",
			})
		} else if seenDates[ex.Date] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "duplicate exception date",
			})
		} else {
			seenDates[ex.Date] = true
		}
		if len(ex.Time) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".time",
				Message: "an exception day requires at least one time window",
			})
		}
		errs = validateWindows(field, ex.Time, errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity converts a validated request into a Shift entity. Dates parse in
// UTC; Validate must have been called first.
func (r *UpsertShiftRequest) ToEntity(customerID string) Shift {
	startDate, _ := time.Parse("2006-01-02", r.StartDate)
	endDate, _ := time.Parse("2006-01-02", r.EndDate)

	s := Shift{
		CustomerID: customerID,
		Name:       r.ShiftName,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	for _, day := range r.ShiftDays {
		windows := make(TimeWindows, 0, len(day.Time))
		for _, w := range day.Time {
			windows = append(windows, TimeWindow{StartTime: w.StartTime, EndTime: w.EndTime})
		}
		s.Days = append(s.Days, ShiftDay{Day: day.Day, IsOffDay: day.IsOffDay, Times: windows})
	}

	for _, ex := range r.ExceptionDays {
		exDate, _ := time.Parse("2006-01-02", ex.Date)
		windows := make(TimeWindows, 0, len(ex.Time))
		for _, w := range ex.Time {
			windows = append(windows, TimeWindow{StartTime: w.StartTime, EndTime: w.EndTime})
		}
		s.ExceptionDays = append(s.ExceptionDays, ExceptionDay{Date: exDate, Times: windows})
	}

	return s
}

type ShiftResponse struct {
	ID            string                `json:"id"`
	ShiftName     string                `json:"shiftName"`
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	ShiftDays     []ShiftDayPayload     `json:"shiftDays"`
	ExceptionDays []ExceptionDayPayload `json:"exceptionDays"`
}

func ToResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:            s.ID,
		ShiftName:     s.Name,
		StartDate:     s.StartDate.Format("2006-01-02"),
		EndDate:       s.EndDate.Format("2006-01-02"),
		ShiftDays:     []ShiftDayPayload{},
		ExceptionDays: []ExceptionDayPayload{},
	}

	for _, day := range s.Days {
		windows := make([]TimeWindowPayload, 0, len(day.Times))
		for _, w := range day.Times {
			windows = append(windows, TimeWindowPayload{StartTime: w.StartTime, EndTime: w.EndTime})
		}
		resp.ShiftDays = append(resp.ShiftDays, ShiftDayPayload{Day: day.Day, IsOffDay: day.IsOffDay, Time: windows})
	}

	for _, ex := range s.ExceptionDays {
		windows := make([]TimeWindowPayload, 0, len(ex.Times))
		for _, w := range ex.Times {
			windows = append(windows, TimeWindowPayload{StartTime: w.StartTime, EndTime: w.EndTime})
		}
		resp.ExceptionDays = append(resp.ExceptionDays, ExceptionDayPayload{Date: ex.Date.Format("2006-01-02"), Time: windows})
	}

	return resp
}
