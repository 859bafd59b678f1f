package shift

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Shift is a recurring weekly work-window schedule plus dated exceptions,
// valid between StartDate and EndDate.
type Shift struct {
	ID         string
	CustomerID string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Days          []ShiftDay
	ExceptionDays []ExceptionDay
}

// ShiftDay is the recurring rule for one ISO weekday (1=Monday ... 7=Sunday).
// At most one per weekday.
type ShiftDay struct {
	ID       string
	ShiftID  string
	Day      int
	IsOffDay bool
	Times    TimeWindows
}

// ExceptionDay overrides the weekly rule for one calendar date. At most one
// per date; an exception always carries a concrete work window and is never
// an off-day.
type ExceptionDay struct {
	ID      string
	ShiftID string
	Date    time.Time
	Times   TimeWindows
}

// TimeWindow is a "HH:MM" start/end pair within one day.
type TimeWindow struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TimeWindows is stored as a JSONB column.
type TimeWindows []TimeWindow

// Value implements driver.Valuer for database storage
func (tw TimeWindows) Value() (driver.Value, error) {
	if tw == nil {
		return json.Marshal(TimeWindows{})
	}
	return json.Marshal(tw)
}

// Scan implements sql.Scanner for database retrieval
func (tw *TimeWindows) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TimeWindows: invalid type")
	}

	return json.Unmarshal(bytes, tw)
}
