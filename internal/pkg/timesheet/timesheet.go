// Package timesheet reconciles raw check-in/check-out sessions against planned
// shift schedules and approved leave/overtime requests. Everything in this
// package is pure: given immutable inputs it produces plain records with no
// I/O and no shared state, so callers may run independent reconciliations
// concurrently.
package timesheet

import "time"

// DateFormat is the calendar-date key format used throughout the package.
const DateFormat = "2006-01-02"

// TimeWindow is a planned work window within a single day.
type TimeWindow struct {
	Start ClockTime
	End   ClockTime
}

// WeeklyRule is the recurring schedule for one ISO weekday (1=Monday ... 7=Sunday).
type WeeklyRule struct {
	Weekday  int
	IsOffDay bool
	Windows  []TimeWindow
}

// ExceptionDay overrides the weekly rule for one specific date. An exception
// always represents a scheduled work window, never an off-day.
type ExceptionDay struct {
	Date    time.Time
	Windows []TimeWindow
}

// ShiftDefinition is a weekly recurring schedule plus dated exceptions.
// At most one WeeklyRule per weekday and one ExceptionDay per date.
type ShiftDefinition struct {
	WeeklyRules   []WeeklyRule
	ExceptionDays []ExceptionDay
}

// CalendarDay is one expanded day of a shift definition.
type CalendarDay struct {
	Date        time.Time
	IsOffDay    bool
	IsException bool
	Windows     []TimeWindow
}

// Session is one check-in/check-out pair. A session with no check-out is open.
type Session struct {
	CheckIn  time.Time
	CheckOut *time.Time
}

// DayAttendance holds the recorded sessions of one user on one date.
type DayAttendance struct {
	Date     time.Time
	Sessions []Session
}

// RequestKind distinguishes leave from overtime requests.
type RequestKind string

const (
	RequestLeave    RequestKind = "leave"
	RequestOvertime RequestKind = "overtime"
)

// RequestStatus is the review state of a request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// Request is an employee-submitted leave or overtime request. Start and End
// are timestamps and may span multiple days.
type Request struct {
	Kind   RequestKind
	Status RequestStatus
	Start  time.Time
	End    time.Time
}

// RequestInterval is a request clipped to a single date.
type RequestInterval struct {
	Kind RequestKind
	From ClockTime
	To   ClockTime
}

// Status classifies one reconciled day.
type Status string

const (
	StatusFullPresent Status = "fullPresent"
	StatusDelay       Status = "delay"
	StatusDeficit     Status = "deficit"
	StatusAbsent      Status = "absent"
	StatusLeave       Status = "leave"
	StatusShiftOffDay Status = "shiftOffDay"
	StatusIncomplete  Status = "incompleteSession"
	StatusNoSchedule  Status = "noSchedule"
)

// DailyRecord is the reconciled result for one calendar day. Minute fields are
// duration strings ("HH:MM"); decode them with ParseDuration. Fields are empty
// when the day's status carries no corresponding value.
type DailyRecord struct {
	Date           string `json:"date"`
	Status         Status `json:"status"`
	ExpectedStart  string `json:"expectedStart,omitempty"`
	ExpectedEnd    string `json:"expectedEnd,omitempty"`
	ActualCheckIn  string `json:"actualCheckIn,omitempty"`
	ActualCheckOut string `json:"actualCheckOut,omitempty"`

	PlannedMinutes         string `json:"plannedMinutes,omitempty"`
	ActualMinutes          string `json:"actualMinutes,omitempty"`
	LeaveMinutes           string `json:"leaveMinutes,omitempty"`
	OvertimeRequestMinutes string `json:"overtimeRequestMinutes,omitempty"`
	DelayMinutes           string `json:"delayMinutes,omitempty"`
	DeficitMinutes         string `json:"deficitMinutes,omitempty"`
	OvertimeMinutes        string `json:"overtimeMinutes,omitempty"`

	IsOffDay bool `json:"isOffDay"`
}

// SummaryReport aggregates a sequence of daily records. Minute totals and
// averages are duration strings.
type SummaryReport struct {
	TotalDays   int `json:"totalDays"`
	WorkingDays int `json:"workingDays"`
	OffDays     int `json:"offDays"`
	PresentDays int `json:"presentDays"`
	AbsentDays  int `json:"absentDays"`
	LeaveDays   int `json:"leaveDays"`

	TotalPlannedTime string `json:"totalPlannedTime"`
	TotalActualTime  string `json:"totalActualTime"`
	TotalLeaveTime   string `json:"totalLeaveTime"`
	TotalOvertime    string `json:"totalOvertime"`
	TotalDelay       string `json:"totalDelay"`
	TotalDeficit     string `json:"totalDeficit"`

	AverageDailyOvertime string `json:"averageDailyOvertime"`
	AverageDailyDelay    string `json:"averageDailyDelay"`
	AverageDailyDeficit  string `json:"averageDailyDeficit"`

	StatusCount map[Status]int `json:"statusCount"`
}
