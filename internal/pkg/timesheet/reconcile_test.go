package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkedOut(t time.Time) *time.Time { return &t }

func sessionDay(d time.Time, in, out time.Time) DayAttendance {
	return DayAttendance{Date: d, Sessions: []Session{{CheckIn: in, CheckOut: checkedOut(out)}}}
}

func reconcileOne(t *testing.T, def ShiftDefinition, day time.Time, attendance []DayAttendance, requests []Request) DailyRecord {
	t.Helper()
	calendar := BuildCalendar(def, day, day)
	records := Reconcile(calendar, attendance, MapRequests(requests))
	require.Len(t, records, 1)
	return records[0]
}

// 2024-07-03 is a Wednesday.
func TestReconcileDelay(t *testing.T) {
	day := date(2024, 7, 3)
	attendance := []DayAttendance{sessionDay(day, ts(2024, 7, 3, 9, 10), ts(2024, 7, 3, 17, 0))}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, nil)

	assert.Equal(t, StatusDelay, rec.Status)
	assert.Equal(t, "09:00", rec.ExpectedStart)
	assert.Equal(t, "17:00", rec.ExpectedEnd)
	assert.Equal(t, "09:10", rec.ActualCheckIn)
	assert.Equal(t, "17:00", rec.ActualCheckOut)
	assert.Equal(t, "08:00", rec.PlannedMinutes)
	assert.Equal(t, "07:50", rec.ActualMinutes)
	assert.Equal(t, "00:10", rec.DelayMinutes)
	assert.Equal(t, "00:10", rec.DeficitMinutes)
	assert.Equal(t, "00:00", rec.OvertimeMinutes)
}

func TestReconcileFullPresent(t *testing.T) {
	day := date(2024, 7, 3)
	attendance := []DayAttendance{sessionDay(day, ts(2024, 7, 3, 8, 55), ts(2024, 7, 3, 17, 5))}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, nil)

	assert.Equal(t, StatusFullPresent, rec.Status)
	// Early arrival never produces negative delay.
	assert.Equal(t, "00:00", rec.DelayMinutes)
	assert.Equal(t, "00:00", rec.DeficitMinutes)
	assert.Equal(t, "00:10", rec.OvertimeMinutes)
}

func TestReconcileDeficit(t *testing.T) {
	day := date(2024, 7, 3)
	attendance := []DayAttendance{sessionDay(day, ts(2024, 7, 3, 9, 0), ts(2024, 7, 3, 15, 0))}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, nil)

	assert.Equal(t, StatusDeficit, rec.Status)
	assert.Equal(t, "00:00", rec.DelayMinutes)
	assert.Equal(t, "02:00", rec.DeficitMinutes)
}

func TestReconcileLeaveCoversDeficit(t *testing.T) {
	day := date(2024, 7, 3)
	attendance := []DayAttendance{sessionDay(day, ts(2024, 7, 3, 9, 0), ts(2024, 7, 3, 15, 0))}
	requests := []Request{{
		Kind: RequestLeave, Status: RequestAccepted,
		Start: ts(2024, 7, 3, 15, 0), End: ts(2024, 7, 3, 17, 0),
	}}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, requests)

	assert.Equal(t, StatusFullPresent, rec.Status)
	assert.Equal(t, "02:00", rec.LeaveMinutes)
	assert.Equal(t, "00:00", rec.DeficitMinutes)
}

// An approved overtime request absorbs extra worked time: it is requested
// overtime, not unplanned overtime.
func TestReconcileOvertimeRequestAbsorbsOvertime(t *testing.T) {
	day := date(2024, 7, 3)
	attendance := []DayAttendance{sessionDay(day, ts(2024, 7, 3, 9, 0), ts(2024, 7, 3, 19, 0))}
	requests := []Request{{
		Kind: RequestOvertime, Status: RequestAccepted,
		Start: ts(2024, 7, 3, 17, 0), End: ts(2024, 7, 3, 19, 0),
	}}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, requests)

	assert.Equal(t, StatusFullPresent, rec.Status)
	assert.Equal(t, "02:00", rec.OvertimeRequestMinutes)
	assert.Equal(t, "00:00", rec.OvertimeMinutes)
}

func TestReconcileUnrequestedOvertime(t *testing.T) {
	day := date(2024, 7, 3)
	attendance := []DayAttendance{sessionDay(day, ts(2024, 7, 3, 9, 0), ts(2024, 7, 3, 19, 0))}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, nil)

	assert.Equal(t, StatusFullPresent, rec.Status)
	assert.Equal(t, "02:00", rec.OvertimeMinutes)
}

// Work on an off-day counts entirely as overtime and never as deficit.
func TestReconcileOffDayWork(t *testing.T) {
	day := date(2024, 7, 6) // Saturday, off-day with planned window
	attendance := []DayAttendance{sessionDay(day, ts(2024, 7, 6, 10, 0), ts(2024, 7, 6, 13, 0))}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, nil)

	assert.True(t, rec.IsOffDay)
	assert.Equal(t, "03:00", rec.OvertimeMinutes)
	assert.Equal(t, "00:00", rec.DeficitMinutes)
}

// Leave covering the entire planned window wins even when a session was
// recorded, regardless of punctuality.
func TestReconcileLeavePrecedenceOverSession(t *testing.T) {
	day := date(2024, 7, 3)
	attendance := []DayAttendance{sessionDay(day, ts(2024, 7, 3, 11, 30), ts(2024, 7, 3, 12, 0))}
	requests := []Request{{
		Kind: RequestLeave, Status: RequestAccepted,
		Start: ts(2024, 7, 3, 9, 0), End: ts(2024, 7, 3, 17, 0),
	}}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, requests)

	assert.Equal(t, StatusLeave, rec.Status)
	assert.Equal(t, "09:00", rec.ExpectedStart)
	assert.Equal(t, "17:00", rec.ExpectedEnd)
	assert.Empty(t, rec.ActualMinutes)
}

func TestReconcileIncompleteSession(t *testing.T) {
	day := date(2024, 7, 3)
	attendance := []DayAttendance{{
		Date:     day,
		Sessions: []Session{{CheckIn: ts(2024, 7, 3, 9, 0)}},
	}}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, nil)

	assert.Equal(t, StatusIncomplete, rec.Status)
	assert.Equal(t, "09:00", rec.ExpectedStart)
	assert.Empty(t, rec.DelayMinutes)
}

func TestReconcileAbsent(t *testing.T) {
	rec := reconcileOne(t, weekdaySchedule(), date(2024, 7, 3), nil, nil)

	assert.Equal(t, StatusAbsent, rec.Status)
	assert.Equal(t, "09:00", rec.ExpectedStart)
	assert.Equal(t, "17:00", rec.ExpectedEnd)
}

func TestReconcileFullDayLeaveWithoutAttendance(t *testing.T) {
	day := date(2024, 7, 3)
	requests := []Request{{
		Kind: RequestLeave, Status: RequestAccepted,
		Start: ts(2024, 7, 3, 9, 0), End: ts(2024, 7, 3, 17, 0),
	}}

	rec := reconcileOne(t, weekdaySchedule(), day, nil, requests)

	assert.Equal(t, StatusLeave, rec.Status)
}

// A leave interval spanning the whole day marks the day leave even when it
// does not line up with the planned window minute-for-minute.
func TestReconcileFullDayLeaveInterval(t *testing.T) {
	day := date(2024, 7, 3)
	requests := []Request{{
		Kind: RequestLeave, Status: RequestAccepted,
		Start: ts(2024, 7, 2, 12, 0), End: ts(2024, 7, 4, 12, 0),
	}}

	rec := reconcileOne(t, weekdaySchedule(), day, nil, requests)

	assert.Equal(t, StatusLeave, rec.Status)
}

func TestReconcileShiftOffDay(t *testing.T) {
	rec := reconcileOne(t, weekdaySchedule(), date(2024, 7, 6), nil, nil)

	assert.Equal(t, StatusShiftOffDay, rec.Status)
	assert.True(t, rec.IsOffDay)
}

// A Saturday with neither a weekly rule nor an exception has no schedule,
// which is distinct from an off-day.
func TestReconcileNoSchedule(t *testing.T) {
	def := ShiftDefinition{}
	for day := 1; day <= 5; day++ {
		def.WeeklyRules = append(def.WeeklyRules, WeeklyRule{
			Weekday: day,
			Windows: []TimeWindow{{Start: MustClock("09:00"), End: MustClock("17:00")}},
		})
	}

	rec := reconcileOne(t, def, date(2024, 7, 6), nil, nil)

	assert.Equal(t, StatusNoSchedule, rec.Status)
	assert.False(t, rec.IsOffDay)
	assert.Empty(t, rec.ExpectedStart)
}

func TestReconcileOnlyFirstSessionRead(t *testing.T) {
	day := date(2024, 7, 3)
	attendance := []DayAttendance{{
		Date: day,
		Sessions: []Session{
			{CheckIn: ts(2024, 7, 3, 9, 0), CheckOut: checkedOut(ts(2024, 7, 3, 12, 0))},
			{CheckIn: ts(2024, 7, 3, 13, 0), CheckOut: checkedOut(ts(2024, 7, 3, 17, 0))},
		},
	}}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, nil)

	// The afternoon session does not extend the actual duration.
	assert.Equal(t, "03:00", rec.ActualMinutes)
	assert.Equal(t, "12:00", rec.ActualCheckOut)
}

func TestReconcileNeverNegativeMinutes(t *testing.T) {
	day := date(2024, 7, 3)
	// Short session plus leave exceeding the planned window pushes every
	// max(0, ...) clamp.
	attendance := []DayAttendance{sessionDay(day, ts(2024, 7, 3, 8, 0), ts(2024, 7, 3, 8, 30))}
	requests := []Request{{
		Kind: RequestLeave, Status: RequestAccepted,
		Start: ts(2024, 7, 3, 8, 0), End: ts(2024, 7, 3, 16, 0),
	}}

	rec := reconcileOne(t, weekdaySchedule(), day, attendance, requests)

	for name, field := range map[string]string{
		"delay":    rec.DelayMinutes,
		"deficit":  rec.DeficitMinutes,
		"overtime": rec.OvertimeMinutes,
	} {
		if field != "" {
			assert.GreaterOrEqual(t, ParseDuration(field), 0, name)
		}
	}
}

func TestReconcileRecordPerCalendarDay(t *testing.T) {
	calendar := BuildCalendar(weekdaySchedule(), date(2024, 7, 1), date(2024, 7, 7))

	records := Reconcile(calendar, nil, nil)

	require.Len(t, records, 7)
	for i, rec := range records {
		assert.Equal(t, calendar[i].Date.Format(DateFormat), rec.Date)
	}
}
