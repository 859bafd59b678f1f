package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 0, summary.WorkingDays)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, "00:00", summary.TotalPlannedTime)
	assert.Equal(t, "00:00", summary.TotalActualTime)
	// No division by zero: averages default to zero.
	assert.Equal(t, "00:00", summary.AverageDailyDelay)
	assert.Equal(t, "00:00", summary.AverageDailyOvertime)
	assert.Equal(t, "00:00", summary.AverageDailyDeficit)
}

func TestSummarizeWeek(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-07-01", Status: StatusFullPresent, PlannedMinutes: "08:00", ActualMinutes: "08:00", DelayMinutes: "00:00", DeficitMinutes: "00:00", OvertimeMinutes: "00:00"},
		{Date: "2024-07-02", Status: StatusDelay, PlannedMinutes: "08:00", ActualMinutes: "07:40", DelayMinutes: "00:20", DeficitMinutes: "00:20", OvertimeMinutes: "00:00"},
		{Date: "2024-07-03", Status: StatusDeficit, PlannedMinutes: "08:00", ActualMinutes: "06:00", DelayMinutes: "00:00", DeficitMinutes: "02:00", OvertimeMinutes: "00:00"},
		{Date: "2024-07-04", Status: StatusAbsent},
		{Date: "2024-07-05", Status: StatusLeave},
		{Date: "2024-07-06", Status: StatusShiftOffDay, IsOffDay: true},
		{Date: "2024-07-07", Status: StatusShiftOffDay, IsOffDay: true},
	}

	summary := Summarize(records)

	assert.Equal(t, 7, summary.TotalDays)
	assert.Equal(t, 5, summary.WorkingDays)
	assert.Equal(t, 2, summary.OffDays)
	assert.Equal(t, 3, summary.PresentDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LeaveDays)

	assert.Equal(t, "24:00", summary.TotalPlannedTime)
	assert.Equal(t, "21:40", summary.TotalActualTime)
	// Leave day without an explicit planned duration credits the 8h default.
	assert.Equal(t, "08:00", summary.TotalLeaveTime)
	assert.Equal(t, "00:20", summary.TotalDelay)
	assert.Equal(t, "02:20", summary.TotalDeficit)

	assert.Equal(t, 1, summary.StatusCount[StatusFullPresent])
	assert.Equal(t, 1, summary.StatusCount[StatusDelay])
	assert.Equal(t, 1, summary.StatusCount[StatusDeficit])
	assert.Equal(t, 1, summary.StatusCount[StatusAbsent])
	assert.Equal(t, 1, summary.StatusCount[StatusLeave])
	assert.Equal(t, 2, summary.StatusCount[StatusShiftOffDay])
}

// Average is rounded to the nearest whole minute over present days only.
func TestSummarizeAverages(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-07-01", Status: StatusDelay, DelayMinutes: "00:10"},
		{Date: "2024-07-02", Status: StatusDelay, DelayMinutes: "00:15"},
	}

	summary := Summarize(records)

	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, "00:13", summary.AverageDailyDelay) // round(25/2) = 13
}

// An off-day record outranks its own status: a worked off-day is excluded from
// minute aggregation entirely.
func TestSummarizeOffDayFlagWins(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-07-06", Status: StatusFullPresent, IsOffDay: true, ActualMinutes: "03:00", OvertimeMinutes: "03:00"},
	}

	summary := Summarize(records)

	assert.Equal(t, 1, summary.OffDays)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, "00:00", summary.TotalOvertime)
}

func TestSummarizeLeaveWithExplicitPlanned(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-07-01", Status: StatusLeave, PlannedMinutes: "06:00"},
	}

	summary := Summarize(records)

	assert.Equal(t, "06:00", summary.TotalLeaveTime)
}

// End-to-end: one Wednesday of full-window leave flows through calendar,
// mapping, reconciliation, and summary as a single leave day worth 8h.
func TestSummarizeEndToEndLeaveDay(t *testing.T) {
	day := date(2024, 7, 3)
	calendar := BuildCalendar(weekdaySchedule(), day, day)
	requests := MapRequests([]Request{{
		Kind: RequestLeave, Status: RequestAccepted,
		Start: ts(2024, 7, 3, 9, 0), End: ts(2024, 7, 3, 17, 0),
	}})

	summary := Summarize(Reconcile(calendar, nil, requests))

	assert.Equal(t, 1, summary.LeaveDays)
	assert.Equal(t, "08:00", summary.TotalLeaveTime)
	assert.Equal(t, 1, summary.StatusCount[StatusLeave])
}
