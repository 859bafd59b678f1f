package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ts(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// weekdaySchedule is Monday-Friday 09:00-17:00 with weekend off-days.
func weekdaySchedule() ShiftDefinition {
	def := ShiftDefinition{}
	for day := 1; day <= 5; day++ {
		def.WeeklyRules = append(def.WeeklyRules, WeeklyRule{
			Weekday: day,
			Windows: []TimeWindow{{Start: MustClock("09:00"), End: MustClock("17:00")}},
		})
	}
	def.WeeklyRules = append(def.WeeklyRules,
		WeeklyRule{Weekday: 6, IsOffDay: true, Windows: []TimeWindow{{Start: MustClock("09:00"), End: MustClock("17:00")}}},
		WeeklyRule{Weekday: 7, IsOffDay: true, Windows: []TimeWindow{{Start: MustClock("09:00"), End: MustClock("17:00")}}},
	)
	return def
}

func TestBuildCalendarOneEntryPerDate(t *testing.T) {
	// 2024-07-01 is a Monday.
	calendar := BuildCalendar(weekdaySchedule(), date(2024, 7, 1), date(2024, 7, 31))

	require.Len(t, calendar, 31)
	for i, day := range calendar {
		assert.Equal(t, date(2024, 7, 1+i), day.Date, "days must be ascending and contiguous")
	}
}

func TestBuildCalendarZeroLengthRange(t *testing.T) {
	calendar := BuildCalendar(weekdaySchedule(), date(2024, 7, 3), date(2024, 7, 3))

	require.Len(t, calendar, 1)
	assert.Equal(t, date(2024, 7, 3), calendar[0].Date)
	assert.False(t, calendar[0].IsOffDay)
}

func TestBuildCalendarTruncatesTimeOfDay(t *testing.T) {
	calendar := BuildCalendar(weekdaySchedule(), ts(2024, 7, 1, 13, 45), ts(2024, 7, 2, 6, 0))

	require.Len(t, calendar, 2)
	assert.Equal(t, date(2024, 7, 1), calendar[0].Date)
	assert.Equal(t, date(2024, 7, 2), calendar[1].Date)
}

func TestBuildCalendarWeeklyRule(t *testing.T) {
	calendar := BuildCalendar(weekdaySchedule(), date(2024, 7, 1), date(2024, 7, 7))

	monday := calendar[0]
	require.Len(t, monday.Windows, 1)
	assert.Equal(t, "09:00", monday.Windows[0].Start.String())
	assert.Equal(t, "17:00", monday.Windows[0].End.String())
	assert.False(t, monday.IsOffDay)

	saturday := calendar[5]
	assert.True(t, saturday.IsOffDay)
	sunday := calendar[6]
	assert.True(t, sunday.IsOffDay)
}

// An exception always wins over the weekly rule, even an off-day rule, and is
// never itself an off-day.
func TestBuildCalendarExceptionWins(t *testing.T) {
	def := weekdaySchedule()
	def.ExceptionDays = []ExceptionDay{{
		Date:    date(2024, 7, 6), // Saturday, weekly rule says off
		Windows: []TimeWindow{{Start: MustClock("10:00"), End: MustClock("14:00")}},
	}}

	calendar := BuildCalendar(def, date(2024, 7, 1), date(2024, 7, 7))

	saturday := calendar[5]
	assert.True(t, saturday.IsException)
	assert.False(t, saturday.IsOffDay)
	require.Len(t, saturday.Windows, 1)
	assert.Equal(t, "10:00", saturday.Windows[0].Start.String())
	assert.Equal(t, "14:00", saturday.Windows[0].End.String())
}

// A date covered by no rule is a no-schedule day, distinct from an off-day.
func TestBuildCalendarNoRule(t *testing.T) {
	def := ShiftDefinition{WeeklyRules: []WeeklyRule{{
		Weekday: 1,
		Windows: []TimeWindow{{Start: MustClock("09:00"), End: MustClock("17:00")}},
	}}}

	calendar := BuildCalendar(def, date(2024, 7, 1), date(2024, 7, 2))

	assert.NotEmpty(t, calendar[0].Windows) // Monday has the rule
	tuesday := calendar[1]
	assert.Empty(t, tuesday.Windows)
	assert.False(t, tuesday.IsOffDay)
	assert.False(t, tuesday.IsException)
}

func TestIsoWeekday(t *testing.T) {
	assert.Equal(t, 1, isoWeekday(date(2024, 7, 1))) // Monday
	assert.Equal(t, 6, isoWeekday(date(2024, 7, 6))) // Saturday
	assert.Equal(t, 7, isoWeekday(date(2024, 7, 7))) // Sunday
}
