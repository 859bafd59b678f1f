package timesheet

import "time"

// isoWeekday returns the ISO weekday number of a date (1=Monday ... 7=Sunday).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// truncateToDay drops the time-of-day component, keeping the UTC date.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildCalendar expands a shift definition over an inclusive date range into
// one CalendarDay per date, in ascending order. An exception day always wins
// over the weekly rule and is never an off-day. A date covered by neither an
// exception nor a weekly rule gets an empty window list, which callers must
// treat as "no schedule" - distinct from an off-day.
func BuildCalendar(def ShiftDefinition, rangeStart, rangeEnd time.Time) []CalendarDay {
	exceptions := make(map[string][]TimeWindow, len(def.ExceptionDays))
	for _, ex := range def.ExceptionDays {
		exceptions[ex.Date.UTC().Format(DateFormat)] = ex.Windows
	}

	rules := make(map[int]WeeklyRule, len(def.WeeklyRules))
	for _, rule := range def.WeeklyRules {
		rules[rule.Weekday] = rule
	}

	var calendar []CalendarDay
	end := truncateToDay(rangeEnd.UTC())
	for date := truncateToDay(rangeStart.UTC()); !date.After(end); date = date.AddDate(0, 0, 1) {
		day := CalendarDay{Date: date}

		if windows, ok := exceptions[date.Format(DateFormat)]; ok {
			day.IsException = true
			day.Windows = windows
		} else if rule, ok := rules[isoWeekday(date)]; ok {
			day.IsOffDay = rule.IsOffDay
			day.Windows = rule.Windows
		}

		calendar = append(calendar, day)
	}

	return calendar
}
