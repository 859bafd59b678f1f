package timesheet

import "math"

// defaultLeaveDayMinutes is credited for a leave day whose record carries no
// explicit planned duration (a full-day leave record has none).
const defaultLeaveDayMinutes = 8 * 60

// Summarize reduces an ordered sequence of daily records into range totals,
// per-status counts, and per-present-day averages. Days flagged off-day or
// classified shiftOffDay are excluded from all minute aggregation. An empty
// input yields all-zero counts and "00:00" totals.
func Summarize(records []DailyRecord) SummaryReport {
	summary := SummaryReport{
		TotalDays:   len(records),
		StatusCount: make(map[Status]int),
	}

	var planned, actual, leave, overtime, delay, deficit int

	for _, day := range records {
		if day.IsOffDay || day.Status == StatusShiftOffDay {
			summary.OffDays++
			summary.StatusCount[StatusShiftOffDay]++
			continue
		}

		summary.WorkingDays++

		switch day.Status {
		case StatusAbsent:
			summary.AbsentDays++
			summary.StatusCount[StatusAbsent]++
			continue
		case StatusLeave:
			summary.LeaveDays++
			summary.StatusCount[StatusLeave]++
			if day.PlannedMinutes != "" {
				leave += ParseDuration(day.PlannedMinutes)
			} else {
				leave += defaultLeaveDayMinutes
			}
			continue
		}

		summary.PresentDays++
		summary.StatusCount[day.Status]++

		planned += ParseDuration(day.PlannedMinutes)
		actual += ParseDuration(day.ActualMinutes)
		overtime += ParseDuration(day.OvertimeMinutes)
		delay += ParseDuration(day.DelayMinutes)
		deficit += ParseDuration(day.DeficitMinutes)
	}

	avg := func(total int) int {
		if summary.PresentDays == 0 {
			return 0
		}
		return int(math.Round(float64(total) / float64(summary.PresentDays)))
	}

	summary.TotalPlannedTime = FormatDuration(planned)
	summary.TotalActualTime = FormatDuration(actual)
	summary.TotalLeaveTime = FormatDuration(leave)
	summary.TotalOvertime = FormatDuration(overtime)
	summary.TotalDelay = FormatDuration(delay)
	summary.TotalDeficit = FormatDuration(deficit)
	summary.AverageDailyOvertime = FormatDuration(avg(overtime))
	summary.AverageDailyDelay = FormatDuration(avg(delay))
	summary.AverageDailyDeficit = FormatDuration(avg(deficit))

	return summary
}
