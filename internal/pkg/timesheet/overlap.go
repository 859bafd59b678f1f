package timesheet

import "time"

// anchor places a clock time on a specific UTC date.
func anchor(date time.Time, c ClockTime) time.Time {
	day := truncateToDay(date.UTC())
	return day.Add(time.Duration(c.Minutes()) * time.Minute)
}

// OverlapMinutes sums the minutes where each interval (read as clock times on
// date) overlaps the window [winStart, winEnd]. Degenerate or disjoint
// intervals contribute zero. Intervals that overlap each other are summed as
// given; deduplication is the request-approval layer's concern, not ours.
func OverlapMinutes(winStart, winEnd time.Time, intervals []RequestInterval, date time.Time) int {
	total := 0

	for _, iv := range intervals {
		from := anchor(date, iv.From)
		to := anchor(date, iv.To)

		overlapStart := winStart
		if from.After(overlapStart) {
			overlapStart = from
		}
		overlapEnd := winEnd
		if to.Before(overlapEnd) {
			overlapEnd = to
		}

		if overlapEnd.After(overlapStart) {
			total += int(overlapEnd.Sub(overlapStart) / time.Minute)
		}
	}

	return total
}
