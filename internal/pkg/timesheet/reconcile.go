package timesheet

import "time"

// splitByKind partitions a day's intervals into leave and overtime lists.
func splitByKind(intervals []RequestInterval) (leave, overtime []RequestInterval) {
	for _, iv := range intervals {
		switch iv.Kind {
		case RequestLeave:
			leave = append(leave, iv)
		case RequestOvertime:
			overtime = append(overtime, iv)
		}
	}
	return leave, overtime
}

// coversFullDay reports whether any interval spans 00:00-23:59.
func coversFullDay(intervals []RequestInterval) bool {
	for _, iv := range intervals {
		if iv.From == 0 && iv.To == EndOfDay {
			return true
		}
	}
	return false
}

// Reconcile combines each calendar day's planned window, the recorded
// attendance, and the day's mapped request intervals into one classified
// DailyRecord per day, in calendar order.
//
// Only the first window of a day and the first session of an attendance
// record are inspected; extra windows and sessions are ignored.
func Reconcile(calendar []CalendarDay, attendance []DayAttendance, requestsByDate map[string][]RequestInterval) []DailyRecord {
	attendanceByDate := make(map[string]DayAttendance, len(attendance))
	for _, rec := range attendance {
		attendanceByDate[rec.Date.UTC().Format(DateFormat)] = rec
	}

	records := make([]DailyRecord, 0, len(calendar))
	for _, day := range calendar {
		records = append(records, reconcileDay(day, attendanceByDate, requestsByDate))
	}
	return records
}

func reconcileDay(day CalendarDay, attendanceByDate map[string]DayAttendance, requestsByDate map[string][]RequestInterval) DailyRecord {
	dateStr := day.Date.Format(DateFormat)

	if len(day.Windows) == 0 {
		return DailyRecord{Date: dateStr, Status: StatusNoSchedule}
	}

	window := day.Windows[0]
	plannedStart := anchor(day.Date, window.Start)
	plannedEnd := anchor(day.Date, window.End)
	plannedDuration := int(plannedEnd.Sub(plannedStart) / time.Minute)

	leaveIntervals, overtimeIntervals := splitByKind(requestsByDate[dateStr])
	leaveMinutes := OverlapMinutes(plannedStart, plannedEnd, leaveIntervals, day.Date)

	rec, hasAttendance := attendanceByDate[dateStr]
	if hasAttendance && len(rec.Sessions) > 0 {
		session := rec.Sessions[0]

		if session.CheckIn.IsZero() || session.CheckOut == nil {
			return DailyRecord{
				Date:          dateStr,
				Status:        StatusIncomplete,
				ExpectedStart: window.Start.String(),
				ExpectedEnd:   window.End.String(),
			}
		}

		checkIn := session.CheckIn.UTC()
		checkOut := session.CheckOut.UTC()
		actualDuration := int(checkOut.Sub(checkIn) / time.Minute)

		delay := int(checkIn.Sub(plannedStart) / time.Minute)
		if delay < 0 {
			delay = 0
		}

		overtimeRequested := OverlapMinutes(checkOut, anchor(day.Date, EndOfDay), overtimeIntervals, day.Date)

		var deficit, overtime int
		if day.IsOffDay {
			// Any time worked on an off-day counts as overtime in full.
			deficit = 0
			overtime = actualDuration
		} else {
			deficit = plannedDuration - actualDuration - leaveMinutes
			if deficit < 0 {
				deficit = 0
			}
			overtime = actualDuration - plannedDuration - overtimeRequested
			if overtime < 0 {
				overtime = 0
			}
		}

		// Approved leave covering the whole planned window wins over the
		// recorded session: partial attendance on a leave day is still leave.
		// The leave record deliberately omits the off-day flag so the
		// summarizer counts it as a leave day, not an off day.
		if plannedDuration == leaveMinutes {
			return DailyRecord{
				Date:          dateStr,
				Status:        StatusLeave,
				ExpectedStart: window.Start.String(),
				ExpectedEnd:   window.End.String(),
			}
		}

		status := StatusFullPresent
		if delay > 0 {
			status = StatusDelay
		} else if deficit > 0 {
			status = StatusDeficit
		}

		return DailyRecord{
			Date:           dateStr,
			Status:         status,
			ExpectedStart:  window.Start.String(),
			ExpectedEnd:    window.End.String(),
			ActualCheckIn:  clockOf(checkIn).String(),
			ActualCheckOut: clockOf(checkOut).String(),

			PlannedMinutes:         FormatDuration(plannedDuration),
			ActualMinutes:          FormatDuration(actualDuration),
			LeaveMinutes:           FormatDuration(leaveMinutes),
			OvertimeRequestMinutes: FormatDuration(overtimeRequested),
			DelayMinutes:           FormatDuration(delay),
			DeficitMinutes:         FormatDuration(deficit),
			OvertimeMinutes:        FormatDuration(overtime),

			IsOffDay: day.IsOffDay,
		}
	}

	// No attendance at all for the day.
	fullDayLeave := coversFullDay(leaveIntervals) || plannedDuration == leaveMinutes
	switch {
	case fullDayLeave:
		return DailyRecord{
			Date:          dateStr,
			Status:        StatusLeave,
			ExpectedStart: window.Start.String(),
			ExpectedEnd:   window.End.String(),
		}
	case !day.IsOffDay:
		return DailyRecord{
			Date:          dateStr,
			Status:        StatusAbsent,
			ExpectedStart: window.Start.String(),
			ExpectedEnd:   window.End.String(),
		}
	default:
		return DailyRecord{Date: dateStr, Status: StatusShiftOffDay, IsOffDay: true}
	}
}
