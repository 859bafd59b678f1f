package timesheet

import "time"

// clockOf extracts the time-of-day of a timestamp, in UTC.
func clockOf(t time.Time) ClockTime {
	t = t.UTC()
	return ClockTime(t.Hour()*60 + t.Minute())
}

func sameDate(a, b time.Time) bool {
	return a.UTC().Format(DateFormat) == b.UTC().Format(DateFormat)
}

// MapRequests groups accepted requests into per-date interval lists, keyed by
// "YYYY-MM-DD". Requests that are not accepted are silently skipped. A request
// contained in a single date maps to one interval with its actual start and
// end times. A multi-day request emits one interval per date it spans: the
// first date clipped to [start, 23:59], the last to [00:00, end], and every
// date strictly between as a full day [00:00, 23:59].
func MapRequests(requests []Request) map[string][]RequestInterval {
	mapped := make(map[string][]RequestInterval)

	for _, req := range requests {
		if req.Status != RequestAccepted {
			continue
		}

		if sameDate(req.Start, req.End) {
			key := req.Start.UTC().Format(DateFormat)
			mapped[key] = append(mapped[key], RequestInterval{
				Kind: req.Kind,
				From: clockOf(req.Start),
				To:   clockOf(req.End),
			})
			continue
		}

		end := req.End.UTC()
		for date := truncateToDay(req.Start.UTC()); !date.After(end); date = date.AddDate(0, 0, 1) {
			interval := RequestInterval{Kind: req.Kind, From: 0, To: EndOfDay}
			if sameDate(date, req.Start) {
				interval.From = clockOf(req.Start)
			}
			if sameDate(date, req.End) {
				interval.To = clockOf(req.End)
			}
			key := date.Format(DateFormat)
			mapped[key] = append(mapped[key], interval)
		}
	}

	return mapped
}
