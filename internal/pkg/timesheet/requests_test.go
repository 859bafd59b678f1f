package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRequestsSkipsNonAccepted(t *testing.T) {
	requests := []Request{
		{Kind: RequestLeave, Status: RequestPending, Start: ts(2024, 7, 3, 9, 0), End: ts(2024, 7, 3, 12, 0)},
		{Kind: RequestLeave, Status: RequestRejected, Start: ts(2024, 7, 3, 9, 0), End: ts(2024, 7, 3, 12, 0)},
	}

	assert.Empty(t, MapRequests(requests))
}

func TestMapRequestsSameDay(t *testing.T) {
	requests := []Request{{
		Kind:   RequestLeave,
		Status: RequestAccepted,
		Start:  ts(2024, 7, 3, 9, 30),
		End:    ts(2024, 7, 3, 12, 0),
	}}

	mapped := MapRequests(requests)

	require.Len(t, mapped, 1)
	intervals := mapped["2024-07-03"]
	require.Len(t, intervals, 1)
	assert.Equal(t, RequestLeave, intervals[0].Kind)
	assert.Equal(t, "09:30", intervals[0].From.String())
	assert.Equal(t, "12:00", intervals[0].To.String())
}

// A request spanning N days maps to exactly N intervals: first clipped at the
// start time, last at the end time, interior days full-day.
func TestMapRequestsMultiDay(t *testing.T) {
	requests := []Request{{
		Kind:   RequestLeave,
		Status: RequestAccepted,
		Start:  ts(2024, 7, 1, 13, 0),
		End:    ts(2024, 7, 4, 10, 30),
	}}

	mapped := MapRequests(requests)
	require.Len(t, mapped, 4)

	first := mapped["2024-07-01"][0]
	assert.Equal(t, "13:00", first.From.String())
	assert.Equal(t, "23:59", first.To.String())

	for _, key := range []string{"2024-07-02", "2024-07-03"} {
		iv := mapped[key][0]
		assert.Equal(t, "00:00", iv.From.String(), key)
		assert.Equal(t, "23:59", iv.To.String(), key)
	}

	last := mapped["2024-07-04"][0]
	assert.Equal(t, "00:00", last.From.String())
	assert.Equal(t, "10:30", last.To.String())
}

func TestMapRequestsMixedKinds(t *testing.T) {
	requests := []Request{
		{Kind: RequestLeave, Status: RequestAccepted, Start: ts(2024, 7, 3, 9, 0), End: ts(2024, 7, 3, 11, 0)},
		{Kind: RequestOvertime, Status: RequestAccepted, Start: ts(2024, 7, 3, 17, 0), End: ts(2024, 7, 3, 19, 0)},
	}

	mapped := MapRequests(requests)

	intervals := mapped["2024-07-03"]
	require.Len(t, intervals, 2)
	assert.Equal(t, RequestLeave, intervals[0].Kind)
	assert.Equal(t, RequestOvertime, intervals[1].Kind)
}
