package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func leaveInterval(from, to string) RequestInterval {
	return RequestInterval{Kind: RequestLeave, From: MustClock(from), To: MustClock(to)}
}

func TestOverlapMinutes(t *testing.T) {
	day := date(2024, 7, 3)
	winStart := ts(2024, 7, 3, 9, 0)
	winEnd := ts(2024, 7, 3, 17, 0)

	cases := []struct {
		name      string
		intervals []RequestInterval
		want      int
	}{
		{"fully inside", []RequestInterval{leaveInterval("10:00", "12:00")}, 120},
		{"clipped at window start", []RequestInterval{leaveInterval("07:00", "10:00")}, 60},
		{"clipped at window end", []RequestInterval{leaveInterval("16:30", "19:00")}, 30},
		{"covers whole window", []RequestInterval{leaveInterval("00:00", "23:59")}, 480},
		{"disjoint before", []RequestInterval{leaveInterval("06:00", "08:00")}, 0},
		{"disjoint after", []RequestInterval{leaveInterval("18:00", "20:00")}, 0},
		{"degenerate end before start", []RequestInterval{leaveInterval("12:00", "10:00")}, 0},
		{"empty interval list", nil, 0},
		{
			// Overlapping intervals double-count; dedup happens upstream.
			"overlapping intervals double count",
			[]RequestInterval{leaveInterval("10:00", "12:00"), leaveInterval("11:00", "13:00")},
			120 + 120,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := OverlapMinutes(winStart, winEnd, c.intervals, day)
			assert.Equal(t, c.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestOverlapMinutesOrderIndependent(t *testing.T) {
	day := date(2024, 7, 3)
	winStart := ts(2024, 7, 3, 9, 0)
	winEnd := ts(2024, 7, 3, 17, 0)

	a := []RequestInterval{leaveInterval("09:00", "10:00"), leaveInterval("15:00", "16:00")}
	b := []RequestInterval{a[1], a[0]}

	assert.Equal(t,
		OverlapMinutes(winStart, winEnd, a, day),
		OverlapMinutes(winStart, winEnd, b, day),
	)
}

func TestAnchor(t *testing.T) {
	got := anchor(ts(2024, 7, 3, 15, 30), MustClock("09:15"))
	assert.Equal(t, time.Date(2024, 7, 3, 9, 15, 0, 0, time.UTC), got)
}
