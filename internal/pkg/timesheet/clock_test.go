package timesheet

import (
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 545, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %v", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got.Minutes() != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.input, got.Minutes(), c.want)
		}
	}
}

func TestClockTimeString(t *testing.T) {
	if got := MustClock("09:05").String(); got != "09:05" {
		t.Errorf("String() = %q, want %q", got, "09:05")
	}
	if got := ClockTime(0).String(); got != "00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00")
	}
}

// Durations round-trip through the wire format, including totals above 24h.
func TestDurationRoundTrip(t *testing.T) {
	cases := []struct {
		minutes int
		encoded string
	}{
		{0, "00:00"},
		{10, "00:10"},
		{480, "08:00"},
		{1439, "23:59"},
		{2890, "48:10"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.minutes); got != c.encoded {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.minutes, got, c.encoded)
		}
		if got := ParseDuration(c.encoded); got != c.minutes {
			t.Errorf("ParseDuration(%q) = %d, want %d", c.encoded, got, c.minutes)
		}
	}
}

func TestParseDurationMalformed(t *testing.T) {
	for _, input := range []string{"", "--:--", "abc", "1:2:3", "aa:10", "10:bb"} {
		if got := ParseDuration(input); got != 0 {
			t.Errorf("ParseDuration(%q) = %d, want 0", input, got)
		}
	}
}
