package timesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a time of day with minute precision, stored as minutes since
// midnight. Wire format is "HH:MM" (24h).
type ClockTime int

const (
	// EndOfDay is the last representable clock time, 23:59.
	EndOfDay ClockTime = 23*60 + 59
)

// ParseClock parses a "HH:MM" time-of-day string.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return ClockTime(hours*60 + minutes), nil
}

// MustClock is ParseClock that panics on malformed input. For literals.
func MustClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Minutes returns the time of day as minutes since midnight.
func (c ClockTime) Minutes() int {
	return int(c)
}

// FormatDuration encodes a minute count as a zero-padded "HH:MM" duration
// string. Hours may exceed 24 for aggregated totals; this is a duration
// encoding, not a time of day, even though the textual form is the same.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDuration decodes a "HH:MM" duration string back to minutes. Empty or
// malformed values decode to zero so that partially populated records
// aggregate without error.
func ParseDuration(s string) int {
	if s == "" || s == "--:--" {
		return 0
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}
