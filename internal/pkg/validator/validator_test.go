package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "19:05", "23:59"}
	invalid := []string{"24:00", "9:30", "12:60", "12:5", "ab:cd", "12-30", ""}
	for _, clock := range valid {
		if !IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = true, want false", clock)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-07-03"); !ok {
		t.Error("IsValidDate(\"2024-07-03\") = false, want true")
	}
	for _, input := range []string{"2024-13-01", "03-07-2024", "2024/07/03", ""} {
		if _, ok := IsValidDate(input); ok {
			t.Errorf("IsValidDate(%q) = true, want false", input)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-07-03T09:00:00Z", "2024-07-03T09:00:00+03:30"}
	invalid := []string{"2024-07-03", "2024-07-03 09:00", ""}
	for _, input := range valid {
		if _, ok := IsValidDateTime(input); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", input)
		}
	}
	for _, input := range invalid {
		if _, ok := IsValidDateTime(input); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", input)
		}
	}
}
