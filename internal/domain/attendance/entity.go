package attendance

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Attendance holds all check-in/check-out sessions of one user on one date.
// At most one record exists per (user, date).
type Attendance struct {
	ID        string
	UserID    string
	Date      time.Time
	Sessions  Sessions
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session is one check-in/check-out pair. CheckOut is nil while the session
// is open; at most one session per record may be open at a time.
type Session struct {
	CheckIn  time.Time  `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
}

// Sessions is stored as a JSONB column.
type Sessions []Session

// OpenSession returns the record's open session, if any.
func (s Sessions) OpenSession() *Session {
	if len(s) == 0 {
		return nil
	}
	last := &s[len(s)-1]
	if last.CheckOut == nil {
		return last
	}
	return nil
}

// Value implements driver.Valuer for database storage
func (s Sessions) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal(Sessions{})
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *Sessions) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Sessions: invalid type")
	}

	return json.Unmarshal(bytes, s)
}
