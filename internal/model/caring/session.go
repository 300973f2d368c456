// Package caring models scheduled caring sessions. A Session has no identity
// of its own: it is owned by exactly one patient and addressed by its position
// in that patient's session list.
package caring

import (
	"fmt"
	"strings"

	"noknock/internal/model/value"
)

// Session is an immutable caring session record.
type Session struct {
	date     value.Date
	time     value.Time
	careType value.CareType
	status   value.SessionStatus
	note     value.Note
}

// New returns a Scheduled session.
func New(date value.Date, at value.Time, careType value.CareType, note value.Note) Session {
	return Session{date: date, time: at, careType: careType, status: value.StatusScheduled, note: note}
}

// Date returns the scheduled day.
func (s Session) Date() value.Date { return s.date }

// Time returns the scheduled time of day.
func (s Session) Time() value.Time { return s.time }

// CareType returns the kind of care delivered.
func (s Session) CareType() value.CareType { return s.careType }

// Status returns the session's lifecycle state.
func (s Session) Status() value.SessionStatus { return s.status }

// Note returns the optional note; it may be empty.
func (s Session) Note() value.Note { return s.note }

// WithDate returns a copy of s scheduled on date.
func (s Session) WithDate(date value.Date) Session {
	s.date = date
	return s
}

// WithTime returns a copy of s scheduled at t.
func (s Session) WithTime(t value.Time) Session {
	s.time = t
	return s
}

// WithCareType returns a copy of s with a different care type.
func (s Session) WithCareType(careType value.CareType) Session {
	s.careType = careType
	return s
}

// WithStatus returns a copy of s in status.
func (s Session) WithStatus(status value.SessionStatus) Session {
	s.status = status
	return s
}

// WithNote returns a copy of s carrying note.
func (s Session) WithNote(note value.Note) Session {
	s.note = note
	return s
}

// Equal reports structural equality, which is also a session's identity.
func (s Session) Equal(other Session) bool {
	return s == other
}

// Before orders sessions by date then time.
func (s Session) Before(other Session) bool {
	if s.date != other.date {
		return s.date.Before(other.date)
	}
	return s.time.Minutes() < other.time.Minutes()
}

func (s Session) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s (%s)", s.date, s.time, s.careType, s.status)
	if !s.note.IsEmpty() {
		fmt.Fprintf(&b, " - %s", s.note)
	}
	return b.String()
}
