package value

import (
	"regexp"
	"strings"
	"time"
)

// DateConstraints is reported when a date is malformed or lies in the past.
const DateConstraints = "Dates must be in YYYY-MM-DD or DD-MM-YYYY format and must not be in the past"

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
)

// Date is a calendar day with no time-of-day or zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate validates raw against the current local day.
func NewDate(raw string) (Date, error) {
	return NewDateAt(raw, time.Now())
}

// NewDateAt validates raw as a date that is not strictly before the calendar
// day of today.
func NewDateAt(raw string, today time.Time) (Date, error) {
	d, ok := ParseCalendarDate(raw)
	if !ok || d.Before(DateOf(today)) {
		return Date{}, invalid("date", raw, DateConstraints)
	}
	return d, nil
}

// RestoreDate accepts any well-formed date, past or not. It is used when
// reloading sessions whose scheduled day has since gone by.
func RestoreDate(raw string) (Date, error) {
	d, ok := ParseCalendarDate(raw)
	if !ok {
		return Date{}, invalid("date", raw, DateConstraints)
	}
	return d, nil
}

// IsValidDate reports whether candidate is well formed and not in the past.
func IsValidDate(candidate string) bool {
	_, err := NewDate(candidate)
	return err == nil
}

// ParseCalendarDate parses YYYY-MM-DD or DD-MM-YYYY. Any other shape, or a
// shape naming a day that does not exist, is rejected.
func ParseCalendarDate(raw string) (Date, bool) {
	s := strings.TrimSpace(raw)
	var layout string
	switch {
	case isoDatePattern.MatchString(s):
		layout = "2006-01-02"
	case dmyDatePattern.MatchString(s):
		layout = "02-01-2006"
	default:
		return Date{}, false
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, false
	}
	return DateOf(t), true
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.ordinal() < other.ordinal()
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.ordinal() > other.ordinal()
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d was never constructed.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

func (d Date) ordinal() int {
	return d.year*10000 + int(d.month)*100 + d.day
}
