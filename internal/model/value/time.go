package value

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeConstraints is reported when a time of day fails validation.
const TimeConstraints = "Time should be in 24-hour HH:MM format (e.g. 09:30, 18:00)"

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// Time is a time of day with minute precision.
type Time struct {
	hour   int
	minute int
}

// NewTime trims raw and validates it as HH:MM.
func NewTime(raw string) (Time, error) {
	s := strings.TrimSpace(raw)
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return Time{}, invalid("time", raw, TimeConstraints)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return Time{hour: hour, minute: minute}, nil
}

// IsValidTime reports whether candidate, once trimmed, is a valid HH:MM time.
func IsValidTime(candidate string) bool {
	return timePattern.MatchString(strings.TrimSpace(candidate))
}

// Minutes returns minutes since midnight, handy for ordering sessions in a day.
func (t Time) Minutes() int {
	return t.hour*60 + t.minute
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
