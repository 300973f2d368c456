package value

import "strings"

// SessionStatusConstraints is reported when a session status is not recognized.
var SessionStatusConstraints = "Session status should be one of: " + strings.Join(labelsOf(SessionStatuses()), ", ")

// SessionStatus is the lifecycle state of a caring session.
type SessionStatus int

// Known session statuses. The zero value is not a valid SessionStatus.
const (
	StatusScheduled SessionStatus = iota + 1
	StatusCompleted
	StatusCancelled
)

var sessionStatusLabels = map[SessionStatus]string{
	StatusScheduled: "Scheduled",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
}

// SessionStatuses returns every valid status in declaration order.
func SessionStatuses() []SessionStatus {
	return []SessionStatus{StatusScheduled, StatusCompleted, StatusCancelled}
}

// SessionStatusOf resolves a label, ignoring case and separators.
func SessionStatusOf(raw string) (SessionStatus, error) {
	key := normalizeLabel(raw)
	for _, s := range SessionStatuses() {
		if normalizeLabel(s.String()) == key {
			return s, nil
		}
	}
	return 0, invalid("status", raw, SessionStatusConstraints)
}

// IsValidSessionStatus reports whether candidate names a known status.
func IsValidSessionStatus(candidate string) bool {
	_, err := SessionStatusOf(candidate)
	return err == nil
}

func (s SessionStatus) String() string {
	return sessionStatusLabels[s]
}
