package value

import (
	"regexp"
	"strings"
)

// WardConstraints is reported when a ward fails validation.
const WardConstraints = "Ward should be an uppercase letter followed by 1 to 3 digits (e.g. B2, A12)"

var wardPattern = regexp.MustCompile(`^[A-Z]\d{1,3}$`)

// Ward is the ward a patient is assigned to.
type Ward struct {
	code string
}

// NewWard trims raw and validates it as a Ward.
func NewWard(raw string) (Ward, error) {
	s := strings.TrimSpace(raw)
	if !IsValidWard(s) {
		return Ward{}, invalid("ward", raw, WardConstraints)
	}
	return Ward{code: s}, nil
}

// IsValidWard reports whether candidate, once trimmed, is an acceptable ward code.
func IsValidWard(candidate string) bool {
	return wardPattern.MatchString(strings.TrimSpace(candidate))
}

func (w Ward) String() string {
	return w.code
}
