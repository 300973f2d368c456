package value

import (
	"regexp"
	"strings"
)

// ICConstraints is reported when an identification number fails validation.
const ICConstraints = "IC should start with S, T, F, G or M, followed by 7 digits and end with an uppercase letter (e.g. S1234567A)"

var icPattern = regexp.MustCompile(`^[STFGM]\d{7}[A-Z]$`)

// IC is a patient's identification card number.
type IC struct {
	number string
}

// NewIC trims raw and validates it as an IC.
func NewIC(raw string) (IC, error) {
	s := strings.TrimSpace(raw)
	if !IsValidIC(s) {
		return IC{}, invalid("ic", raw, ICConstraints)
	}
	return IC{number: s}, nil
}

// IsValidIC reports whether candidate, once trimmed, is an acceptable identification number.
func IsValidIC(candidate string) bool {
	return icPattern.MatchString(strings.TrimSpace(candidate))
}

func (i IC) String() string {
	return i.number
}
