package value

import (
	"regexp"
	"strings"
)

// PhoneConstraints is reported when a phone number fails validation.
const PhoneConstraints = "Phone numbers should only contain digits, and it should be between 3 and 15 digits long"

var phonePattern = regexp.MustCompile(`^\d{3,15}$`)

// Phone is a contact phone number.
type Phone struct {
	number string
}

// NewPhone trims raw and validates it as a Phone.
func NewPhone(raw string) (Phone, error) {
	s := strings.TrimSpace(raw)
	if !IsValidPhone(s) {
		return Phone{}, invalid("phone", raw, PhoneConstraints)
	}
	return Phone{number: s}, nil
}

// IsValidPhone reports whether candidate, once trimmed, is an acceptable phone number.
func IsValidPhone(candidate string) bool {
	return phonePattern.MatchString(strings.TrimSpace(candidate))
}

func (p Phone) String() string {
	return p.number
}
