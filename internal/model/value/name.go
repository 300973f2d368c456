package value

import (
	"regexp"
	"strings"
)

// NameConstraints is reported when a name fails validation.
const NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

var namePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// Name is a person's full name.
type Name struct {
	full string
}

// NewName trims raw and validates it as a Name.
func NewName(raw string) (Name, error) {
	s := strings.TrimSpace(raw)
	if !IsValidName(s) {
		return Name{}, invalid("name", raw, NameConstraints)
	}
	return Name{full: s}, nil
}

// IsValidName reports whether candidate, once trimmed, is an acceptable name.
func IsValidName(candidate string) bool {
	return namePattern.MatchString(strings.TrimSpace(candidate))
}

func (n Name) String() string {
	return n.full
}

// IsZero reports whether n was never constructed.
func (n Name) IsZero() bool {
	return n.full == ""
}
