package value

import (
	"regexp"
	"sort"
	"strings"
)

// TagConstraints is reported when a tag fails validation.
const TagConstraints = "Tags names should be alphanumeric"

var tagPattern = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

// Tag is a free-form alphanumeric label attached to a patient.
type Tag struct {
	name string
}

// NewTag trims raw and validates it as a Tag.
func NewTag(raw string) (Tag, error) {
	s := strings.TrimSpace(raw)
	if !IsValidTag(s) {
		return Tag{}, invalid("tag", raw, TagConstraints)
	}
	return Tag{name: s}, nil
}

// IsValidTag reports whether candidate, once trimmed, is an acceptable tag name.
func IsValidTag(candidate string) bool {
	return tagPattern.MatchString(strings.TrimSpace(candidate))
}

func (t Tag) String() string {
	return t.name
}

// TagSet returns tags deduplicated and sorted by name, so two sets holding the
// same tags compare equal element by element.
func TagSet(tags []Tag) []Tag {
	seen := make(map[Tag]struct{}, len(tags))
	set := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		set = append(set, t)
	}
	if len(set) == 0 {
		return nil
	}
	sort.Slice(set, func(i, j int) bool { return set[i].name < set[j].name })
	return set
}
