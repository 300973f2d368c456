package parser

import (
	"strconv"
	"strings"
	"time"

	"noknock/internal/commands"
	"noknock/internal/model/value"
)

// ParseIndex parses a user-typed 1-based position.
func ParseIndex(raw string) (commands.Index, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || strings.HasPrefix(s, "+") {
		return commands.Index{}, &ParseError{Kind: ErrParse, Message: MsgInvalidIndex}
	}
	return commands.FromOneBased(n), nil
}

// ParseIndices parses a preamble holding exactly n whitespace-separated
// positions. Any other shape is reported with usage.
func ParseIndices(preamble string, n int, usage string) ([]commands.Index, error) {
	fields := strings.Fields(preamble)
	if len(fields) != n {
		return nil, InvalidFormat(usage)
	}
	out := make([]commands.Index, n)
	for i, f := range fields {
		idx, err := ParseIndex(f)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// ParseName validates a person name.
func ParseName(raw string) (value.Name, error) {
	return wrap(value.NewName(raw))
}

// ParsePhone validates a phone number.
func ParsePhone(raw string) (value.Phone, error) {
	return wrap(value.NewPhone(raw))
}

// ParseIC validates an identification number.
func ParseIC(raw string) (value.IC, error) {
	return wrap(value.NewIC(raw))
}

// ParseWard validates a ward code.
func ParseWard(raw string) (value.Ward, error) {
	return wrap(value.NewWard(raw))
}

// ParseTags validates each raw tag and folds them into a set.
func ParseTags(raws []string) ([]value.Tag, error) {
	tags := make([]value.Tag, 0, len(raws))
	for _, raw := range raws {
		t, err := wrap(value.NewTag(raw))
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return value.TagSet(tags), nil
}

// ParseRelationship resolves a relationship label.
func ParseRelationship(raw string) (value.Relationship, error) {
	return wrap(value.RelationshipOf(raw))
}

// ParseDate validates a scheduled date, which must not be before today.
func ParseDate(raw string, today time.Time) (value.Date, error) {
	return wrap(value.NewDateAt(raw, today))
}

// ParseFilterDate validates a date range bound. Past days are allowed.
func ParseFilterDate(raw string) (value.Date, error) {
	return wrap(value.RestoreDate(raw))
}

// ParseTime validates a time of day.
func ParseTime(raw string) (value.Time, error) {
	return wrap(value.NewTime(raw))
}

// ParseCareType resolves a care type label.
func ParseCareType(raw string) (value.CareType, error) {
	return wrap(value.CareTypeOf(raw))
}

// ParseStatus resolves a session status label.
func ParseStatus(raw string) (value.SessionStatus, error) {
	return wrap(value.SessionStatusOf(raw))
}

// ParseNote validates a free-text note.
func ParseNote(raw string) (value.Note, error) {
	return wrap(value.NewNote(raw))
}

// ParseKeywords splits a preamble into search keywords. At least one is required.
func ParseKeywords(preamble, usage string) ([]string, error) {
	keywords := strings.Fields(preamble)
	if len(keywords) == 0 {
		return nil, InvalidFormat(usage)
	}
	return keywords, nil
}

func wrap[T any](v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, fromValidation(err)
	}
	return v, nil
}
