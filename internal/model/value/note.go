package value

import (
	"strings"
	"unicode/utf8"
)

// NoteMaxLength bounds the length of a session note in characters.
const NoteMaxLength = 500

// NoteConstraints is reported when a note fails validation.
const NoteConstraints = "Notes should be a single line of at most 500 characters"

// Note is an optional free-text remark on a caring session. The empty Note
// means "no note".
type Note struct {
	text string
}

// NewNote trims raw and validates it as a Note. Blank input yields the empty Note.
func NewNote(raw string) (Note, error) {
	s := strings.TrimSpace(raw)
	if !IsValidNote(s) {
		return Note{}, invalid("note", raw, NoteConstraints)
	}
	return Note{text: s}, nil
}

// IsValidNote reports whether candidate, once trimmed, is an acceptable note.
func IsValidNote(candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	return utf8.RuneCountInString(candidate) <= NoteMaxLength && !strings.ContainsAny(candidate, "\r\n")
}

// IsEmpty reports whether the note carries no text.
func (n Note) IsEmpty() bool {
	return n.text == ""
}

func (n Note) String() string {
	return n.text
}
