// Package value defines the immutable, self-validating scalar types used by
// the patient, next-of-kin and caring session records.
//
// Every type is built from raw user text through a New* constructor that trims
// surrounding whitespace and either returns a valid instance or a
// *ValidationError carrying the type's fixed constraint message. The matching
// IsValid* predicate can be used on its own, for example by the parser to
// pre-check a field before constructing it.
package value

import (
	"errors"
	"strings"
)

// ErrValidation is the kind shared by every ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a raw value that is outside its type's domain.
type ValidationError struct {
	Field      string // Field that failed, e.g. "name"
	Value      string // Raw input as given
	Constraint string // User-facing constraint message
}

func (e *ValidationError) Error() string {
	return e.Constraint
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, raw, constraint string) error {
	return &ValidationError{Field: field, Value: raw, Constraint: constraint}
}

// normalizeLabel folds an enumeration label for case and separator insensitive lookup.
func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
