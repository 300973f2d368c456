package commands

import (
	"errors"
	"fmt"
)

// Failure kinds raised while executing commands. Duplicate and missing
// entities reuse unique.ErrDuplicateEntity and unique.ErrNotFound.
var (
	ErrInvalidIndex       = errors.New("invalid index")
	ErrInvalidNestedIndex = errors.New("invalid nested index")
	ErrNoFieldsEdited     = errors.New("no fields edited")
)

// CommandError is a user-visible command failure.
type CommandError struct {
	Kind    error
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap exposes the failure kind to errors.Is.
func (e *CommandError) Unwrap() error {
	return e.Kind
}

// Fail builds a *CommandError of the given kind.
func Fail(kind error, format string, args ...any) error {
	return &CommandError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
