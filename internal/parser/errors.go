package parser

import (
	"errors"
	"fmt"
)

// Parser failure kinds.
var (
	ErrParse          = errors.New("parse error")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMalformedInput = errors.New("malformed input")
)

// User-facing parser messages.
const (
	MsgInvalidCommandFormat = "Invalid command format!\n%s"
	MsgUnknownCommand       = "Unknown command"
	MsgInvalidIndex         = "Index is not a non-zero unsigned integer."
	MsgDuplicatePrefixes    = "Multiple values specified for the following single-valued field(s): %s"
	MsgEmptyInput           = "Type a command, or 'help' to list the available commands."
)

// ParseError is a user-visible failure raised while turning input into a
// command. It matches its Kind with errors.Is, and also the underlying
// Cause when one exists (a value.ValidationError, for instance).
type ParseError struct {
	Kind    error
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the cause.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// InvalidFormat reports arguments that do not match a command's shape.
func InvalidFormat(usage string) error {
	return &ParseError{Kind: ErrParse, Message: fmt.Sprintf(MsgInvalidCommandFormat, usage)}
}

func fromValidation(err error) error {
	return &ParseError{Kind: ErrParse, Message: err.Error(), Cause: err}
}
