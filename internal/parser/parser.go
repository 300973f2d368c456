// Package parser turns a raw input line into a validated command.
//
// Input is split into a keyword and an argument remainder. The keyword is
// matched exactly, case-sensitively, against a commands.Registry and the
// remainder is handed to that command's ParseFunc, which typically tokenizes
// it by argument prefix (see Tokenize) and validates each field.
package parser

import (
	"strings"
	"unicode"

	"noknock/internal/commands"
)

// Split separates input into its command keyword and the remainder that
// follows it. The remainder keeps its leading whitespace so prefixes right
// after the keyword are still recognised.
func Split(input string) (word, args string, err error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", "", &ParseError{Kind: ErrMalformedInput, Message: MsgEmptyInput}
	}
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, "", nil
	}
	return s[:end], s[end:], nil
}

// Parser dispatches input lines to registered command parsers.
type Parser struct {
	registry *commands.Registry
}

// New returns a Parser dispatching through registry.
func New(registry *commands.Registry) *Parser {
	if registry == nil {
		panic("parser: nil registry")
	}
	return &Parser{registry: registry}
}

// ParseCommand parses input into a command. It fails with ErrMalformedInput
// on blank input, ErrUnknownCommand when no keyword matches, and otherwise
// with whatever the command's own parser reports.
func (p *Parser) ParseCommand(input string) (commands.Command, error) {
	word, args, err := Split(input)
	if err != nil {
		return nil, err
	}
	def, ok := p.registry.Get(word)
	if !ok {
		return nil, &ParseError{Kind: ErrUnknownCommand, Message: MsgUnknownCommand}
	}
	return def.Parse(args)
}
