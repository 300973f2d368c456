package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix marks the start of a named argument, e.g. "n/" in "n/Tan Ah Kow".
type Prefix string

// Argument prefixes understood by the built-in commands.
const (
	PrefixName         Prefix = "n/"
	PrefixWard         Prefix = "w/"
	PrefixIC           Prefix = "ic/"
	PrefixTag          Prefix = "t/"
	PrefixPhone        Prefix = "p/"
	PrefixRelationship Prefix = "r/"
	PrefixDate         Prefix = "d/"
	PrefixTime         Prefix = "time/"
	PrefixCareType     Prefix = "type/"
	PrefixNotes        Prefix = "notes/"
	PrefixStatus       Prefix = "status/"
	PrefixFrom         Prefix = "from/"
	PrefixTo           Prefix = "to/"
	PrefixFile         Prefix = "f/"
)

func (p Prefix) String() string { return string(p) }

// ArgumentMultimap holds tokenized arguments: the free text before the first
// prefix (the preamble) and the values following each prefix, in input order.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text preceding the first recognised prefix.
func (a ArgumentMultimap) Preamble() string {
	return a.preamble
}

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p in input order.
func (a ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

// Has reports whether p occurred at least once.
func (a ArgumentMultimap) Has(p Prefix) bool {
	return len(a.values[p]) > 0
}

// HasAll reports whether every prefix occurred.
func (a ArgumentMultimap) HasAll(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if !a.Has(p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one prefix occurred.
func (a ArgumentMultimap) HasAny(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if a.Has(p) {
			return true
		}
	}
	return false
}

// VerifyNoDuplicatePrefixesFor fails if any of the single-valued prefixes
// occurred more than once.
func (a ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []string
	for _, p := range prefixes {
		if len(a.values[p]) > 1 {
			dups = append(dups, p.String())
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return &ParseError{Kind: ErrParse, Message: fmt.Sprintf(MsgDuplicatePrefixes, strings.Join(dups, " "))}
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix is recognised only at
// the start of args or right after whitespace, so "t/" never matches inside
// "notes/" or a value such as "and/or".
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	positions := findPrefixPositions(args, prefixes)
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	result := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	result.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueStart := pos.start + len(pos.prefix)
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		result.values[pos.prefix] = append(result.values[pos.prefix], strings.TrimSpace(args[valueStart:valueEnd]))
	}
	return result
}

func findPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var positions []prefixPosition
	for _, p := range prefixes {
		from := 0
		for {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if atWordStart(args, at) {
				positions = append(positions, prefixPosition{prefix: p, start: at})
			}
			from = at + len(p)
		}
	}
	return positions
}

func atWordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}
