package commands

import (
	"fmt"
	"sort"
	"sync"
)

// ParseFunc turns the argument remainder of an input line into a Command.
type ParseFunc func(args string) (Command, error)

// HelpExample is a sample invocation shown in the command reference.
type HelpExample struct {
	Command     string
	Description string
}

// Definition describes one command keyword.
type Definition struct {
	Word        string        // Exact, case-sensitive command keyword
	Description string        // One-line summary
	Usage       string        // Parameter synopsis, e.g. "PATIENT_INDEX n/NAME"
	Examples    []HelpExample // Sample invocations
	Notes       []string      // Additional remarks
	Parse       ParseFunc     // Argument parser
}

// UsageLine returns the keyword followed by its parameter synopsis.
func (d Definition) UsageLine() string {
	if d.Usage == "" {
		return d.Word
	}
	return d.Word + " " + d.Usage
}

// Registry maps command keywords to their definitions.
// It is safe for concurrent registration and lookup.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]Definition),
	}
}

// Register adds a definition. It fails if the keyword is empty, has no
// parser, or is already registered.
func (r *Registry) Register(def Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if def.Word == "" {
		return fmt.Errorf("command word cannot be empty")
	}
	if def.Parse == nil {
		return fmt.Errorf("command %s has no parser", def.Word)
	}
	if _, exists := r.definitions[def.Word]; exists {
		return fmt.Errorf("command %s already registered", def.Word)
	}

	r.definitions[def.Word] = def
	return nil
}

// Get retrieves a definition by exact keyword.
func (r *Registry) Get(word string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, exists := r.definitions[word]
	return def, exists
}

// GetAll returns every definition sorted by keyword.
func (r *Registry) GetAll() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Word < defs[j].Word })
	return defs
}

// IsValidCommand reports whether word is registered.
func (r *Registry) IsValidCommand(word string) bool {
	_, exists := r.Get(word)
	return exists
}
