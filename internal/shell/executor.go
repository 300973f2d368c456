// Package shell is the dispatch boundary between user input and the model.
//
// An Executor turns one input line into one command, runs it, prints the
// outcome and autosaves when the model changed. The interactive REPL and the
// batch script runner both drive an Executor.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"noknock/internal/commands"
	"noknock/internal/logger"
	"noknock/internal/model"
	"noknock/internal/model/person"
	"noknock/internal/output"
	"noknock/internal/parser"
	"noknock/internal/ui"
)

// ErrAutosave is the kind of a failed save after a successful command.
var ErrAutosave = errors.New("autosave failed")

// Store persists the full patient list.
type Store interface {
	Load() ([]person.Patient, error)
	Save(patients []person.Patient) error
	Location() string
}

// Executor dispatches input lines against a Model.
// Like the Model, it is meant to be driven from a single goroutine.
type Executor struct {
	model    *model.Model
	registry *commands.Registry
	parser   *parser.Parser
	printer  *output.Printer
	sink     logger.Sink
	store    Store
	autosave bool
	panels   *ui.Dashboard
	newID    func() string

	dirty       bool
	unsubscribe func()
}

// Option configures an Executor.
type Option func(*Executor)

// WithPrinter sets where results and errors are printed.
func WithPrinter(p *output.Printer) Option {
	return func(e *Executor) {
		if p != nil {
			e.printer = p
		}
	}
}

// WithSink sets the diagnostics sink. Nil discards diagnostics.
func WithSink(s logger.Sink) Option {
	return func(e *Executor) {
		e.sink = logger.OrDiscard(s)
	}
}

// WithStore sets the store written after commands that change the model.
// Saving only happens when autosave is true.
func WithStore(s Store, autosave bool) Option {
	return func(e *Executor) {
		e.store = s
		e.autosave = autosave
	}
}

// WithDashboard redraws the patient and session panels after every change.
func WithDashboard() Option {
	return func(e *Executor) {
		e.panels = ui.NewDashboard(e.model, e.printer)
	}
}

// WithIDGenerator overrides the per-command diagnostics id.
func WithIDGenerator(fn func() string) Option {
	return func(e *Executor) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// NewExecutor creates an Executor for m using the commands in registry.
func NewExecutor(m *model.Model, registry *commands.Registry, opts ...Option) *Executor {
	if m == nil {
		panic("shell: nil model")
	}
	e := &Executor{
		model:    m,
		registry: registry,
		parser:   parser.New(registry),
		printer:  output.GetGlobalPrinter(),
		sink:     logger.Discard(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.unsubscribe = m.Subscribe(func(c model.Change) {
		if c.MutatesData() {
			e.dirty = true
		}
	})
	if e.panels != nil {
		e.panels.Attach()
	}
	return e
}

// Close makes a last attempt to save unsaved changes, then detaches the
// Executor from its model. A failed save is printed as a warning.
func (e *Executor) Close() {
	if err := e.Sync(); err != nil {
		e.printer.Warning(err.Error())
	}
	if e.panels != nil {
		e.panels.Detach()
	}
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

// Execute parses and runs one input line. Every failure is printed as a
// single message and returned; the model is unchanged when the command itself
// failed.
func (e *Executor) Execute(line string) (commands.Result, error) {
	id := e.newID()
	word, _, _ := parser.Split(line)
	logger.CommandExecution(e.sink, id, word)

	result, err := e.dispatch(line)
	logger.CommandOutcome(e.sink, id, word, err)
	if err != nil {
		e.printer.Error(err.Error())
		if errors.Is(err, parser.ErrUnknownCommand) {
			e.printer.Info("Type help to see available commands.")
		}
		return result, err
	}

	if result.Feedback != "" {
		e.printer.Success(result.Feedback)
	}
	if result.ShowHelp {
		e.printer.Markdown(HelpMarkdown(e.registry.GetAll()))
	}

	if saveErr := e.Sync(); saveErr != nil {
		err = saveErr
		e.printer.Warning(saveErr.Error())
	}
	if e.panels != nil {
		e.panels.Flush()
	}
	return result, err
}

func (e *Executor) dispatch(line string) (commands.Result, error) {
	cmd, err := e.parser.ParseCommand(line)
	if err != nil {
		return commands.Result{}, err
	}
	return cmd.Execute(e.model)
}

// Sync saves the model if it changed since the last successful save. The
// pending change survives a failed save, so the next Sync retries it.
func (e *Executor) Sync() error {
	if !e.dirty || e.store == nil || !e.autosave {
		return nil
	}
	patients := e.model.Patients()
	if err := e.store.Save(patients); err != nil {
		logger.OrDiscard(e.sink).Error("Autosave failed", "file", e.store.Location(), "error", err)
		return fmt.Errorf("%w: %w", ErrAutosave, err)
	}
	logger.StorageOperation(e.sink, "save", e.store.Location(), len(patients))
	e.dirty = false
	return nil
}

// Model returns the model the Executor drives.
func (e *Executor) Model() *model.Model {
	return e.model
}

// Words returns every registered command keyword in sorted order.
func (e *Executor) Words() []string {
	defs := e.registry.GetAll()
	words := make([]string, len(defs))
	for i, d := range defs {
		words[i] = d.Word
	}
	return words
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#")
}
