package builtin

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"noknock/internal/commands"
	"noknock/internal/parser"
)

// ErrExport is the kind of a failed export.
var ErrExport = errors.New("export failed")

// ClearCommand removes every patient.
type ClearCommand struct{}

// Execute replaces the patient collection with an empty one.
func (ClearCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	if err := m.ReplacePatients(nil); err != nil {
		return commands.Result{}, commands.Fail(err, "Could not clear patients: %v", err)
	}
	return commands.Feedback("NoKnock has been cleared!"), nil
}

func clearDefinition() commands.Definition {
	return commands.Definition{
		Word:        "clear",
		Description: "Deletes every patient",
		Notes:       []string{"This cannot be undone."},
		Parse:       noArgs(ClearCommand{}),
	}
}

// ExportCommand writes the unfiltered patient list to a workbook.
type ExportCommand struct {
	Path     string
	Exporter Exporter
}

// Execute exports every stored patient, ignoring filters.
func (c ExportCommand) Execute(m commands.Model) (commands.Result, error) {
	commands.MustModel(m)
	patients := m.Patients()
	if err := c.Exporter.Export(c.Path, patients); err != nil {
		return commands.Result{}, commands.Fail(ErrExport, "Could not export to %s: %v", c.Path, err)
	}
	return commands.Feedback(fmt.Sprintf("Exported %d patients to %s", len(patients), c.Path)), nil
}

func exportDefinition(cfg Config) commands.Definition {
	const usage = "[f/FILE]"
	return commands.Definition{
		Word:        "export",
		Description: "Exports all patients, contacts and sessions to an Excel workbook",
		Usage:       usage,
		Examples: []commands.HelpExample{
			{Command: "export", Description: "Export to a timestamped file in the export directory"},
			{Command: "export f/ward-b.xlsx", Description: "Export to a named file"},
		},
		Parse: func(args string) (commands.Command, error) {
			am := parser.Tokenize(args, parser.PrefixFile)
			if am.Preamble() != "" {
				return nil, parser.InvalidFormat("export " + usage)
			}
			if err := am.VerifyNoDuplicatePrefixesFor(parser.PrefixFile); err != nil {
				return nil, err
			}
			path, err := exportPath(am, cfg.ExportDir, cfg.Now())
			if err != nil {
				return nil, err
			}
			return ExportCommand{Path: path, Exporter: cfg.Exporter}, nil
		},
	}
}

func exportPath(am parser.ArgumentMultimap, dir string, now time.Time) (string, error) {
	name, ok := am.Value(parser.PrefixFile)
	if !ok {
		return filepath.Join(dir, "noknock-"+now.Format("20060102-150405")+".xlsx"), nil
	}
	if name == "" || !strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return "", &parser.ParseError{Kind: parser.ErrParse, Message: "Export file name must end in .xlsx"}
	}
	if filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name, nil
	}
	return filepath.Join(dir, name), nil
}

// HelpCommand asks the caller to show the command reference.
type HelpCommand struct{}

// Execute always succeeds.
func (HelpCommand) Execute(commands.Model) (commands.Result, error) {
	return commands.Result{Feedback: "Showing command reference.", ShowHelp: true}, nil
}

func helpDefinition() commands.Definition {
	return commands.Definition{
		Word:        "help",
		Description: "Shows this command reference",
		Parse:       noArgs(HelpCommand{}),
	}
}

// ExitCommand asks the caller to stop reading input.
type ExitCommand struct{}

// Execute always succeeds.
func (ExitCommand) Execute(commands.Model) (commands.Result, error) {
	return commands.Result{Feedback: "Exiting NoKnock as requested ...", Exit: true}, nil
}

func exitDefinition() commands.Definition {
	return commands.Definition{
		Word:        "exit",
		Description: "Exits NoKnock",
		Parse:       noArgs(ExitCommand{}),
	}
}
