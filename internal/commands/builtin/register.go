// Package builtin provides the NoKnock commands and their argument parsers.
// Register installs them into a commands.Registry.
package builtin

import (
	"fmt"
	"time"

	"noknock/internal/commands"
	"noknock/internal/export"
	"noknock/internal/model/person"
)

// Exporter writes the full patient list to a file.
type Exporter interface {
	Export(path string, patients []person.Patient) error
}

// Config carries the collaborators the built-in commands need.
type Config struct {
	ExportDir string           // Directory for exports given without a directory
	Now       func() time.Time // Clock used for "not in the past" checks and default file names
	Exporter  Exporter         // Defaults to an xlsx workbook exporter
}

func (c Config) withDefaults() Config {
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Exporter == nil {
		c.Exporter = export.Workbook{}
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	return c
}

// Definitions returns every built-in command definition.
func Definitions(cfg Config) []commands.Definition {
	cfg = cfg.withDefaults()
	return []commands.Definition{
		addPatientDefinition(),
		editPatientDefinition(),
		deletePatientDefinition(),
		findPatientDefinition(),
		findByNextOfKinDefinition(),
		listPatientsDefinition(),
		addNextOfKinDefinition(),
		editNextOfKinDefinition(),
		deleteNextOfKinDefinition(),
		addSessionDefinition(cfg.Now),
		editSessionDefinition(cfg.Now),
		deleteSessionDefinition(),
		listSessionsDefinition(),
		clearDefinition(),
		exportDefinition(cfg),
		helpDefinition(),
		exitDefinition(),
	}
}

// Register installs every built-in command into r.
func Register(r *commands.Registry, cfg Config) error {
	for _, def := range Definitions(cfg) {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("failed to register %s command: %w", def.Word, err)
		}
	}
	return nil
}

// noArgs builds a parser for commands that take no arguments. Trailing text
// is ignored, as it is for help and exit in most shells.
func noArgs(cmd commands.Command) commands.ParseFunc {
	return func(string) (commands.Command, error) { return cmd, nil }
}
