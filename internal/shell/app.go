package shell

import (
	"fmt"
	"io"
	"time"

	"noknock/internal/commands"
	"noknock/internal/commands/builtin"
	"noknock/internal/config"
	"noknock/internal/logger"
	"noknock/internal/model"
	"noknock/internal/output"
	"noknock/internal/storage"
)

// AppOptions configure NewApp.
type AppOptions struct {
	Config    *config.Config
	Printer   *output.Printer
	Sink      logger.Sink
	Now       func() time.Time // clock for date checks; nil means time.Now
	Dashboard bool             // redraw the panels after changes (interactive use)
}

// App is a fully wired NoKnock session.
type App struct {
	Model    *model.Model
	Registry *commands.Registry
	Store    *storage.FileStore
	Executor *Executor
}

// NewApp builds the registry, loads the data file into a fresh model and
// wires an Executor around it. A data file holding duplicate patients is an
// error.
func NewApp(opts AppOptions) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("no configuration provided")
	}
	sink := logger.OrDiscard(opts.Sink)

	registry := commands.NewRegistry()
	if err := builtin.Register(registry, builtin.Config{ExportDir: cfg.ExportDir, Now: opts.Now}); err != nil {
		return nil, err
	}

	store := storage.NewFileStore(cfg.DataFile)
	patients, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}
	logger.StorageOperation(sink, "load", store.Location(), len(patients))

	m := model.New()
	if err := m.ReplacePatients(patients); err != nil {
		return nil, fmt.Errorf("failed to load patients from %s: %w", store.Location(), err)
	}

	execOpts := []Option{
		WithPrinter(opts.Printer),
		WithSink(sink),
		WithStore(store, cfg.Autosave),
	}
	if opts.Dashboard {
		execOpts = append(execOpts, WithDashboard())
	}

	return &App{
		Model:    m,
		Registry: registry,
		Store:    store,
		Executor: NewExecutor(m, registry, execOpts...),
	}, nil
}

// Close releases the Executor.
func (a *App) Close() {
	a.Executor.Close()
}

// NewPrinter builds the console printer described by cfg.
func NewPrinter(cfg *config.Config, w io.Writer) (*output.Printer, error) {
	opts := []output.Option{output.WithWriter(w)}

	switch {
	case cfg.TestMode:
		opts = append(opts, output.TestMode())
	case cfg.Style == "json":
		opts = append(opts, output.JSON())
	case cfg.Style == "plain" || cfg.Theme == "plain":
		opts = append(opts, output.PlainText())
	case cfg.Style == "auto" && !output.SupportsColor():
		opts = append(opts, output.PlainText())
	default:
		theme := output.ThemeByName(cfg.Theme)
		renderer, err := output.NewMarkdownRenderer(theme.GetThemeType(), 80)
		if err != nil {
			return nil, err
		}
		opts = append(opts, output.WithStyles(theme), output.WithMarkdown(renderer), output.WithMode(output.ModeStyled))
	}
	return output.NewPrinter(opts...), nil
}
