// Package logger provides centralized logging for NoKnock.
//
// The process-wide Logger is configured once at startup from flags and
// environment. Core packages never reach for it directly: the dispatch
// boundary takes a Sink, which *log.Logger satisfies, and a nil or Discard
// sink silences diagnostics without changing behaviour.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance used by the command-line entry point.
var Logger *log.Logger

// output is where Logger and component loggers write.
var output io.Writer = os.Stderr

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.InfoLevel)
}

// Sink receives structured diagnostics.
type Sink interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

type discard struct{}

func (discard) Debug(interface{}, ...interface{}) {}
func (discard) Info(interface{}, ...interface{})  {}
func (discard) Warn(interface{}, ...interface{})  {}
func (discard) Error(interface{}, ...interface{}) {}

// Discard returns a Sink that drops everything.
func Discard() Sink {
	return discard{}
}

// OrDiscard returns s, or a discarding sink if s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return discard{}
	}
	return s
}

// Configure sets up the global logger. CLI flags take precedence over the
// NOKNOCK_LOG_LEVEL environment variable.
func Configure(logLevel string, logFile string, testMode bool) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv("NOKNOCK_LOG_LEVEL"))
	}
	if level == "" {
		level = "info"
	}

	var w io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		w = file
	}
	output = w

	Logger = log.New(w)
	Logger.SetTimeFormat("")
	Logger.SetLevel(parseLogLevel(level))

	if testMode {
		// Test mode keeps output stable regardless of flags
		Logger.SetTimeFormat("")
		Logger.SetLevel(log.InfoLevel)
	}

	return nil
}

// parseLogLevel converts string to log level
func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message with optional key-value pairs and exits.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// CommandExecution logs the start of a dispatched command.
func CommandExecution(s Sink, id string, word string) {
	OrDiscard(s).Debug("Executing command", "command_id", id, "command", word)
}

// CommandOutcome logs how a dispatched command ended.
func CommandOutcome(s Sink, id string, word string, err error) {
	if err != nil {
		OrDiscard(s).Debug("Command failed", "command_id", id, "command", word, "error", err)
		return
	}
	OrDiscard(s).Debug("Command succeeded", "command_id", id, "command", word)
}

// StorageOperation logs a load or save of the data file.
func StorageOperation(s Sink, operation string, path string, patients int) {
	OrDiscard(s).Debug("Storage operation", "operation", operation, "file", path, "patients", patients)
}

// NewStyledLogger creates a logger with custom styles and a component prefix
// (e.g. "Shell", "Storage").
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("33")). // Blue background
		Foreground(lipgloss.Color("15"))  // White text

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("196")). // Red background
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("240")). // Gray background
		Foreground(lipgloss.Color("15"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("214")). // Orange background
		Foreground(lipgloss.Color("15"))

	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))    // Green
	styles.Keys["command_id"] = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Gray
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))      // Red
	styles.Keys["file"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))        // Blue
	styles.Keys["operation"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))   // Purple

	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}
