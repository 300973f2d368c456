package output

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Global printer for code paths with no printer of their own, such as
// startup failures in main.
var (
	globalPrinter *Printer
	globalMu      sync.RWMutex
)

func init() {
	globalPrinter = NewPrinter()
}

// SetGlobalPrinter sets the global printer instance.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the current global printer instance.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// Println outputs text with newline using the global printer.
func Println(text string) {
	GetGlobalPrinter().Println(text)
}

// Info outputs informational text using the global printer.
func Info(text string) {
	GetGlobalPrinter().Info(text)
}

// Warning outputs warning text using the global printer.
func Warning(text string) {
	GetGlobalPrinter().Warning(text)
}

// Error outputs error text using the global printer.
func Error(text string) {
	GetGlobalPrinter().Error(text)
}

// SupportsColor honours NO_COLOR and otherwise asks lipgloss whether stdout
// can render more than plain ASCII.
func SupportsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return lipgloss.ColorProfile() != termenv.Ascii
}
