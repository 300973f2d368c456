// Package output provides console output for NoKnock.
// Printers render semantic messages (success, error, ...) as plain text,
// lipgloss-styled text or JSON lines, chosen by option at construction.
package output

// StyleProvider supplies a TextStyle per semantic type.
// The output package depends only on this interface, not on a concrete theme.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable reports whether the provider can style text. Printers
	// fall back to plain text when it cannot.
	IsAvailable() bool

	// GetThemeType returns the glamour style for markdown ("dark", "light", "auto").
	GetThemeType() string
}

// TextStyle renders text with styling. lipgloss.Style implements it.
type TextStyle interface {
	Render(strs ...string) string
}

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto uses styles when a provider is available, plain text otherwise
	ModeAuto Mode = iota

	// ModeStyled forces styled output
	ModeStyled

	// ModePlain forces plain text output
	ModePlain

	// ModeJSON outputs one JSON object per message
	ModeJSON
)

// ParseMode maps a configuration value to a Mode. Unknown values mean ModeAuto.
func ParseMode(s string) Mode {
	switch s {
	case "styled":
		return ModeStyled
	case "plain":
		return ModePlain
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents a successful command result.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents a failed command or fatal problem.
	SemanticError SemanticType = "error"
	// SemanticCommand represents a command keyword.
	SemanticCommand SemanticType = "command"
	// SemanticHighlight represents emphasized text such as headings.
	SemanticHighlight SemanticType = "highlight"
	// SemanticMuted represents secondary detail.
	SemanticMuted SemanticType = "muted"
)
