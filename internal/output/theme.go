package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a lipgloss-backed StyleProvider.
type Theme struct {
	Name      string
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Command   lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	glamour   string
}

// DefaultTheme adapts to the terminal background.
func DefaultTheme() *Theme {
	return &Theme{
		Name:      "default",
		Success:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007A3D", Dark: "#5AF78E"}),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF5C57"}).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F3F99D"}),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#57C7FF"}),
		Command:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6F42C1", Dark: "#FF6AC1"}).Bold(true),
		Highlight: lipgloss.NewStyle().Bold(true).Underline(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		glamour:   "auto",
	}
}

// DarkTheme uses fixed colours for dark backgrounds.
func DarkTheme() *Theme {
	t := DefaultTheme()
	t.Name = "dark"
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AF78E"))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5C57")).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#F3F99D"))
	t.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("#57C7FF"))
	t.glamour = "dark"
	return t
}

// LightTheme uses fixed colours for light backgrounds.
func LightTheme() *Theme {
	t := DefaultTheme()
	t.Name = "light"
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#007A3D"))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0392B")).Bold(true)
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#B7791F"))
	t.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("#1F6FEB"))
	t.glamour = "light"
	return t
}

// ThemeByName returns the named theme. "plain" and unknown names return nil,
// which printers treat as no styling.
func ThemeByName(name string) *Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "auto":
		return DefaultTheme()
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return nil
	}
}

// GetStyle implements StyleProvider.
func (t *Theme) GetStyle(semantic string) TextStyle {
	switch SemanticType(semantic) {
	case SemanticSuccess:
		return t.Success
	case SemanticError:
		return t.Error
	case SemanticWarning:
		return t.Warning
	case SemanticInfo:
		return t.Info
	case SemanticCommand:
		return t.Command
	case SemanticHighlight:
		return t.Highlight
	case SemanticMuted:
		return t.Muted
	default:
		return lipgloss.NewStyle()
	}
}

// IsAvailable implements StyleProvider.
func (t *Theme) IsAvailable() bool {
	return t != nil
}

// GetThemeType implements StyleProvider.
func (t *Theme) GetThemeType() string {
	return t.glamour
}
