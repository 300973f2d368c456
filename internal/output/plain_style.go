package output

// PlainTextStyle renders text with an optional semantic prefix and no styling.
type PlainTextStyle struct {
	prefix string
}

// NewPlainTextStyle creates a plain style with an optional prefix.
func NewPlainTextStyle(prefix string) *PlainTextStyle {
	return &PlainTextStyle{prefix: prefix}
}

// Render implements TextStyle.
func (p *PlainTextStyle) Render(strs ...string) string {
	text := ""
	for _, s := range strs {
		text += s
	}
	return p.prefix + text
}

// PlainStyleProvider marks semantics with short text prefixes instead of colour.
type PlainStyleProvider struct{}

var plainStyles = &PlainStyleProvider{}

// NewPlainStyleProvider creates a new plain style provider.
func NewPlainStyleProvider() *PlainStyleProvider {
	return plainStyles
}

// GetStyle implements StyleProvider.
func (p *PlainStyleProvider) GetStyle(semantic string) TextStyle {
	switch SemanticType(semantic) {
	case SemanticSuccess:
		return NewPlainTextStyle("✓ ")
	case SemanticWarning:
		return NewPlainTextStyle("⚠ ")
	case SemanticError:
		return NewPlainTextStyle("✗ ")
	case SemanticInfo:
		return NewPlainTextStyle("ℹ ")
	default:
		return NewPlainTextStyle("")
	}
}

// IsAvailable implements StyleProvider.
func (p *PlainStyleProvider) IsAvailable() bool {
	return true
}

// GetThemeType implements StyleProvider.
func (p *PlainStyleProvider) GetThemeType() string {
	return "notty"
}
