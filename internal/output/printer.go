package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer writes semantic messages to a writer.
type Printer struct {
	styleProvider StyleProvider
	markdown      *MarkdownRenderer
	writer        io.Writer
	mode          Mode
	forcePlain    bool
	testMode      bool
	silent        bool

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print outputs text without any semantic styling or trailing newline.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without any semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text followed by a newline.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs a successful result.
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning outputs warning text.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs error text.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Highlight outputs emphasized text on its own line.
func (p *Printer) Highlight(text string) {
	p.output(SemanticHighlight, text, true)
}

// Block writes pre-rendered text, such as a table, untouched. JSON printers
// wrap it in a message like any other output.
func (p *Printer) Block(text string) {
	p.output(SemanticPlain, text, true)
}

// Markdown renders md with glamour when styling is active; otherwise the
// markdown source is printed as is, which reads fine as plain text.
func (p *Printer) Markdown(md string) {
	if p.IsStylable() && p.mode != ModeJSON && p.markdown != nil {
		if rendered, err := p.markdown.Render(md); err == nil {
			p.output(SemanticPlain, rendered, true)
			return
		}
	}
	p.output(SemanticPlain, md, true)
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var finalText string
	switch p.mode {
	case ModeJSON:
		finalText = p.renderJSON(semantic, text)
	case ModePlain, ModeAuto:
		finalText = p.renderText(semantic, text, addNewline)
	case ModeStyled:
		finalText = p.renderStyled(semantic, text, addNewline)
	}

	_, _ = fmt.Fprint(p.writer, finalText) // Ignore write errors for output operations
}

func (p *Printer) renderText(semantic SemanticType, text string, addNewline bool) string {
	var provider StyleProvider = plainStyles
	if !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable() {
		provider = p.styleProvider
	}
	return withNewline(provider.GetStyle(string(semantic)).Render(text), addNewline)
}

func (p *Printer) renderStyled(semantic SemanticType, text string, addNewline bool) string {
	if p.styleProvider != nil && p.styleProvider.IsAvailable() {
		return withNewline(p.styleProvider.GetStyle(string(semantic)).Render(text), addNewline)
	}
	return p.renderText(semantic, text, addNewline)
}

func (p *Printer) renderJSON(semantic SemanticType, text string) string {
	out := map[string]interface{}{
		"type":    semantic,
		"message": strings.TrimRight(text, "\n"),
	}
	jsonBytes, err := json.Marshal(out)
	if err != nil {
		return text + "\n"
	}
	return string(jsonBytes) + "\n"
}

func withNewline(s string, add bool) string {
	if add && !strings.HasSuffix(s, "\n") {
		return s + "\n"
	}
	return s
}

// SetWriter changes the output writer.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{mode: %v, styles: %s, writer: %T}", p.mode, hasStyles, p.writer)
}
