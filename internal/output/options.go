package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithStyles configures the printer to use the provided StyleProvider.
// A nil or unavailable provider leaves the printer plain.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter configures the destination. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode configures the printer to operate in a specific output mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
		p.forcePlain = mode == ModePlain
	}
}

// WithMarkdown configures the renderer used by Printer.Markdown in styled output.
func WithMarkdown(renderer *MarkdownRenderer) Option {
	return func(p *Printer) {
		p.markdown = renderer
	}
}

// PlainText forces plain text output, ignoring any StyleProvider.
func PlainText() Option {
	return WithMode(ModePlain)
}

// JSON configures the printer for structured JSON output.
func JSON() Option {
	return WithMode(ModeJSON)
}

// TestMode configures the printer for deterministic output in tests.
func TestMode() Option {
	return func(p *Printer) {
		p.testMode = true
		p.mode = ModePlain
		p.forcePlain = true
	}
}

// Silent configures the printer to suppress all output.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}
