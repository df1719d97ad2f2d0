package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithStyles sets the style provider. Unavailable providers are ignored.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil && provider.IsAvailable() {
			p.styleProvider = provider
		}
	}
}

// WithWriter sets the destination. Nil keeps os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.writer = w
		}
	}
}

func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}

// WithMarkdown sets the renderer used for help text in styled mode.
func WithMarkdown(renderer *MarkdownRenderer) Option {
	return func(p *Printer) {
		p.markdown = renderer
	}
}

// Plain writes response text verbatim, even if styles were configured.
// Batch runs, test mode and golden transcripts use it.
func Plain() Option {
	return func(p *Printer) {
		p.mode = ModePlain
		p.forcePlain = true
	}
}

// JSON writes one {"type", "message"} object per line.
func JSON() Option {
	return WithMode(ModeJSON)
}
