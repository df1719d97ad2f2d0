package output

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Global printer instance for convenience functions
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

// ConfigureGlobal configures the global printer with the given options.
func ConfigureGlobal(options ...Option) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = NewPrinter(options...)
}

// Println outputs text with newline using the global printer.
func Println(text string) {
	GetGlobalPrinter().Println(text)
}

// Error outputs error text using the global printer.
func Error(text string) {
	GetGlobalPrinter().Error(text)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewConsolePrinter builds a printer for w honoring the color mode. Styles
// and markdown rendering are enabled only when the resolved profile has
// color.
func NewConsolePrinter(w io.Writer, colorMode string) *Printer {
	profile := ColorProfile(colorMode, w)
	theme := NewThemeStyleProvider(w, profile)
	if !theme.IsAvailable() {
		return NewPrinter(WithWriter(w), Plain())
	}

	opts := []Option{WithWriter(w), WithMode(ModeStyled), WithStyles(theme)}
	if md, err := NewMarkdownRenderer("dark", 80); err == nil {
		opts = append(opts, WithMarkdown(md))
	}
	return NewPrinter(opts...)
}
