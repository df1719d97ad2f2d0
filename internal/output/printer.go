package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"kvshell/pkg/kvtypes"
)

// Printer is the main output handler that supports both plain and styled output.
// Styling is optional and injected through options.
type Printer struct {
	styleProvider StyleProvider
	markdown      *MarkdownRenderer
	writer        io.Writer
	mode          Mode
	forcePlain    bool

	// Thread safety for concurrent output
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

// Print outputs text without any semantic styling.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Println outputs text with a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text with info styling.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs success text with success styling (typically green).
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Error outputs error text with error styling (typically red).
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Markdown outputs markdown, rendered when styling is active.
func (p *Printer) Markdown(text string) {
	p.output(SemanticMarkdown, text, true)
}

// Response prints a command response according to its kind. Empty
// responses print nothing.
func (p *Printer) Response(resp kvtypes.Response) {
	if resp.Text == "" {
		return
	}
	p.output(semanticFor(resp.Kind), resp.Text, true)
}

// Prompt returns prompt styled for the interactive shell.
func (p *Printer) Prompt(prompt string) string {
	if !p.IsStylable() || p.mode == ModeJSON {
		return prompt
	}
	return p.styleProvider.GetStyle(SemanticPrompt).Render(prompt)
}

func semanticFor(kind kvtypes.ResponseKind) SemanticType {
	switch kind {
	case kvtypes.ResponseSuccess:
		return SemanticSuccess
	case kvtypes.ResponseError:
		return SemanticError
	case kvtypes.ResponseMarkdown:
		return SemanticMarkdown
	default:
		return SemanticInfo
	}
}

// output is the core output method that handles all rendering logic.
func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var finalText string

	switch p.mode {
	case ModeJSON:
		finalText = p.renderJSON(semantic, text)
	case ModeStyled, ModeAuto:
		finalText = p.renderStyled(semantic, text, addNewline)
	default:
		finalText = p.renderText(text, addNewline)
	}

	_, _ = fmt.Fprint(p.writer, finalText) // Ignore write errors for output operations
}

// renderText renders text unchanged.
func (p *Printer) renderText(text string, addNewline bool) string {
	if addNewline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

// renderStyled renders text with the configured styles, falling back to plain.
func (p *Printer) renderStyled(semantic SemanticType, text string, addNewline bool) string {
	if !p.isStylable() {
		return p.renderText(text, addNewline)
	}

	var result string
	if semantic == SemanticMarkdown {
		result = p.markdown.Render(text)
	} else {
		result = p.styleProvider.GetStyle(semantic).Render(text)
	}
	return p.renderText(result, addNewline)
}

// renderJSON renders output as structured JSON.
func (p *Printer) renderJSON(semantic SemanticType, text string) string {
	output := map[string]interface{}{
		"type":    semantic,
		"message": text,
	}

	jsonBytes, err := json.Marshal(output)
	if err != nil {
		return text + "\n"
	}

	return string(jsonBytes) + "\n"
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isStylable()
}

func (p *Printer) isStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}
