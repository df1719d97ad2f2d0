package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders help text through glamour.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer with the given glamour standard
// style ("dark", "light", "notty", ...). An empty style auto-detects.
func NewMarkdownRenderer(style string, width int) (*MarkdownRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &MarkdownRenderer{renderer: r}, nil
}

// Render returns the rendered markdown, or the source when rendering fails.
func (m *MarkdownRenderer) Render(source string) string {
	if m == nil || m.renderer == nil {
		return source
	}
	out, err := m.renderer.Render(source)
	if err != nil {
		return source
	}
	return strings.Trim(out, "\n")
}
