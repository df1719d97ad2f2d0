// Package output writes command responses to the console. Styling is
// injected through a StyleProvider so that plain and test output never
// depends on terminal capabilities.
package output

// StyleProvider supplies styles for semantic output types.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic SemanticType) TextStyle

	// IsAvailable returns true if the provider can render styles.
	IsAvailable() bool
}

// TextStyle represents the capability to render text with styling.
// lipgloss.Style satisfies it.
type TextStyle interface {
	Render(strs ...string) string
}

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto styles output when a StyleProvider is available.
	ModeAuto Mode = iota

	// ModeStyled forces styled output (with colors, formatting)
	ModeStyled

	// ModePlain forces plain text output
	ModePlain

	// ModeJSON outputs one JSON object per response
	ModeJSON
)

// String returns the mode name used in configuration.
func (m Mode) String() string {
	switch m {
	case ModeStyled:
		return "styled"
	case ModePlain:
		return "plain"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents a completed mutation.
	SemanticSuccess SemanticType = "success"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticMarkdown represents markdown that is rendered when styled.
	SemanticMarkdown SemanticType = "markdown"
	// SemanticPrompt represents the interactive prompt.
	SemanticPrompt SemanticType = "prompt"
)
