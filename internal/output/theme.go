package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by ParseColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ParseColorMode validates a color setting.
func ParseColorMode(mode string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(mode)); m {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}
}

// ColorProfile resolves a color mode for w. Auto honors NO_COLOR and
// CLICOLOR_FORCE and falls back to plain ASCII when w is not a terminal.
func ColorProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.ANSI256
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// ThemeStyleProvider implements StyleProvider with lipgloss styles bound to
// one color profile.
type ThemeStyleProvider struct {
	profile termenv.Profile
	styles  map[SemanticType]lipgloss.Style
}

// NewThemeStyleProvider creates the default theme for w under profile.
func NewThemeStyleProvider(w io.Writer, profile termenv.Profile) *ThemeStyleProvider {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	return &ThemeStyleProvider{
		profile: profile,
		styles: map[SemanticType]lipgloss.Style{
			SemanticPlain:   r.NewStyle(),
			SemanticInfo:    r.NewStyle().Foreground(lipgloss.Color("252")),
			SemanticSuccess: r.NewStyle().Foreground(lipgloss.Color("42")),
			SemanticError:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			SemanticPrompt:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		},
	}
}

// GetStyle returns the style for semantic, or an unstyled one.
func (t *ThemeStyleProvider) GetStyle(semantic SemanticType) TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return t.styles[SemanticPlain]
}

// IsAvailable reports whether the profile carries any color.
func (t *ThemeStyleProvider) IsAvailable() bool {
	return t.profile != termenv.Ascii
}

// Profile returns the color profile the styles were built for.
func (t *ThemeStyleProvider) Profile() termenv.Profile {
	return t.profile
}
