// Package kvtypes defines the command system types shared by the kvshell
// command registry, the builtin commands and the shell.
// This file contains argument parsing modes and structured help information.
package kvtypes

// ParseMode defines how the text after a command verb is split into arguments.
type ParseMode int

const (
	// ParseModeFields splits the arguments on whitespace.
	ParseModeFields ParseMode = iota
	// ParseModeKeyLiteral takes the first field as a key and the rest of the
	// line, spacing preserved, as a literal.
	ParseModeKeyLiteral
)

// String returns the parse mode name used in help output.
func (m ParseMode) String() string {
	switch m {
	case ParseModeFields:
		return "fields"
	case ParseModeKeyLiteral:
		return "key + literal"
	default:
		return "unknown"
	}
}

// CommandArgs contains the parsed arguments for command execution.
type CommandArgs struct {
	// Fields holds the whitespace-separated arguments (ParseModeFields), or
	// the key alone (ParseModeKeyLiteral).
	Fields []string
	// Literal is the remainder of the line after the key (ParseModeKeyLiteral).
	Literal string
}

// Key returns the first argument, or "" when there is none.
func (a CommandArgs) Key() string {
	if len(a.Fields) == 0 {
		return ""
	}
	return a.Fields[0]
}

// HelpInfo represents structured help information for a command.
type HelpInfo struct {
	Command     string        `json:"command"`            // Command name
	Description string        `json:"description"`        // Brief description of what the command does
	Usage       string        `json:"usage"`              // Usage syntax
	ParseMode   ParseMode     `json:"parse_mode"`         // How the command parses arguments
	Options     []HelpOption  `json:"options,omitempty"`  // Command arguments
	Examples    []HelpExample `json:"examples,omitempty"` // Usage examples
	Notes       []string      `json:"notes,omitempty"`    // Additional notes or warnings
}

// HelpOption represents a command argument.
type HelpOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Type        string `json:"type"`
}

// HelpExample represents a usage example with explanation.
type HelpExample struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}
