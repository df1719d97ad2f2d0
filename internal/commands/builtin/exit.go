package builtin

import (
	"fmt"

	"kvshell/internal/commands"
	"kvshell/pkg/kvtypes"
)

// ExitCommand implements the exit command for ending the session.
// The session, not the command, stops reading input.
type ExitCommand struct{}

// Name returns the command name "exit" for registration and lookup.
func (c *ExitCommand) Name() string {
	return "exit"
}

// ParseMode returns ParseModeFields for whitespace-separated arguments.
func (c *ExitCommand) ParseMode() kvtypes.ParseMode {
	return kvtypes.ParseModeFields
}

// Description returns a brief description of what the exit command does.
func (c *ExitCommand) Description() string {
	return "Exit the shell"
}

// Usage returns the syntax for the exit command.
func (c *ExitCommand) Usage() string {
	return "exit"
}

// HelpInfo returns structured help information for the exit command.
func (c *ExitCommand) HelpInfo() kvtypes.HelpInfo {
	return kvtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Notes: []string{
			"The store is not saved; all values are lost on exit",
		},
	}
}

// Execute marks the response as final.
func (c *ExitCommand) Execute(_ *commands.Env, _ kvtypes.CommandArgs) (kvtypes.Response, error) {
	return kvtypes.Response{Text: "Exiting...", Kind: kvtypes.ResponseInfo, Exit: true}, nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&ExitCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register exit command: %v", err))
	}
}
