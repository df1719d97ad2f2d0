package builtin

import (
	"fmt"
	"strings"

	"kvshell/internal/commands"
	"kvshell/pkg/kvtypes"
)

// HistoryCommand implements the history command, which numbers the command
// lines the session has received so far.
type HistoryCommand struct{}

// Name returns the command name "history" for registration and lookup.
func (c *HistoryCommand) Name() string {
	return "history"
}

// ParseMode returns ParseModeFields for whitespace-separated arguments.
func (c *HistoryCommand) ParseMode() kvtypes.ParseMode {
	return kvtypes.ParseModeFields
}

// Description returns a brief description of what the history command does.
func (c *HistoryCommand) Description() string {
	return "Show the commands entered in this session"
}

// Usage returns the syntax for the history command.
func (c *HistoryCommand) Usage() string {
	return "history"
}

// HelpInfo returns structured help information for the history command.
func (c *HistoryCommand) HelpInfo() kvtypes.HelpInfo {
	return kvtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Notes: []string{
			"Blank lines are not recorded",
			"The history command itself is included",
		},
	}
}

// Execute renders env.History as numbered lines.
func (c *HistoryCommand) Execute(env *commands.Env, _ kvtypes.CommandArgs) (kvtypes.Response, error) {
	if len(env.History) == 0 {
		return kvtypes.Info("No commands in history"), nil
	}

	var sb strings.Builder
	for i, line := range env.History {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d: %s", i+1, line)
	}
	return kvtypes.Info(sb.String()), nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&HistoryCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register history command: %v", err))
	}
}
