package builtin

import (
	"fmt"
	"strings"

	"kvshell/internal/commands"
	"kvshell/pkg/kvtypes"
)

// ListCommand implements the list command, which shows every key in sorted order.
type ListCommand struct{}

// Name returns the command name "list" for registration and lookup.
func (c *ListCommand) Name() string {
	return "list"
}

// ParseMode returns ParseModeFields for whitespace-separated arguments.
func (c *ListCommand) ParseMode() kvtypes.ParseMode {
	return kvtypes.ParseModeFields
}

// Description returns a brief description of what the list command does.
func (c *ListCommand) Description() string {
	return "List all keys in sorted order"
}

// Usage returns the syntax for the list command.
func (c *ListCommand) Usage() string {
	return "list"
}

// HelpInfo returns structured help information for the list command.
func (c *ListCommand) HelpInfo() kvtypes.HelpInfo {
	return kvtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []kvtypes.HelpExample{
			{Command: "list", Description: "Show all keys"},
		},
	}
}

// Execute lists the keys of the store.
func (c *ListCommand) Execute(env *commands.Env, args kvtypes.CommandArgs) (kvtypes.Response, error) {
	if len(args.Fields) > 0 {
		return kvtypes.Response{}, fmt.Errorf("Usage: %s", c.Usage())
	}

	keys := env.Store.Keys()
	if len(keys) == 0 {
		return kvtypes.Info("Store is empty"), nil
	}
	return kvtypes.Info("Keys: " + strings.Join(keys, ", ")), nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&ListCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register list command: %v", err))
	}
}
