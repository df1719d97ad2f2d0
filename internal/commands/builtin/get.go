package builtin

import (
	"fmt"

	"kvshell/internal/commands"
	"kvshell/internal/logger"
	"kvshell/pkg/kvtypes"
)

// GetCommand implements the get command for reading the value under a key.
type GetCommand struct{}

// Name returns the command name "get" for registration and lookup.
func (c *GetCommand) Name() string {
	return "get"
}

// ParseMode returns ParseModeFields for whitespace-separated arguments.
func (c *GetCommand) ParseMode() kvtypes.ParseMode {
	return kvtypes.ParseModeFields
}

// Description returns a brief description of what the get command does.
func (c *GetCommand) Description() string {
	return "Show the value stored under a key"
}

// Usage returns the syntax for the get command.
func (c *GetCommand) Usage() string {
	return "get <key>"
}

// HelpInfo returns structured help information for the get command.
func (c *GetCommand) HelpInfo() kvtypes.HelpInfo {
	return kvtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []kvtypes.HelpOption{
			{Name: "key", Description: "Key to read", Required: true, Type: "string"},
		},
		Examples: []kvtypes.HelpExample{
			{Command: "get count", Description: "Show the value stored under 'count'"},
		},
	}
}

// Execute renders the value under the requested key. The store is never modified.
func (c *GetCommand) Execute(env *commands.Env, args kvtypes.CommandArgs) (kvtypes.Response, error) {
	key := args.Key()
	if key == "" {
		return kvtypes.Response{}, fmt.Errorf("Usage: %s", c.Usage())
	}

	v, err := env.Store.Get(key)
	if err != nil {
		return kvtypes.Response{}, keyError(c.Usage(), key, err)
	}
	logger.StoreOperation("get", key, v.String())

	return kvtypes.Info(fmt.Sprintf("Value for key '%s': '%s'", key, v)), nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&GetCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register get command: %v", err))
	}
}
