package builtin

import (
	"fmt"

	"kvshell/internal/commands"
	"kvshell/internal/logger"
	"kvshell/pkg/kvtypes"
)

// DeleteCommand implements the delete command for removing a key.
type DeleteCommand struct{}

// Name returns the command name "delete" for registration and lookup.
func (c *DeleteCommand) Name() string {
	return "delete"
}

// ParseMode returns ParseModeFields for whitespace-separated arguments.
func (c *DeleteCommand) ParseMode() kvtypes.ParseMode {
	return kvtypes.ParseModeFields
}

// Description returns a brief description of what the delete command does.
func (c *DeleteCommand) Description() string {
	return "Remove a key and its value"
}

// Usage returns the syntax for the delete command.
func (c *DeleteCommand) Usage() string {
	return "delete <key>"
}

// HelpInfo returns structured help information for the delete command.
func (c *DeleteCommand) HelpInfo() kvtypes.HelpInfo {
	return kvtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []kvtypes.HelpOption{
			{Name: "key", Description: "Key to remove", Required: true, Type: "string"},
		},
		Examples: []kvtypes.HelpExample{
			{Command: "delete count", Description: "Remove 'count' from the store"},
		},
		Notes: []string{
			"Deleting a key that is not present reports it as not found",
		},
	}
}

// Execute removes the key if present.
func (c *DeleteCommand) Execute(env *commands.Env, args kvtypes.CommandArgs) (kvtypes.Response, error) {
	key := args.Key()
	if key == "" {
		return kvtypes.Response{}, fmt.Errorf("Usage: %s", c.Usage())
	}

	if err := env.Store.Delete(key); err != nil {
		return kvtypes.Response{}, keyError(c.Usage(), key, err)
	}
	logger.StoreOperation("delete", key, "")

	return kvtypes.Success(fmt.Sprintf("Deleted key '%s'", key)), nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&DeleteCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register delete command: %v", err))
	}
}
