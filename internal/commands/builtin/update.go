package builtin

import (
	"fmt"

	"kvshell/internal/commands"
	"kvshell/internal/literal"
	"kvshell/internal/logger"
	"kvshell/pkg/kvtypes"
)

// UpdateCommand implements the update command, which replaces the value of a
// key that already exists. Unlike set it never creates a key.
type UpdateCommand struct{}

// Name returns the command name "update" for registration and lookup.
func (c *UpdateCommand) Name() string {
	return "update"
}

// ParseMode returns ParseModeKeyLiteral so the whole remainder of the line is the value.
func (c *UpdateCommand) ParseMode() kvtypes.ParseMode {
	return kvtypes.ParseModeKeyLiteral
}

// Description returns a brief description of what the update command does.
func (c *UpdateCommand) Description() string {
	return "Replace the value of an existing key"
}

// Usage returns the syntax for the update command.
func (c *UpdateCommand) Usage() string {
	return "update <key> <value>"
}

// HelpInfo returns structured help information for the update command.
func (c *UpdateCommand) HelpInfo() kvtypes.HelpInfo {
	return kvtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []kvtypes.HelpOption{
			{Name: "key", Description: "Existing key", Required: true, Type: "string"},
			{Name: "value", Description: "New literal value", Required: true, Type: "literal"},
		},
		Examples: []kvtypes.HelpExample{
			{Command: "update count 43", Description: "Replace an integer"},
			{Command: "update user {\"name\": \"ada\"}", Description: "Replace a whole map; there is no merge"},
		},
		Notes: []string{
			"The key must already exist; use set to create it",
			"The value is only parsed once the key is known to exist",
		},
	}
}

// Execute replaces the value under an existing key.
func (c *UpdateCommand) Execute(env *commands.Env, args kvtypes.CommandArgs) (kvtypes.Response, error) {
	key, text := args.Key(), args.Literal
	if err := requireKeyAndValue(c.Usage(), key, text); err != nil {
		return kvtypes.Response{}, err
	}

	if !env.Store.Has(key) {
		return kvtypes.Response{}, fmt.Errorf("Key '%s' does not exist", key)
	}

	v, err := literal.Decode(text)
	if err != nil {
		logger.ParseFailure(text, err)
		return kvtypes.Response{}, errUnsupported
	}

	if err := env.Store.Update(key, v); err != nil {
		return kvtypes.Response{}, keyError(c.Usage(), key, err)
	}
	logger.StoreOperation("update", key, v.String())

	return kvtypes.Success(fmt.Sprintf("Updated key '%s' with value '%s'", key, v)), nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&UpdateCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register update command: %v", err))
	}
}
