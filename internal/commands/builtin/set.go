package builtin

import (
	"fmt"

	"kvshell/internal/commands"
	"kvshell/internal/literal"
	"kvshell/internal/logger"
	"kvshell/pkg/kvtypes"
)

// SetCommand implements the set command for storing a value under a key.
// The key may be new or already present; an existing value is replaced whole.
type SetCommand struct{}

// Name returns the command name "set" for registration and lookup.
func (c *SetCommand) Name() string {
	return "set"
}

// ParseMode returns ParseModeKeyLiteral so the whole remainder of the line is the value.
func (c *SetCommand) ParseMode() kvtypes.ParseMode {
	return kvtypes.ParseModeKeyLiteral
}

// Description returns a brief description of what the set command does.
func (c *SetCommand) Description() string {
	return "Store a value under a new or existing key"
}

// Usage returns the syntax for the set command.
func (c *SetCommand) Usage() string {
	return "set <key> <value>"
}

// HelpInfo returns structured help information for the set command.
func (c *SetCommand) HelpInfo() kvtypes.HelpInfo {
	return kvtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Options: []kvtypes.HelpOption{
			{
				Name:        "key",
				Description: "Key to store the value under",
				Required:    true,
				Type:        "string",
			},
			{
				Name:        "value",
				Description: "Literal: integer, boolean, \"text\", {map}, [list], <set> or bare text",
				Required:    true,
				Type:        "literal",
			},
		},
		Examples: []kvtypes.HelpExample{
			{Command: "set count 42", Description: "Store an integer"},
			{Command: "set name \"Ada Lovelace\"", Description: "Store quoted text"},
			{Command: "set user {\"name\": \"ada\", \"tags\": <admin, dev>}", Description: "Store a map holding a set"},
			{Command: "set steps [1, 2, [3, 4]]", Description: "Store a nested list"},
		},
		Notes: []string{
			"Map keys are kept in sorted order; a repeated key keeps its last value",
			"Sets drop duplicate elements and are shown in canonical order",
			"Decimal numbers such as 3.14 are rejected",
		},
	}
}

// Execute parses the literal and stores it. A rejected literal leaves the store unchanged.
func (c *SetCommand) Execute(env *commands.Env, args kvtypes.CommandArgs) (kvtypes.Response, error) {
	key, text := args.Key(), args.Literal
	if err := requireKeyAndValue(c.Usage(), key, text); err != nil {
		return kvtypes.Response{}, err
	}

	v, err := literal.Decode(text)
	if err != nil {
		logger.ParseFailure(text, err)
		return kvtypes.Response{}, errUnsupported
	}

	if err := env.Store.Set(key, v); err != nil {
		return kvtypes.Response{}, keyError(c.Usage(), key, err)
	}
	logger.StoreOperation("set", key, v.String())

	return kvtypes.Success(fmt.Sprintf("Set key '%s' with value '%s'", key, v)), nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&SetCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register set command: %v", err))
	}
}
