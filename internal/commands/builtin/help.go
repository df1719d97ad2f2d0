package builtin

import (
	"fmt"
	"strings"

	"kvshell/internal/commands"
	"kvshell/pkg/kvtypes"
)

// HelpCommand implements the help command for displaying available commands and usage information.
// With no argument it lists every command; with a command name it shows that command in detail.
type HelpCommand struct{}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// ParseMode returns ParseModeFields for whitespace-separated arguments.
func (c *HelpCommand) ParseMode() kvtypes.ParseMode {
	return kvtypes.ParseModeFields
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show command help"
}

// Usage returns the syntax for the help command.
func (c *HelpCommand) Usage() string {
	return "help [command]"
}

// HelpInfo returns structured help information for the help command.
func (c *HelpCommand) HelpInfo() kvtypes.HelpInfo {
	return kvtypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []kvtypes.HelpExample{
			{Command: "help", Description: "List all commands"},
			{Command: "help set", Description: "Show details for the set command"},
		},
	}
}

// Execute renders help as markdown.
func (c *HelpCommand) Execute(env *commands.Env, args kvtypes.CommandArgs) (kvtypes.Response, error) {
	registry := env.Registry
	if registry == nil {
		registry = commands.GlobalRegistry
	}

	if name := args.Key(); name != "" {
		cmd, exists := registry.Get(name)
		if !exists {
			return kvtypes.Response{}, fmt.Errorf("Unknown command: '%s'", name)
		}
		return kvtypes.Markdown(renderCommandHelp(cmd.HelpInfo())), nil
	}

	return kvtypes.Markdown(renderCommandList(registry.GetAll())), nil
}

func renderCommandList(all []commands.Command) string {
	var sb strings.Builder
	sb.WriteString("## Commands\n\n")
	for _, cmd := range all {
		fmt.Fprintf(&sb, "- `%s`: %s\n", cmd.Usage(), cmd.Description())
	}
	sb.WriteString("\nValues: 42, true, \"text\", {\"key\": value}, [list], <set>, or bare text.\n")
	sb.WriteString("Type `help <command>` for details on a command.")
	return sb.String()
}

func renderCommandHelp(info kvtypes.HelpInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n%s\n\n", info.Command, info.Description)
	fmt.Fprintf(&sb, "**Usage:** `%s`\n", info.Usage)

	if len(info.Options) > 0 {
		sb.WriteString("\n**Arguments:**\n\n")
		for _, opt := range info.Options {
			required := "optional"
			if opt.Required {
				required = "required"
			}
			fmt.Fprintf(&sb, "- `%s` (%s, %s): %s\n", opt.Name, opt.Type, required, opt.Description)
		}
	}

	if len(info.Examples) > 0 {
		sb.WriteString("\n**Examples:**\n\n")
		for _, ex := range info.Examples {
			fmt.Fprintf(&sb, "- `%s`: %s\n", ex.Command, ex.Description)
		}
	}

	if len(info.Notes) > 0 {
		sb.WriteString("\n**Notes:**\n\n")
		for _, note := range info.Notes {
			fmt.Fprintf(&sb, "- %s\n", note)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func init() {
	if err := commands.GlobalRegistry.Register(&HelpCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register help command: %v", err))
	}
}
